package service

import (
	"context"
	"math/big"
	"time"

	"github.com/byteZorvin/piltover/internal/model"
	"github.com/byteZorvin/piltover/internal/program"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	AccessController interface {
		Owner() string
		Operators() []string
		IsOperator(address string) bool
		RequireOperator(address string) error
		RequireOwner(address string) error
		RegisterOperator(caller, operator string) error
		UnregisterOperator(caller, operator string) error
		TransferOwnership(caller, newOwner string) error
	}
	OutputDecoder interface {
		Decode(stream []model.Felt) (*model.ProgramOutput, error)
	}
	ProgramRegistry interface {
		Info() (program.Info, bool)
		SetInfo(info program.Info)
		FactRegistry() string
		SetFactRegistry(address string)
		ValidateOutput(output *model.ProgramOutput) error
	}
	FactChecker interface {
		WaitForFact(ctx context.Context, fact [32]byte, interval time.Duration, attempts int) error
	}
	StateTracker interface {
		Initialize(s model.State)
		State() model.State
		Update(output *model.ProgramOutput) error
	}
	Journal interface {
		InsertStateUpdates(ctx context.Context, updates []model.StateUpdateRecord) error
		InsertMessagesToStarknet(ctx context.Context, messages []model.StarknetMessageRecord) error
		InsertMessagesToAppchain(ctx context.Context, messages []model.AppchainMessageRecord) error
		LatestStateUpdate(ctx context.Context) (model.StateUpdateRecord, bool, error)
		StateUpdates(ctx context.Context, limit uint64) ([]model.StateUpdateRecord, error)
		MessagesToStarknetByBlock(ctx context.Context, blockNumber *big.Int) ([]model.StarknetMessageRecord, error)
	}
	Metrics interface {
		ObserveUpdate(err error, started time.Time)
		ObserveDecode(err error, streamLen int, started time.Time)
		ObserveMessages(toStarknet, toAppchain int)
	}
)
