// Package transport exposes the REST API over the settlement service.
package transport

import (
	"context"
	"math/big"

	"github.com/byteZorvin/piltover/internal/model"
	"github.com/byteZorvin/piltover/internal/program"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Settlement interface {
		SubmitStateUpdate(ctx context.Context, operator string, stream []model.Felt) (model.State, error)
		GetState() model.State
		Initialize(ctx context.Context, caller string, state model.State) error
		StateUpdates(ctx context.Context, limit uint64) ([]model.StateUpdateRecord, error)
		MessagesToStarknetByBlock(ctx context.Context, blockNumber *big.Int) ([]model.StarknetMessageRecord, error)
		Owner() string
		Operators() []string
		RegisterOperator(caller, operator string) error
		UnregisterOperator(caller, operator string) error
		TransferOwnership(caller, newOwner string) error
		ProgramInfo() (program.Info, bool)
		SetProgramInfo(caller string, info program.Info) error
		FactRegistry() string
		SetFactRegistry(caller, address string) error
	}
)
