package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/byteZorvin/piltover/internal/fact"
	"github.com/byteZorvin/piltover/internal/model"
	"github.com/byteZorvin/piltover/internal/program"
	"github.com/byteZorvin/piltover/pkg/batcher"
)

// MessageBatchConfig defines how decoded message batches are buffered
// before being journaled to ClickHouse.
type MessageBatchConfig struct {
	FlushSize     int
	FlushInterval time.Duration
	FlushRPS      int
}

// DefaultMessageBatchConfig returns sane default batch sizes.
func DefaultMessageBatchConfig() MessageBatchConfig {
	return MessageBatchConfig{
		FlushSize:     500,
		FlushInterval: 5 * time.Second,
		FlushRPS:      10,
	}
}

// FactPollConfig bounds how long an update waits for its fact to appear
// in the registry. Registration typically lags proof submission.
type FactPollConfig struct {
	Interval time.Duration
	Attempts int
}

// DefaultFactPollConfig returns the default fact polling bounds.
func DefaultFactPollConfig() FactPollConfig {
	return FactPollConfig{
		Interval: 10 * time.Second,
		Attempts: 3,
	}
}

// SettlementService accepts program output streams from authorized
// operators, validates them against the rolling appchain state and
// journals accepted transitions.
type SettlementService struct {
	logger   *zap.Logger
	access   AccessController
	decoder  OutputDecoder
	programs ProgramRegistry
	facts    FactChecker
	tracker  StateTracker
	journal  Journal
	metrics  Metrics

	factPoll FactPollConfig

	starknetMsgs *batcher.Batcher[model.StarknetMessageRecord]
	appchainMsgs *batcher.Batcher[model.AppchainMessageRecord]
}

// NewSettlementService builds the settlement service with the provided
// dependencies. A nil facts checker disables attestation checks.
func NewSettlementService(
	logger *zap.Logger,
	access AccessController,
	decoder OutputDecoder,
	programs ProgramRegistry,
	facts FactChecker,
	tracker StateTracker,
	journal Journal,
	metrics Metrics,
	batch MessageBatchConfig,
	factPoll FactPollConfig,
) *SettlementService {
	if batch.FlushSize <= 0 || batch.FlushInterval <= 0 || batch.FlushRPS <= 0 {
		batch = DefaultMessageBatchConfig()
	}
	if factPoll.Interval <= 0 || factPoll.Attempts <= 0 {
		factPoll = DefaultFactPollConfig()
	}
	logger = logger.Named("settlement")

	return &SettlementService{
		logger:   logger,
		access:   access,
		decoder:  decoder,
		programs: programs,
		facts:    facts,
		tracker:  tracker,
		journal:  journal,
		metrics:  metrics,
		factPoll: factPoll,
		starknetMsgs: batcher.New(
			logger.Named("starknetMsgBatcher"),
			journal.InsertMessagesToStarknet,
			batcher.Config{Size: batch.FlushSize, Interval: batch.FlushInterval, RPS: batch.FlushRPS},
		),
		appchainMsgs: batcher.New(
			logger.Named("appchainMsgBatcher"),
			journal.InsertMessagesToAppchain,
			batcher.Config{Size: batch.FlushSize, Interval: batch.FlushInterval, RPS: batch.FlushRPS},
		),
	}
}

// Start launches the background message journaling loops.
func (s *SettlementService) Start(ctx context.Context) {
	s.starknetMsgs.Start(ctx)
	s.appchainMsgs.Start(ctx)
}

// Stop flushes and stops the background message journaling loops.
func (s *SettlementService) Stop() {
	s.starknetMsgs.Stop()
	s.appchainMsgs.Stop()
}

// SubmitStateUpdate validates one program output stream end to end and,
// on success, commits and journals the state transition. The returned
// state is the post-transition state.
func (s *SettlementService) SubmitStateUpdate(ctx context.Context, operator string, stream []model.Felt) (model.State, error) {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.ObserveUpdate(err, started)
	}()

	if err = s.access.RequireOperator(operator); err != nil {
		return model.State{}, err
	}

	output, err := s.decodeStream(stream)
	if err != nil {
		return model.State{}, err
	}

	if err = s.programs.ValidateOutput(output); err != nil {
		return model.State{}, err
	}

	factDigest, err := s.checkFact(ctx, stream)
	if err != nil {
		return model.State{}, err
	}

	if err = s.tracker.Update(output); err != nil {
		return model.State{}, err
	}

	s.journalUpdate(ctx, output, operator, factDigest)
	s.metrics.ObserveMessages(len(output.MessagesToStarknet), len(output.MessagesToAppchain))

	s.logger.Info("state update accepted",
		zap.String("operator", operator),
		zap.String("newBlockNumber", model.FeltToHex(&output.NewBlockNumber)),
		zap.String("newRoot", model.FeltToHex(&output.FinalRoot)),
		zap.Int("messagesToStarknet", len(output.MessagesToStarknet)),
		zap.Int("messagesToAppchain", len(output.MessagesToAppchain)),
	)
	return s.tracker.State(), nil
}

func (s *SettlementService) decodeStream(stream []model.Felt) (*model.ProgramOutput, error) {
	started := time.Now()
	output, err := s.decoder.Decode(stream)
	s.metrics.ObserveDecode(err, len(stream), started)
	if err != nil {
		return nil, err
	}
	return output, nil
}

// checkFact computes the attestation fact over the submitted stream and
// waits for the registry to have it, bounded by the poll config. With no
// registered program info or no checker the gate is open and the fact is
// empty.
func (s *SettlementService) checkFact(ctx context.Context, stream []model.Felt) (string, error) {
	info, registered := s.programs.Info()
	if !registered || s.facts == nil {
		return "", nil
	}

	digest := fact.Compute(info.ProgramHash, stream)
	if err := s.facts.WaitForFact(ctx, digest, s.factPoll.Interval, s.factPoll.Attempts); err != nil {
		if errors.Is(err, model.ErrInvalidFact) {
			return "", err
		}
		return "", fmt.Errorf("check fact: %w", err)
	}
	return fact.Hex(digest), nil
}

// journalUpdate persists the accepted transition. Journaling failures are
// logged and never roll back a committed transition.
func (s *SettlementService) journalUpdate(ctx context.Context, output *model.ProgramOutput, operator, factDigest string) {
	record := model.NewStateUpdateRecord(output, operator, factDigest, time.Now().UTC())
	if err := s.journal.InsertStateUpdates(ctx, []model.StateUpdateRecord{record}); err != nil {
		s.logger.Error("state update not journaled",
			zap.String("blockNumber", record.BlockNumber.String()),
			zap.Error(err),
		)
	}

	if err := s.starknetMsgs.Add(ctx, model.StarknetMessageRecords(output)...); err != nil {
		s.logger.Error("starknet messages not queued", zap.Error(err))
	}
	if err := s.appchainMsgs.Add(ctx, model.AppchainMessageRecords(output)...); err != nil {
		s.logger.Error("appchain messages not queued", zap.Error(err))
	}
}

// GetState returns the current rolling state.
func (s *SettlementService) GetState() model.State {
	return s.tracker.State()
}

// Initialize overwrites the rolling state. Owner only; meant for genesis
// bootstrap or recovery before the first update.
func (s *SettlementService) Initialize(_ context.Context, caller string, state model.State) error {
	if err := s.access.RequireOwner(caller); err != nil {
		return err
	}
	s.tracker.Initialize(state)
	return nil
}

// RecoverState reseeds the rolling state from the most recent journaled
// update, if any. Called once at startup before serving.
func (s *SettlementService) RecoverState(ctx context.Context) error {
	record, found, err := s.journal.LatestStateUpdate(ctx)
	if err != nil {
		return fmt.Errorf("load latest state update: %w", err)
	}
	if !found {
		s.logger.Info("journal empty, keeping genesis state")
		return nil
	}

	state, err := stateFromRecord(record)
	if err != nil {
		return err
	}
	s.tracker.Initialize(state)
	s.logger.Info("state recovered from journal",
		zap.String("blockNumber", record.BlockNumber.String()),
		zap.String("root", record.NewRoot),
	)
	return nil
}

func stateFromRecord(record model.StateUpdateRecord) (model.State, error) {
	root, err := model.HexToFelt(record.NewRoot)
	if err != nil {
		return model.State{}, fmt.Errorf("parse journaled root: %w", err)
	}
	hash, err := model.HexToFelt(record.BlockHash)
	if err != nil {
		return model.State{}, fmt.Errorf("parse journaled block hash: %w", err)
	}
	var number model.Felt
	number.SetBigInt(record.BlockNumber)
	return model.State{Root: root, BlockNumber: number, BlockHash: hash}, nil
}

// StateUpdates returns the most recent accepted updates, newest first.
func (s *SettlementService) StateUpdates(ctx context.Context, limit uint64) ([]model.StateUpdateRecord, error) {
	return s.journal.StateUpdates(ctx, limit)
}

// MessagesToStarknetByBlock returns the journaled Starknet-bound messages
// of one accepted block.
func (s *SettlementService) MessagesToStarknetByBlock(ctx context.Context, blockNumber *big.Int) ([]model.StarknetMessageRecord, error) {
	return s.journal.MessagesToStarknetByBlock(ctx, blockNumber)
}

// Owner returns the current owner address.
func (s *SettlementService) Owner() string {
	return s.access.Owner()
}

// Operators returns the registered operator addresses.
func (s *SettlementService) Operators() []string {
	return s.access.Operators()
}

// RegisterOperator authorizes an operator address. Owner only.
func (s *SettlementService) RegisterOperator(caller, operator string) error {
	return s.access.RegisterOperator(caller, operator)
}

// UnregisterOperator revokes an operator address. Owner only.
func (s *SettlementService) UnregisterOperator(caller, operator string) error {
	return s.access.UnregisterOperator(caller, operator)
}

// TransferOwnership hands the owner role to a new address. Owner only.
func (s *SettlementService) TransferOwnership(caller, newOwner string) error {
	return s.access.TransferOwnership(caller, newOwner)
}

// ProgramInfo returns the registered program identity and whether one is
// set.
func (s *SettlementService) ProgramInfo() (program.Info, bool) {
	return s.programs.Info()
}

// SetProgramInfo registers the trusted program identity. Owner only.
func (s *SettlementService) SetProgramInfo(caller string, info program.Info) error {
	if err := s.access.RequireOwner(caller); err != nil {
		return err
	}
	s.programs.SetInfo(info)
	return nil
}

// FactRegistry returns the attestation contract address, empty if unset.
func (s *SettlementService) FactRegistry() string {
	return s.programs.FactRegistry()
}

// SetFactRegistry records the attestation contract address. Owner only.
func (s *SettlementService) SetFactRegistry(caller, address string) error {
	if err := s.access.RequireOwner(caller); err != nil {
		return err
	}
	s.programs.SetFactRegistry(address)
	return nil
}
