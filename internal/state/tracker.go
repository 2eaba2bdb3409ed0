// Package state owns the rolling appchain state and validates state
// transitions against it.
package state

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/byteZorvin/piltover/internal/model"
)

// Tracker holds the rolling (root, block number, hash) triple. A
// transition either passes every check and commits, or aborts leaving the
// triple untouched. Calls are serialized internally so no intermediate
// state is ever observable.
type Tracker struct {
	logger *zap.Logger

	checkPrevBlockHash bool

	mu      sync.Mutex
	current model.State
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithPreviousBlockHashCheck toggles the previous-block-hash continuity
// check. Deployed variants of the settlement contract differ on it, so it
// stays an explicit policy decision rather than a hard-coded one.
func WithPreviousBlockHashCheck(enabled bool) Option {
	return func(t *Tracker) {
		t.checkPrevBlockHash = enabled
	}
}

// NewTracker builds a Tracker seeded with the genesis sentinel block
// number. Initialize replaces the seed before the first update.
func NewTracker(logger *zap.Logger, opts ...Option) *Tracker {
	t := &Tracker{
		logger:             logger.Named("stateTracker"),
		checkPrevBlockHash: true,
		current: model.State{
			BlockNumber: model.SentinelBlockNumber(),
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Initialize overwrites the rolling state unconditionally. Privileged:
// callers must gate it and invoke it at most once before any update.
func (t *Tracker) Initialize(s model.State) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = s
	t.logger.Info("state initialized",
		zap.String("root", model.FeltToHex(&s.Root)),
		zap.String("blockNumber", model.FeltToHex(&s.BlockNumber)),
		zap.String("blockHash", model.FeltToHex(&s.BlockHash)),
	)
}

// State returns the current rolling state.
func (t *Tracker) State() model.State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.current
}

// Update validates a decoded program output against the current state and
// commits the new (root, block number, hash) triple. All checks precede
// the single commit point; a failed check aborts with no partial write.
func (t *Tracker) Update(output *model.ProgramOutput) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !output.PrevBlockNumber.Equal(&t.current.BlockNumber) {
		return fmt.Errorf("%w: output chains onto %s, state is at %s",
			model.ErrInvalidPreviousBlockNumber,
			model.FeltToHex(&output.PrevBlockNumber),
			model.FeltToHex(&t.current.BlockNumber),
		)
	}

	if t.checkPrevBlockHash && !output.PrevBlockHash.Equal(&t.current.BlockHash) {
		return fmt.Errorf("%w: output chains onto %s, state is at %s",
			model.ErrInvalidPreviousBlockHash,
			model.FeltToHex(&output.PrevBlockHash),
			model.FeltToHex(&t.current.BlockHash),
		)
	}

	if err := t.checkBlockNumber(&output.NewBlockNumber); err != nil {
		return err
	}

	if !output.InitialRoot.Equal(&t.current.Root) {
		return fmt.Errorf("%w: output starts from %s, state root is %s",
			model.ErrInvalidPreviousRoot,
			model.FeltToHex(&output.InitialRoot),
			model.FeltToHex(&t.current.Root),
		)
	}

	t.current = model.State{
		Root:        output.FinalRoot,
		BlockNumber: output.NewBlockNumber,
		BlockHash:   output.NewBlockHash,
	}
	t.logger.Info("state transition committed",
		zap.String("root", model.FeltToHex(&t.current.Root)),
		zap.String("blockNumber", model.FeltToHex(&t.current.BlockNumber)),
		zap.String("blockHash", model.FeltToHex(&t.current.BlockHash)),
	)
	return nil
}

// checkBlockNumber enforces the height rule. On the genesis sentinel any
// block number is accepted; otherwise the new number must be strictly
// greater than the stored one. Comparison happens over widened integers
// because field representations carry no order.
func (t *Tracker) checkBlockNumber(newNumber *model.Felt) error {
	if t.current.IsGenesis() {
		return nil
	}
	if model.WidenFelt(newNumber).Cmp(model.WidenFelt(&t.current.BlockNumber)) <= 0 {
		return fmt.Errorf("%w: %s is not greater than current %s",
			model.ErrInvalidBlockNumber,
			model.FeltToHex(newNumber),
			model.FeltToHex(&t.current.BlockNumber),
		)
	}
	return nil
}
