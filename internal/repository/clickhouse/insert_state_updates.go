package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/byteZorvin/piltover/internal/model"
)

// InsertStateUpdates journals accepted state transitions.
func (r *Repository) InsertStateUpdates(ctx context.Context, updates []model.StateUpdateRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_state_updates", err, start)
	}()

	if len(updates) == 0 {
		return nil
	}

	const query = `
INSERT INTO appchain_state_updates (
	block_number,
	old_root,
	new_root,
	block_hash,
	fact,
	operator,
	starknet_msg_count,
	appchain_msg_count,
	accepted_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare state updates batch: %w", err)
	}

	for _, update := range updates {
		if err = batch.Append(
			update.BlockNumber,
			update.OldRoot,
			update.NewRoot,
			update.BlockHash,
			update.Fact,
			update.Operator,
			update.StarknetMsgCount,
			update.AppchainMsgCount,
			update.AcceptedAt,
		); err != nil {
			return fmt.Errorf("append state update: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert state updates: %w", err)
	}
	return nil
}
