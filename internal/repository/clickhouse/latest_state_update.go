package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/byteZorvin/piltover/internal/model"
)

// LatestStateUpdate returns the most recently accepted state update, used
// to reseed the rolling state on restart. The second return value is
// false when the journal is empty.
func (r *Repository) LatestStateUpdate(ctx context.Context) (model.StateUpdateRecord, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("latest_state_update", err, start)
	}()

	const query = `
SELECT block_number, old_root, new_root, block_hash, fact, operator, starknet_msg_count, appchain_msg_count, accepted_at
FROM appchain_state_updates
ORDER BY block_number DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return model.StateUpdateRecord{}, false, fmt.Errorf("query latest state update: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.StateUpdateRecord{}, false, fmt.Errorf("iterate latest state update: %w", err)
		}
		return model.StateUpdateRecord{}, false, nil
	}

	var (
		record      model.StateUpdateRecord
		blockNumber big.Int
	)
	if err = rows.Scan(
		&blockNumber,
		&record.OldRoot,
		&record.NewRoot,
		&record.BlockHash,
		&record.Fact,
		&record.Operator,
		&record.StarknetMsgCount,
		&record.AppchainMsgCount,
		&record.AcceptedAt,
	); err != nil {
		return model.StateUpdateRecord{}, false, fmt.Errorf("scan latest state update: %w", err)
	}
	record.BlockNumber = &blockNumber

	if err = rows.Err(); err != nil {
		return model.StateUpdateRecord{}, false, fmt.Errorf("iterate latest state update: %w", err)
	}
	return record, true, nil
}
