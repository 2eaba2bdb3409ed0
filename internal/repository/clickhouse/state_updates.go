package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/byteZorvin/piltover/internal/model"
)

// StateUpdates returns the most recent accepted updates, newest first.
func (r *Repository) StateUpdates(ctx context.Context, limit uint64) ([]model.StateUpdateRecord, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("state_updates", err, start)
	}()

	const query = `
SELECT block_number, old_root, new_root, block_hash, fact, operator, starknet_msg_count, appchain_msg_count, accepted_at
FROM appchain_state_updates
ORDER BY block_number DESC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query state updates: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var records []model.StateUpdateRecord
	for rows.Next() {
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
			return nil, fmt.Errorf("scan state update: %w", err)
		}
		record.BlockNumber = &blockNumber
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate state updates: %w", err)
	}
	return records, nil
}
