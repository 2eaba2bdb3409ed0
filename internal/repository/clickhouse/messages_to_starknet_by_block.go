package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/byteZorvin/piltover/internal/model"
)

// MessagesToStarknetByBlock returns the journaled appchain-to-Starknet
// messages of one accepted block, in stream order.
func (r *Repository) MessagesToStarknetByBlock(ctx context.Context, blockNumber *big.Int) ([]model.StarknetMessageRecord, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("messages_to_starknet_by_block", err, start)
	}()

	const query = `
SELECT block_number, message_index, from_address, to_address, payload
FROM appchain_messages_to_starknet
WHERE block_number = ?
ORDER BY message_index`

	rows, err := r.conn.Query(ctx, query, blockNumber)
	if err != nil {
		return nil, fmt.Errorf("query starknet messages: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var records []model.StarknetMessageRecord
	for rows.Next() {
		var (
			record model.StarknetMessageRecord
			number big.Int
		)
		if err = rows.Scan(
			&number,
			&record.MessageIndex,
			&record.FromAddress,
			&record.ToAddress,
			&record.Payload,
		); err != nil {
			return nil, fmt.Errorf("scan starknet message: %w", err)
		}
		record.BlockNumber = &number
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate starknet messages: %w", err)
	}
	return records, nil
}
