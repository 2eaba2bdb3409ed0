package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/byteZorvin/piltover/internal/model"
)

// InsertMessagesToStarknet journals appchain-to-Starknet messages of
// accepted updates.
func (r *Repository) InsertMessagesToStarknet(ctx context.Context, messages []model.StarknetMessageRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_messages_to_starknet", err, start)
	}()

	if len(messages) == 0 {
		return nil
	}

	const query = `
INSERT INTO appchain_messages_to_starknet (
	block_number,
	message_index,
	from_address,
	to_address,
	payload
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare starknet messages batch: %w", err)
	}

	for _, msg := range messages {
		if err = batch.Append(
			msg.BlockNumber,
			msg.MessageIndex,
			msg.FromAddress,
			msg.ToAddress,
			msg.Payload,
		); err != nil {
			return fmt.Errorf("append starknet message: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert starknet messages: %w", err)
	}
	return nil
}
