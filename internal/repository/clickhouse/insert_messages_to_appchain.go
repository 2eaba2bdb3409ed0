package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/byteZorvin/piltover/internal/model"
)

// InsertMessagesToAppchain journals Starknet-to-appchain messages of
// accepted updates.
func (r *Repository) InsertMessagesToAppchain(ctx context.Context, messages []model.AppchainMessageRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_messages_to_appchain", err, start)
	}()

	if len(messages) == 0 {
		return nil
	}

	const query = `
INSERT INTO appchain_messages_to_appchain (
	block_number,
	message_index,
	from_address,
	to_address,
	nonce,
	selector,
	payload
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare appchain messages batch: %w", err)
	}

	for _, msg := range messages {
		if err = batch.Append(
			msg.BlockNumber,
			msg.MessageIndex,
			msg.FromAddress,
			msg.ToAddress,
			msg.Nonce,
			msg.Selector,
			msg.Payload,
		); err != nil {
			return fmt.Errorf("append appchain message: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert appchain messages: %w", err)
	}
	return nil
}
