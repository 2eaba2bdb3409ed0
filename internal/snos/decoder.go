// Package snos decodes SNOS program output streams into structured
// state-transition data.
package snos

import (
	"fmt"

	"github.com/byteZorvin/piltover/internal/model"
	"github.com/byteZorvin/piltover/pkg/safe"
)

// Wire layout of a program output stream. The bootloader header is opaque
// and skipped; the SNOS header fields sit at fixed offsets behind it.
const (
	bootloaderHeaderLen = 3
	headerLen           = 10

	offsetInitialRoot     = 0
	offsetFinalRoot       = 1
	offsetPrevBlockNumber = 2
	offsetNewBlockNumber  = 3
	offsetPrevBlockHash   = 4
	offsetNewBlockHash    = 5
	offsetOsProgramHash   = 6
	offsetConfigHash      = 7
	offsetUseKzgDA        = 8
	offsetFullOutput      = 9

	starknetMessageHeaderLen = 3
	appchainMessageHeaderLen = 5
)

// Decoder parses program output streams. The zero value decodes with the
// upstream-compatible lenient policy for incomplete trailing message
// records.
type Decoder struct {
	strictSegments bool
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithStrictSegments makes incomplete trailing message records a
// MalformedStream error instead of silently dropping them.
func WithStrictSegments() Option {
	return func(d *Decoder) {
		d.strictSegments = true
	}
}

// NewDecoder builds a Decoder.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode performs a single linear pass over the stream and returns the
// structured program output. It never reads past a batch's declared
// element count and never backtracks.
func (d *Decoder) Decode(stream []model.Felt) (*model.ProgramOutput, error) {
	cur := cursor{stream: stream}

	if err := cur.skip(bootloaderHeaderLen); err != nil {
		return nil, fmt.Errorf("bootloader header: %w", err)
	}

	header, err := cur.take(headerLen)
	if err != nil {
		return nil, fmt.Errorf("output header: %w", err)
	}

	output := &model.ProgramOutput{
		InitialRoot:     header[offsetInitialRoot],
		FinalRoot:       header[offsetFinalRoot],
		PrevBlockNumber: header[offsetPrevBlockNumber],
		NewBlockNumber:  header[offsetNewBlockNumber],
		PrevBlockHash:   header[offsetPrevBlockHash],
		NewBlockHash:    header[offsetNewBlockHash],
		OsProgramHash:   header[offsetOsProgramHash],
		ConfigHash:      header[offsetConfigHash],
		UseKzgDA:        header[offsetUseKzgDA],
		FullOutput:      header[offsetFullOutput],
	}

	if !output.OsProgramHash.IsZero() {
		return nil, fmt.Errorf("%w: aggregator programs not supported", model.ErrUnsupportedMode)
	}
	if !output.UseKzgDA.IsZero() {
		return nil, fmt.Errorf("%w: KZG data availability not supported", model.ErrUnsupportedMode)
	}
	if !output.FullOutput.IsZero() {
		return nil, fmt.Errorf("%w: full output mode not supported", model.ErrUnsupportedMode)
	}

	starknetSegment, err := cur.takeCounted()
	if err != nil {
		return nil, fmt.Errorf("messages to starknet segment: %w", err)
	}
	if output.MessagesToStarknet, err = d.parseStarknetMessages(starknetSegment); err != nil {
		return nil, fmt.Errorf("messages to starknet segment: %w", err)
	}

	appchainSegment, err := cur.takeCounted()
	if err != nil {
		return nil, fmt.Errorf("messages to appchain segment: %w", err)
	}
	if output.MessagesToAppchain, err = d.parseAppchainMessages(appchainSegment); err != nil {
		return nil, fmt.Errorf("messages to appchain segment: %w", err)
	}

	return output, nil
}

// parseStarknetMessages sub-parses a self-bounded segment into 3-element
// headers (from, to, payload length) each followed by its payload. The
// loop ends at the segment's declared boundary, not at end of stream.
func (d *Decoder) parseStarknetMessages(segment []model.Felt) ([]model.MessageToStarknet, error) {
	var messages []model.MessageToStarknet
	pos := 0
	for pos+starknetMessageHeaderLen <= len(segment) {
		payloadLen, err := feltIndex(&segment[pos+2])
		if err != nil {
			return nil, err
		}
		if payloadLen > len(segment)-pos-starknetMessageHeaderLen {
			if d.strictSegments {
				return nil, fmt.Errorf("%w: message payload exceeds segment", model.ErrMalformedStream)
			}
			return messages, nil
		}
		end := pos + starknetMessageHeaderLen + payloadLen
		messages = append(messages, model.MessageToStarknet{
			FromAddress: segment[pos],
			ToAddress:   segment[pos+1],
			Payload:     clonePayload(segment[pos+starknetMessageHeaderLen : end]),
		})
		pos = end
	}
	if pos != len(segment) && d.strictSegments {
		return nil, fmt.Errorf("%w: incomplete trailing message header", model.ErrMalformedStream)
	}
	return messages, nil
}

// parseAppchainMessages is the 5-element header (from, to, nonce,
// selector, payload length) counterpart of parseStarknetMessages.
func (d *Decoder) parseAppchainMessages(segment []model.Felt) ([]model.MessageToAppchain, error) {
	var messages []model.MessageToAppchain
	pos := 0
	for pos+appchainMessageHeaderLen <= len(segment) {
		payloadLen, err := feltIndex(&segment[pos+4])
		if err != nil {
			return nil, err
		}
		if payloadLen > len(segment)-pos-appchainMessageHeaderLen {
			if d.strictSegments {
				return nil, fmt.Errorf("%w: message payload exceeds segment", model.ErrMalformedStream)
			}
			return messages, nil
		}
		end := pos + appchainMessageHeaderLen + payloadLen
		messages = append(messages, model.MessageToAppchain{
			FromAddress: segment[pos],
			ToAddress:   segment[pos+1],
			Nonce:       segment[pos+2],
			Selector:    segment[pos+3],
			Payload:     clonePayload(segment[pos+appchainMessageHeaderLen : end]),
		})
		pos = end
	}
	if pos != len(segment) && d.strictSegments {
		return nil, fmt.Errorf("%w: incomplete trailing message header", model.ErrMalformedStream)
	}
	return messages, nil
}

// cursor is a forward-only position over the raw stream.
type cursor struct {
	stream []model.Felt
	pos    int
}

func (c *cursor) skip(n int) error {
	// Subtract form so a huge n cannot overflow the addition.
	if n > len(c.stream)-c.pos {
		return fmt.Errorf("%w: stream exhausted at element %d", model.ErrMalformedStream, c.pos)
	}
	c.pos += n
	return nil
}

func (c *cursor) take(n int) ([]model.Felt, error) {
	if n > len(c.stream)-c.pos {
		return nil, fmt.Errorf("%w: stream exhausted at element %d", model.ErrMalformedStream, c.pos)
	}
	taken := c.stream[c.pos : c.pos+n]
	c.pos += n
	return taken, nil
}

// takeCounted reads a length prefix and takes that many elements.
func (c *cursor) takeCounted() ([]model.Felt, error) {
	prefix, err := c.take(1)
	if err != nil {
		return nil, err
	}
	count, err := feltIndex(&prefix[0])
	if err != nil {
		return nil, err
	}
	return c.take(count)
}

// feltIndex narrows a felt into a native index, rejecting values that
// cannot address a stream segment.
func feltIndex(f *model.Felt) (int, error) {
	if !f.IsUint64() {
		return 0, fmt.Errorf("%w: count %s does not fit a native index", model.ErrMalformedStream, f.String())
	}
	n, err := safe.Int(f.Uint64())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", model.ErrMalformedStream, err)
	}
	return n, nil
}

func clonePayload(payload []model.Felt) []model.Felt {
	if len(payload) == 0 {
		return nil
	}
	return append([]model.Felt(nil), payload...)
}
