package snos

import "github.com/byteZorvin/piltover/internal/model"

// Encode renders a program output back into the wire format, including a
// zeroed opaque bootloader header. Decoding an encoded output reproduces
// the original structured values exactly.
func Encode(output *model.ProgramOutput) []model.Felt {
	stream := make([]model.Felt, bootloaderHeaderLen, bootloaderHeaderLen+headerLen)

	stream = append(stream,
		output.InitialRoot,
		output.FinalRoot,
		output.PrevBlockNumber,
		output.NewBlockNumber,
		output.PrevBlockHash,
		output.NewBlockHash,
		output.OsProgramHash,
		output.ConfigHash,
		output.UseKzgDA,
		output.FullOutput,
	)

	starknetSegment := encodeStarknetMessages(output.MessagesToStarknet)
	stream = append(stream, countFelt(len(starknetSegment)))
	stream = append(stream, starknetSegment...)

	appchainSegment := encodeAppchainMessages(output.MessagesToAppchain)
	stream = append(stream, countFelt(len(appchainSegment)))
	stream = append(stream, appchainSegment...)

	return stream
}

func encodeStarknetMessages(messages []model.MessageToStarknet) []model.Felt {
	var segment []model.Felt
	for i := range messages {
		msg := &messages[i]
		segment = append(segment, msg.FromAddress, msg.ToAddress, countFelt(len(msg.Payload)))
		segment = append(segment, msg.Payload...)
	}
	return segment
}

func encodeAppchainMessages(messages []model.MessageToAppchain) []model.Felt {
	var segment []model.Felt
	for i := range messages {
		msg := &messages[i]
		segment = append(segment, msg.FromAddress, msg.ToAddress, msg.Nonce, msg.Selector, countFelt(len(msg.Payload)))
		segment = append(segment, msg.Payload...)
	}
	return segment
}

func countFelt(n int) model.Felt {
	var f model.Felt
	f.SetUint64(uint64(n))
	return f
}
