package model

import (
	"math/big"
	"time"
)

// StateUpdateRecord is the journal row written for every accepted state
// transition. BlockNumber is widened for range queries; roots and hashes
// stay in their canonical hex form.
type StateUpdateRecord struct {
	BlockNumber      *big.Int
	OldRoot          string
	NewRoot          string
	BlockHash        string
	Fact             string
	Operator         string
	StarknetMsgCount uint32
	AppchainMsgCount uint32
	AcceptedAt       time.Time
}

// StarknetMessageRecord is the journal row for one appchain-to-Starknet
// message of an accepted update.
type StarknetMessageRecord struct {
	BlockNumber  *big.Int
	MessageIndex uint32
	FromAddress  string
	ToAddress    string
	Payload      []string
}

// AppchainMessageRecord is the journal row for one Starknet-to-appchain
// message of an accepted update.
type AppchainMessageRecord struct {
	BlockNumber  *big.Int
	MessageIndex uint32
	FromAddress  string
	ToAddress    string
	Nonce        string
	Selector     string
	Payload      []string
}

// NewStateUpdateRecord builds the journal row for an accepted output.
func NewStateUpdateRecord(output *ProgramOutput, operator, fact string, acceptedAt time.Time) StateUpdateRecord {
	return StateUpdateRecord{
		BlockNumber:      WidenFelt(&output.NewBlockNumber),
		OldRoot:          FeltToHex(&output.InitialRoot),
		NewRoot:          FeltToHex(&output.FinalRoot),
		BlockHash:        FeltToHex(&output.NewBlockHash),
		Fact:             fact,
		Operator:         operator,
		StarknetMsgCount: uint32(len(output.MessagesToStarknet)),
		AppchainMsgCount: uint32(len(output.MessagesToAppchain)),
		AcceptedAt:       acceptedAt,
	}
}

// StarknetMessageRecords flattens the Starknet-bound batch of an accepted
// output into journal rows, preserving stream order.
func StarknetMessageRecords(output *ProgramOutput) []StarknetMessageRecord {
	records := make([]StarknetMessageRecord, 0, len(output.MessagesToStarknet))
	for i := range output.MessagesToStarknet {
		msg := &output.MessagesToStarknet[i]
		records = append(records, StarknetMessageRecord{
			BlockNumber:  WidenFelt(&output.NewBlockNumber),
			MessageIndex: uint32(i),
			FromAddress:  FeltToHex(&msg.FromAddress),
			ToAddress:    FeltToHex(&msg.ToAddress),
			Payload:      FeltsToHex(msg.Payload),
		})
	}
	return records
}

// AppchainMessageRecords flattens the appchain-bound batch of an accepted
// output into journal rows, preserving stream order.
func AppchainMessageRecords(output *ProgramOutput) []AppchainMessageRecord {
	records := make([]AppchainMessageRecord, 0, len(output.MessagesToAppchain))
	for i := range output.MessagesToAppchain {
		msg := &output.MessagesToAppchain[i]
		records = append(records, AppchainMessageRecord{
			BlockNumber:  WidenFelt(&output.NewBlockNumber),
			MessageIndex: uint32(i),
			FromAddress:  FeltToHex(&msg.FromAddress),
			ToAddress:    FeltToHex(&msg.ToAddress),
			Nonce:        FeltToHex(&msg.Nonce),
			Selector:     FeltToHex(&msg.Selector),
			Payload:      FeltsToHex(msg.Payload),
		})
	}
	return records
}
