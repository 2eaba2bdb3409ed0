package model

// MessageToStarknet is an appchain-to-Starknet message recorded in a
// program output. Consumption semantics live outside this service; only
// presence and order are tracked here.
type MessageToStarknet struct {
	FromAddress Felt
	ToAddress   Felt
	Payload     []Felt
}

// MessageToAppchain is a Starknet-to-appchain message recorded in a
// program output.
type MessageToAppchain struct {
	FromAddress Felt
	ToAddress   Felt
	Nonce       Felt
	Selector    Felt
	Payload     []Felt
}

// ProgramOutput is the decoded result of one SNOS program output stream.
// It is built once per update call, consumed by the state tracker and the
// journal, and never persisted as a whole.
type ProgramOutput struct {
	InitialRoot     Felt
	FinalRoot       Felt
	PrevBlockNumber Felt
	NewBlockNumber  Felt
	PrevBlockHash   Felt
	NewBlockHash    Felt
	OsProgramHash   Felt
	ConfigHash      Felt
	UseKzgDA        Felt
	FullOutput      Felt

	MessagesToStarknet []MessageToStarknet
	MessagesToAppchain []MessageToAppchain
}
