package model

// State is the rolling appchain state: the last accepted Merkle state
// root, block number and block hash. Exactly one triple is current at any
// time; it only changes through a fully validated transition.
type State struct {
	Root        Felt
	BlockNumber Felt
	BlockHash   Felt
}

// IsGenesis reports whether the state still carries the sentinel block
// number, i.e. no block has been accepted yet.
func (s *State) IsGenesis() bool {
	sentinel := SentinelBlockNumber()
	return s.BlockNumber.Equal(&sentinel)
}
