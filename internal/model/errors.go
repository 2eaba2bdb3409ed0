package model

import "errors"

// Stable error identifiers for the settlement call path. Every failure
// aborts the whole call; off-chain tooling distinguishes "resubmit with
// correct sequencing" from "stream is corrupt" from "not authorized" by
// matching these with errors.Is.
var (
	// ErrMalformedStream marks a program output stream that is shorter
	// than its declared structure or carries an unrepresentable count.
	ErrMalformedStream = errors.New("malformed program output stream")
	// ErrUnsupportedMode marks an output produced in a mode this service
	// does not settle (aggregator programs, KZG DA, full output).
	ErrUnsupportedMode = errors.New("unsupported program output mode")
	// ErrInvalidPreviousBlockNumber marks an output that does not chain
	// onto the stored block number.
	ErrInvalidPreviousBlockNumber = errors.New("invalid previous block number")
	// ErrInvalidBlockNumber marks an output whose new block number breaks
	// the genesis or monotonicity rule.
	ErrInvalidBlockNumber = errors.New("invalid block number")
	// ErrInvalidPreviousBlockHash marks an output that does not chain onto
	// the stored block hash.
	ErrInvalidPreviousBlockHash = errors.New("invalid previous block hash")
	// ErrInvalidPreviousRoot marks an output whose initial root does not
	// match the stored state root.
	ErrInvalidPreviousRoot = errors.New("invalid previous state root")
	// ErrInvalidConfigHash marks an output produced under a configuration
	// other than the registered one.
	ErrInvalidConfigHash = errors.New("invalid config hash")
	// ErrInvalidFact marks an output whose attestation fact is not
	// registered as valid.
	ErrInvalidFact = errors.New("fact not registered as valid")
	// ErrUnauthorized marks a caller that may not invoke the operation.
	ErrUnauthorized = errors.New("caller not authorized")
)
