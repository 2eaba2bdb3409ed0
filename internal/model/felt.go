// Package model defines domain models for appchain settlement.
package model

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// Felt is an element of the Starknet prime field, the atomic unit of
// program output streams.
type Felt = fp.Element

// SentinelBlockNumber returns the reserved maximum field value marking
// "no prior block" on an uninitialized rolling state.
func SentinelBlockNumber() Felt {
	var s Felt
	s.SetOne()
	s.Neg(&s)
	return s
}

// FeltToHex renders a felt as a 0x-prefixed lowercase hex string.
func FeltToHex(f *Felt) string {
	return "0x" + f.Text(16)
}

// HexToFelt parses a 0x-prefixed hex or decimal string into a felt.
func HexToFelt(s string) (Felt, error) {
	var f Felt
	if _, err := f.SetString(s); err != nil {
		return Felt{}, fmt.Errorf("parse felt %q: %w", s, err)
	}
	return f, nil
}

// ParseFelts parses a slice of encoded field elements, preserving order.
func ParseFelts(values []string) ([]Felt, error) {
	felts := make([]Felt, 0, len(values))
	for i, v := range values {
		f, err := HexToFelt(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		felts = append(felts, f)
	}
	return felts, nil
}

// FeltsToHex renders a slice of felts, preserving order.
func FeltsToHex(felts []Felt) []string {
	out := make([]string, 0, len(felts))
	for i := range felts {
		out = append(out, FeltToHex(&felts[i]))
	}
	return out
}

// WidenFelt lifts a felt into the unbounded integer domain. Field
// representations have no native order; magnitude comparisons must go
// through the widened value.
func WidenFelt(f *Felt) *big.Int {
	return f.BigInt(new(big.Int))
}
