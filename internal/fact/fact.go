// Package fact computes and checks attestation facts for program
// outputs. Whether a fact has been honestly produced is proven elsewhere;
// this package only asks an external registry for the answer.
package fact

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/byteZorvin/piltover/internal/model"
)

// Compute derives the attestation fact for a program output: the keccak
// of the program hash followed by every output word, each serialized as a
// 32-byte big-endian field element. The layout matches the off-chain
// prover's fact registration.
func Compute(programHash model.Felt, outputWords []model.Felt) [32]byte {
	h := sha3.NewLegacyKeccak256()

	b := programHash.Bytes()
	h.Write(b[:])
	for i := range outputWords {
		wb := outputWords[i].Bytes()
		h.Write(wb[:])
	}

	var fact [32]byte
	copy(fact[:], h.Sum(nil))
	return fact
}

// Hex renders a fact as a 0x-prefixed hex string.
func Hex(fact [32]byte) string {
	return "0x" + hex.EncodeToString(fact[:])
}
