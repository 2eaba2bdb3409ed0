// Package program tracks the trusted program identity that submitted
// outputs must match.
package program

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/byteZorvin/piltover/internal/model"
)

// Info identifies the off-chain program and configuration whose outputs
// this service settles. ProgramHash feeds the attestation fact; outputs
// must carry the registered ConfigHash.
type Info struct {
	ProgramHash model.Felt
	ConfigHash  model.Felt
}

// Registry holds the registered program info and the address of the fact
// registry contract attesting its outputs.
type Registry struct {
	logger *zap.Logger

	mu           sync.RWMutex
	info         Info
	registered   bool
	factRegistry string
}

// NewRegistry builds an empty Registry. Until SetInfo is called the
// config-hash gate is open, matching an unconfigured contract.
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{logger: logger.Named("program")}
}

// SetInfo registers the trusted program identity. Privileged; ownership
// is enforced by the caller.
func (r *Registry) SetInfo(info Info) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.info = info
	r.registered = true
	r.logger.Info("program info registered",
		zap.String("programHash", model.FeltToHex(&info.ProgramHash)),
		zap.String("configHash", model.FeltToHex(&info.ConfigHash)),
	)
}

// Info returns the registered program identity and whether one is set.
func (r *Registry) Info() (Info, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.info, r.registered
}

// SetFactRegistry records the attestation contract address. Privileged.
func (r *Registry) SetFactRegistry(address string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factRegistry = address
	r.logger.Info("fact registry set", zap.String("address", address))
}

// FactRegistry returns the attestation contract address, empty if unset.
func (r *Registry) FactRegistry() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.factRegistry
}

// ValidateOutput checks a decoded output against the registered program
// identity. With no registered info every output passes.
func (r *Registry) ValidateOutput(output *model.ProgramOutput) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.registered {
		return nil
	}
	if !output.ConfigHash.Equal(&r.info.ConfigHash) {
		return fmt.Errorf("%w: output carries %s, registered is %s",
			model.ErrInvalidConfigHash,
			model.FeltToHex(&output.ConfigHash),
			model.FeltToHex(&r.info.ConfigHash),
		)
	}
	return nil
}
