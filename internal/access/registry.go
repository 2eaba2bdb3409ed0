// Package access implements the operator and ownership gate for the
// settlement entry points.
package access

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/byteZorvin/piltover/internal/model"
)

// Registry tracks the contract owner and the set of operators allowed to
// submit state updates. Addresses are compared case-insensitively.
type Registry struct {
	logger *zap.Logger

	mu        sync.RWMutex
	owner     string
	operators map[string]struct{}
}

// NewRegistry builds a Registry owned by the given address.
func NewRegistry(logger *zap.Logger, owner string) *Registry {
	return &Registry{
		logger:    logger.Named("access"),
		owner:     normalize(owner),
		operators: make(map[string]struct{}),
	}
}

// Owner returns the current owner address.
func (r *Registry) Owner() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.owner
}

// TransferOwnership hands the registry to a new owner. Owner only.
func (r *Registry) TransferOwnership(caller, newOwner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireOwnerLocked(caller); err != nil {
		return err
	}
	r.owner = normalize(newOwner)
	r.logger.Info("ownership transferred", zap.String("owner", r.owner))
	return nil
}

// RegisterOperator allows an address to submit state updates. Owner only.
func (r *Registry) RegisterOperator(caller, operator string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireOwnerLocked(caller); err != nil {
		return err
	}
	r.operators[normalize(operator)] = struct{}{}
	r.logger.Info("operator registered", zap.String("operator", normalize(operator)))
	return nil
}

// UnregisterOperator revokes an operator. Owner only.
func (r *Registry) UnregisterOperator(caller, operator string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireOwnerLocked(caller); err != nil {
		return err
	}
	delete(r.operators, normalize(operator))
	r.logger.Info("operator unregistered", zap.String("operator", normalize(operator)))
	return nil
}

// IsOperator reports whether the address may submit state updates.
func (r *Registry) IsOperator(address string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.operators[normalize(address)]
	return ok
}

// Operators returns the registered operator addresses, sorted.
func (r *Registry) Operators() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.operators))
	for op := range r.operators {
		out = append(out, op)
	}
	sort.Strings(out)
	return out
}

// RequireOperator fails with Unauthorized unless the address is a
// registered operator.
func (r *Registry) RequireOperator(address string) error {
	if !r.IsOperator(address) {
		return fmt.Errorf("%w: %s is not a registered operator", model.ErrUnauthorized, normalize(address))
	}
	return nil
}

// RequireOwner fails with Unauthorized unless the address is the owner.
func (r *Registry) RequireOwner(address string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.requireOwnerLocked(address)
}

func (r *Registry) requireOwnerLocked(address string) error {
	if normalize(address) != r.owner {
		return fmt.Errorf("%w: %s is not the owner", model.ErrUnauthorized, normalize(address))
	}
	return nil
}

func normalize(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
