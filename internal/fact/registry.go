package fact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/byteZorvin/piltover/internal/clock"
	"github.com/byteZorvin/piltover/internal/model"
)

const factRegistryABI = `[{"inputs":[{"internalType":"bytes32","name":"fact","type":"bytes32"}],"name":"isValid","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"view","type":"function"}]`

// EthereumRegistry checks facts against an on-chain fact registry
// contract exposing isValid(bytes32) bool.
type EthereumRegistry struct {
	logger   *zap.Logger
	provider *ethclient.Client
	contract common.Address
	registry abi.ABI
}

// NewEthereumRegistry connects to the chain and binds the registry
// contract address.
func NewEthereumRegistry(logger *zap.Logger, rpcURL, contractAddr string) (*EthereumRegistry, error) {
	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial ethereum rpc: %w", err)
	}
	parsed, err := abi.JSON(strings.NewReader(factRegistryABI))
	if err != nil {
		return nil, fmt.Errorf("parse fact registry abi: %w", err)
	}
	return &EthereumRegistry{
		logger:   logger.Named("factRegistry"),
		provider: client,
		contract: common.HexToAddress(contractAddr),
		registry: parsed,
	}, nil
}

// IsValid asks the registry whether the fact has been attested.
func (r *EthereumRegistry) IsValid(ctx context.Context, fact [32]byte) (bool, error) {
	input, err := r.registry.Pack("isValid", fact)
	if err != nil {
		return false, fmt.Errorf("pack isValid call: %w", err)
	}

	output, err := r.provider.CallContract(ctx, ethereum.CallMsg{
		To:   &r.contract,
		Data: input,
	}, nil)
	if err != nil {
		return false, fmt.Errorf("call fact registry: %w", err)
	}

	results, err := r.registry.Unpack("isValid", output)
	if err != nil {
		return false, fmt.Errorf("unpack isValid result: %w", err)
	}
	if len(results) != 1 {
		return false, fmt.Errorf("unexpected isValid result arity %d", len(results))
	}
	valid, ok := results[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected isValid result type %T", results[0])
	}
	return valid, nil
}

// WaitForFact polls the registry until the fact turns valid, the attempts
// run out, or the context is canceled. Registration typically lags proof
// submission by a few blocks.
func (r *EthereumRegistry) WaitForFact(ctx context.Context, fact [32]byte, interval time.Duration, attempts int) error {
	attempt := 0
	err := clock.Poll(ctx, interval, attempts, func(ctx context.Context) (bool, error) {
		attempt++
		valid, err := r.IsValid(ctx, fact)
		if err != nil {
			return false, err
		}
		if !valid {
			r.logger.Debug("fact not registered yet",
				zap.String("fact", Hex(fact)),
				zap.Int("attempt", attempt),
			)
		}
		return valid, nil
	})
	if errors.Is(err, clock.ErrAttemptsExhausted) {
		return fmt.Errorf("%w: %s after %d attempts", model.ErrInvalidFact, Hex(fact), attempts)
	}
	return err
}

// Close releases the underlying RPC connection.
func (r *EthereumRegistry) Close() {
	r.provider.Close()
}

// NoopChecker accepts every fact. Used by deployments that settle
// pre-attested outputs without L1 access.
type NoopChecker struct{}

// IsValid always reports the fact as valid.
func (NoopChecker) IsValid(context.Context, [32]byte) (bool, error) {
	return true, nil
}

// WaitForFact returns immediately since every fact is valid.
func (NoopChecker) WaitForFact(context.Context, [32]byte, time.Duration, int) error {
	return nil
}
