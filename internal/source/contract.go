package source

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

var (
	// ErrNoAddress is returned when no marketplace address was configured.
	ErrNoAddress = errors.New("marketplace address is not set")
	// ErrInvalidAddress is returned for anything that is not a 20-byte hex address.
	ErrInvalidAddress = errors.New("invalid marketplace address")
	// ErrNoCode is returned when nothing is deployed at the address.
	ErrNoCode = bind.ErrNoCode
)

// DialConfig describes how to reach the marketplace contract.
type DialConfig struct {
	RPCURL  string
	Address string

	// DialTimeout bounds connecting and the deployment check. Zero means no bound.
	DialTimeout time.Duration
	// CallTimeout bounds each metric query. Zero means no bound.
	CallTimeout time.Duration
}

// Contract is the production MetricsSource: a bound NFTMarketplaceV3 contract.
type Contract struct {
	address     common.Address
	contract    *bind.BoundContract
	callTimeout time.Duration
	closer      func()
}

var _ MetricsSource = (*Contract)(nil)

// ParseAddress validates and decodes a hex contract address.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return common.Address{}, ErrNoAddress
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

// Dial connects to cfg.RPCURL and binds the marketplace at cfg.Address.
// It fails fast when the address is malformed or has no deployed code.
func Dial(ctx context.Context, cfg DialConfig) (*Contract, error) {
	address, err := ParseAddress(cfg.Address)
	if err != nil {
		return nil, err
	}

	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}

	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", cfg.RPCURL, err)
	}

	code, err := client.CodeAt(ctx, address, nil)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("check code at %s: %w", address.Hex(), err)
	}
	if len(code) == 0 {
		client.Close()
		return nil, fmt.Errorf("%s at %s: %w", ContractName, address.Hex(), ErrNoCode)
	}

	c, err := NewContract(address, client, cfg.CallTimeout)
	if err != nil {
		client.Close()
		return nil, err
	}
	c.closer = client.Close
	return c, nil
}

// NewContract binds the marketplace ABI at address over caller.
func NewContract(address common.Address, caller bind.ContractCaller, callTimeout time.Duration) (*Contract, error) {
	parsed, err := abi.JSON(strings.NewReader(MarketplaceABI))
	if err != nil {
		return nil, fmt.Errorf("parse %s abi: %w", ContractName, err)
	}
	return &Contract{
		address:     address,
		contract:    bind.NewBoundContract(address, parsed, caller, nil, nil),
		callTimeout: callTimeout,
	}, nil
}

// Address returns the bound contract address.
func (c *Contract) Address() common.Address {
	return c.address
}

// Close releases the RPC connection opened by Dial.
func (c *Contract) Close() {
	if c.closer != nil {
		c.closer()
	}
}

func (c *Contract) PerformanceMetrics(ctx context.Context) (PerformanceMetrics, error) {
	return callTuple[PerformanceMetrics](ctx, c, MethodPerformanceMetrics)
}

func (c *Contract) EfficiencyScores(ctx context.Context) (EfficiencyScores, error) {
	return callTuple[EfficiencyScores](ctx, c, MethodEfficiencyScores)
}

func (c *Contract) UserExperience(ctx context.Context) (UserExperience, error) {
	return callTuple[UserExperience](ctx, c, MethodUserExperience)
}

func (c *Contract) Scalability(ctx context.Context) (Scalability, error) {
	return callTuple[Scalability](ctx, c, MethodScalability)
}

// callTuple invokes a no-argument view method returning a single tuple and
// converts the decoded anonymous struct into T.
func callTuple[T any](ctx context.Context, c *Contract, method string) (T, error) {
	var zero T

	if c.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
	}

	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, method); err != nil {
		return zero, fmt.Errorf("%s.%s: %w", ContractName, method, err)
	}
	if len(out) != 1 {
		return zero, fmt.Errorf("%s.%s: expected 1 return value, got %d", ContractName, method, len(out))
	}

	return *abi.ConvertType(out[0], new(T)).(*T), nil
}
