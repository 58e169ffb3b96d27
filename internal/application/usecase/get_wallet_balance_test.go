package usecase

import (
	"context"
	"errors"
	"math"
	"math/big"
	"testing"

	"nairagate.com/internal/domain/entity"
)

// mockRegistry is a mock implementation of port.NetworkRegistry
type mockRegistry struct {
	tokens   map[string][]entity.Token
	gateways map[string]string
}

func (m *mockRegistry) SupportedTokens(network string) ([]entity.Token, bool) {
	tokens, ok := m.tokens[network]
	return tokens, ok
}

func (m *mockRegistry) GatewayContractAddress(network string) (string, bool) {
	addr, ok := m.gateways[network]
	return addr, ok
}

func (m *mockRegistry) ExplorerLink(network, txHash string) (string, bool) {
	return "", false
}

func (m *mockRegistry) Networks() []entity.Network {
	return nil
}

// mockChainReader is a mock implementation of port.ChainReader
type mockChainReader struct {
	callFunc func(ctx context.Context, network, contractAddress, abiMethod string, args ...string) (*big.Int, error)
}

func (m *mockChainReader) CallContractMethod(ctx context.Context, network, contractAddress, abiMethod string, args ...string) (*big.Int, error) {
	if m.callFunc != nil {
		return m.callFunc(ctx, network, contractAddress, abiMethod, args...)
	}
	return big.NewInt(0), nil
}

func threeTokenRegistry() *mockRegistry {
	return &mockRegistry{
		tokens: map[string][]entity.Token{
			"Polygon": {
				{Symbol: "USDT", Decimals: 6, Address: "0xaaa1"},
				{Symbol: "USDC", Decimals: 6, Address: "0xaaa2"},
				{Symbol: "DAI", Decimals: 18, Address: "0xaaa3"},
			},
		},
	}
}

func TestGetWalletBalanceUseCase_Execute(t *testing.T) {
	wallet := "0x000000000000000000000000000000000000dead"

	balances := map[string]*big.Int{
		"0xaaa1": big.NewInt(12_345_678),             // 12.345678 USDT
		"0xaaa2": big.NewInt(5_000_000),              // 5 USDC
		"0xaaa3": big.NewInt(0).Mul(big.NewInt(25), big.NewInt(1e18)), // 25 DAI
	}

	chain := &mockChainReader{
		callFunc: func(ctx context.Context, network, contractAddress, abiMethod string, args ...string) (*big.Int, error) {
			if abiMethod != "balanceOf" {
				t.Fatalf("abiMethod = %s, want balanceOf", abiMethod)
			}
			if len(args) != 1 || args[0] != wallet {
				t.Fatalf("args = %v, want [%s]", args, wallet)
			}
			raw, ok := balances[contractAddress]
			if !ok {
				t.Fatalf("unexpected contract address %s", contractAddress)
			}
			return raw, nil
		},
	}

	uc := NewGetWalletBalanceUseCase(threeTokenRegistry(), chain)
	result, err := uc.Execute(context.Background(), "Polygon", wallet)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := map[string]float64{
		"USDT": 12.345678,
		"USDC": 5,
		"DAI":  25,
	}
	if len(result.Balances) != len(want) {
		t.Fatalf("Balances has %d entries, want %d", len(result.Balances), len(want))
	}
	for symbol, amount := range want {
		if math.Abs(result.Balances[symbol]-amount) > 1e-9 {
			t.Errorf("Balances[%s] = %v, want %v", symbol, result.Balances[symbol], amount)
		}
	}

	sum := 0.0
	for _, v := range result.Balances {
		sum += v
	}
	if math.Abs(result.Total-sum) > 1e-9 {
		t.Errorf("Total = %v, want sum of balances %v", result.Total, sum)
	}
}

func TestGetWalletBalanceUseCase_UnknownNetworkSoftMiss(t *testing.T) {
	chain := &mockChainReader{
		callFunc: func(ctx context.Context, network, contractAddress, abiMethod string, args ...string) (*big.Int, error) {
			t.Fatal("chain reader must not be called for an unknown network")
			return nil, nil
		},
	}

	uc := NewGetWalletBalanceUseCase(threeTokenRegistry(), chain)
	result, err := uc.Execute(context.Background(), "Moonbeam", "0xdead")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Total != 0 {
		t.Errorf("Total = %v, want 0", result.Total)
	}
	if len(result.Balances) != 0 {
		t.Errorf("Balances has %d entries, want 0", len(result.Balances))
	}
}

func TestGetWalletBalanceUseCase_AllOrNothing(t *testing.T) {
	queryErr := errors.New("rpc unreachable")
	chain := &mockChainReader{
		callFunc: func(ctx context.Context, network, contractAddress, abiMethod string, args ...string) (*big.Int, error) {
			if contractAddress == "0xaaa2" {
				return nil, queryErr
			}
			return big.NewInt(1_000_000), nil
		},
	}

	uc := NewGetWalletBalanceUseCase(threeTokenRegistry(), chain)
	result, err := uc.Execute(context.Background(), "Polygon", "0xdead")
	if err == nil {
		t.Fatal("Execute() error = nil, want error when one token query fails")
	}
	if !errors.Is(err, queryErr) {
		t.Errorf("Execute() error = %v, want wrapped %v", err, queryErr)
	}
	if result != nil {
		t.Errorf("Execute() result = %+v, want nil (no partial totals)", result)
	}
}

func TestGetWalletBalanceUseCase_ZeroBalances(t *testing.T) {
	uc := NewGetWalletBalanceUseCase(threeTokenRegistry(), &mockChainReader{})

	result, err := uc.Execute(context.Background(), "Polygon", "0xdead")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Total != 0 {
		t.Errorf("Total = %v, want 0", result.Total)
	}
	if len(result.Balances) != 3 {
		t.Errorf("Balances has %d entries, want 3 (every token mapped)", len(result.Balances))
	}
}
