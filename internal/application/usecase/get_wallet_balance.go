package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"nairagate.com/internal/domain/entity"
	"nairagate.com/internal/domain/port"
)

// GetWalletBalanceUseCase aggregates a wallet's balances across every token
// supported on a network.
type GetWalletBalanceUseCase struct {
	registry port.NetworkRegistry
	chain    port.ChainReader
}

// NewGetWalletBalanceUseCase creates a new GetWalletBalanceUseCase.
func NewGetWalletBalanceUseCase(registry port.NetworkRegistry, chain port.ChainReader) *GetWalletBalanceUseCase {
	return &GetWalletBalanceUseCase{
		registry: registry,
		chain:    chain,
	}
}

// Execute resolves the network's token list, queries every token's balanceOf
// concurrently and joins the results. All-or-nothing: one failed query fails
// the whole call, so a partial total is never presented. An unrecognized
// network is a soft miss and yields a zero-valued result.
func (uc *GetWalletBalanceUseCase) Execute(ctx context.Context, network, address string) (*entity.WalletBalance, error) {
	tokens, ok := uc.registry.SupportedTokens(network)
	if !ok {
		return entity.NewZeroWalletBalance(network, address), nil
	}

	amounts := make([]float64, len(tokens))

	g, ctx := errgroup.WithContext(ctx)
	for i, token := range tokens {
		i, token := i, token
		g.Go(func() error {
			raw, err := uc.chain.CallContractMethod(ctx, network, token.Address, "balanceOf", address)
			if err != nil {
				return fmt.Errorf("balance query for %s on %s: %w", token.Symbol, network, err)
			}
			// Scale raw integer units by 10^decimals. Exact decimal
			// arithmetic up to the final float64 conversion, which can
			// still lose precision for very large balances.
			amounts[i] = decimal.NewFromBigInt(raw, -int32(token.Decimals)).InexactFloat64()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := entity.NewZeroWalletBalance(network, address)
	for i, token := range tokens {
		result.Balances[token.Symbol] = amounts[i]
		result.Total += amounts[i]
	}
	return result, nil
}
