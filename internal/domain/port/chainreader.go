package port

import (
	"context"
	"math/big"
)

// ChainReader is the port for read-only contract calls against a network's
// RPC endpoint. Results are raw on-chain integers at the token's native
// decimal precision. Timeouts and retries are the implementation's concern;
// this layer imposes neither.
type ChainReader interface {
	CallContractMethod(ctx context.Context, network, contractAddress, abiMethod string, args ...string) (*big.Int, error)
}
