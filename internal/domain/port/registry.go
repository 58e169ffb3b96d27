package port

import (
	"nairagate.com/internal/domain/entity"
)

// NetworkRegistry is the port for static per-network metadata lookups.
// Unknown networks are a soft miss: the second return value is false and
// no error is raised.
type NetworkRegistry interface {
	SupportedTokens(network string) ([]entity.Token, bool)
	GatewayContractAddress(network string) (string, bool)
	ExplorerLink(network, txHash string) (string, bool)
	Networks() []entity.Network
}
