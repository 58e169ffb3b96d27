package registry

import (
	"sort"

	"nairagate.com/internal/domain/entity"
	"nairagate.com/internal/domain/port"
)

// gatewayAddress is the settlement entry point for the transfer flow. The
// same address is currently deployed on every supported network; verify
// against the gateway deployment manifest before changing it.
const gatewayAddress = "0x4b5e1c3b9f27a683ce7025060f186199b1c5e9d8"

const tokenIconBase = "https://static.nairagate.com/tokens/"

// networks maps an exact display name to its metadata. Built once at package
// init and never mutated; safe for unsynchronized concurrent reads.
var networks = map[string]entity.Network{
	"Base": {
		Name:           "Base",
		ChainID:        "eip155:8453",
		GatewayAddress: gatewayAddress,
		ExplorerTxURL:  "https://basescan.org/tx/",
		Tokens: []entity.Token{
			{Name: "USD Coin", Symbol: "USDC", Decimals: 6, Address: "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913", ImageURL: tokenIconBase + "usdc.svg"},
		},
	},
	"Arbitrum One": {
		Name:           "Arbitrum One",
		ChainID:        "eip155:42161",
		GatewayAddress: gatewayAddress,
		ExplorerTxURL:  "https://arbiscan.io/tx/",
		Tokens: []entity.Token{
			{Name: "Tether USD", Symbol: "USDT", Decimals: 6, Address: "0xfd086bc7cd5c481dcc9c85ebe478a1c0b69fcbb9", ImageURL: tokenIconBase + "usdt.svg"},
			{Name: "USD Coin", Symbol: "USDC", Decimals: 6, Address: "0xaf88d065e77c8cc2239327c5edb3a432268e5831", ImageURL: tokenIconBase + "usdc.svg"},
		},
	},
	"BNB Smart Chain": {
		Name:           "BNB Smart Chain",
		ChainID:        "eip155:56",
		GatewayAddress: gatewayAddress,
		ExplorerTxURL:  "https://bscscan.com/tx/",
		Tokens: []entity.Token{
			{Name: "Tether USD", Symbol: "USDT", Decimals: 18, Address: "0x55d398326f99059ff775485246999027b3197955", ImageURL: tokenIconBase + "usdt.svg"},
			{Name: "USD Coin", Symbol: "USDC", Decimals: 18, Address: "0x8ac76a51cc950d9822d68b83fe1ad97b32cd580d", ImageURL: tokenIconBase + "usdc.svg"},
		},
	},
	"Polygon": {
		Name:           "Polygon",
		ChainID:        "eip155:137",
		GatewayAddress: gatewayAddress,
		ExplorerTxURL:  "https://polygonscan.com/tx/",
		Tokens: []entity.Token{
			{Name: "Tether USD", Symbol: "USDT", Decimals: 6, Address: "0xc2132d05d31c914a87c6611c10748aeb04b58e8f", ImageURL: tokenIconBase + "usdt.svg"},
			{Name: "USD Coin", Symbol: "USDC", Decimals: 6, Address: "0x3c499c542cef5e3811e1192ce70d8cc03d5c3359", ImageURL: tokenIconBase + "usdc.svg"},
		},
	},
	"Scroll": {
		Name:           "Scroll",
		ChainID:        "eip155:534352",
		GatewayAddress: gatewayAddress,
		ExplorerTxURL:  "https://scrollscan.com/tx/",
		Tokens: []entity.Token{
			{Name: "Tether USD", Symbol: "USDT", Decimals: 6, Address: "0xf55bec9cafdbe8730f096aa55dad6d22d44099df", ImageURL: tokenIconBase + "usdt.svg"},
			{Name: "USD Coin", Symbol: "USDC", Decimals: 6, Address: "0x06efdbff2a14a7c8e15944d1f4a48f9f95f663a4", ImageURL: tokenIconBase + "usdc.svg"},
		},
	},
	"Optimism": {
		Name:           "Optimism",
		ChainID:        "eip155:10",
		GatewayAddress: gatewayAddress,
		ExplorerTxURL:  "https://optimistic.etherscan.io/tx/",
		Tokens: []entity.Token{
			{Name: "Tether USD", Symbol: "USDT", Decimals: 6, Address: "0x94b008aa00579c1307b0ef2c499ad98a8ce58e58", ImageURL: tokenIconBase + "usdt.svg"},
			{Name: "USD Coin", Symbol: "USDC", Decimals: 6, Address: "0x0b2c639c533813f4aa9d7837caf62653d097ff85", ImageURL: tokenIconBase + "usdc.svg"},
		},
	},
}

// Static implements the NetworkRegistry port over the compiled-in tables.
type Static struct{}

// NewStatic creates a registry backed by the static network tables.
func NewStatic() port.NetworkRegistry {
	return &Static{}
}

// SupportedTokens returns the ordered token list for a network. Lookup is an
// exact string match; unknown networks return (nil, false).
func (s *Static) SupportedTokens(network string) ([]entity.Token, bool) {
	n, ok := networks[network]
	if !ok {
		return nil, false
	}

	// Copy so callers cannot mutate the shared tables.
	tokens := make([]entity.Token, len(n.Tokens))
	copy(tokens, n.Tokens)
	return tokens, true
}

// GatewayContractAddress returns the gateway contract address for a network.
func (s *Static) GatewayContractAddress(network string) (string, bool) {
	n, ok := networks[network]
	if !ok {
		return "", false
	}
	return n.GatewayAddress, true
}

// ExplorerLink builds a full block-explorer URL for a transaction hash.
func (s *Static) ExplorerLink(network, txHash string) (string, bool) {
	n, ok := networks[network]
	if !ok {
		return "", false
	}
	return n.ExplorerTxURL + txHash, true
}

// Networks lists all supported networks sorted by name.
func (s *Static) Networks() []entity.Network {
	out := make([]entity.Network, 0, len(networks))
	for _, n := range networks {
		tokens := make([]entity.Token, len(n.Tokens))
		copy(tokens, n.Tokens)
		n.Tokens = tokens
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
