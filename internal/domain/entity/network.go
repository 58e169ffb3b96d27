package entity

// Token describes a supported stablecoin on a specific network.
type Token struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
	Address  string `json:"address"`
	ImageURL string `json:"imageUrl"`
}

// Network holds the static metadata for one supported blockchain network.
// Instances are built once at startup and never mutated afterwards.
type Network struct {
	Name           string  `json:"name"`
	ChainID        string  `json:"chainId"` // CAIP-2, e.g. "eip155:8453"
	GatewayAddress string  `json:"gatewayAddress"`
	ExplorerTxURL  string  `json:"explorerTxUrl"` // prefix; append a tx hash for a full link
	Tokens         []Token `json:"tokens"`
}
