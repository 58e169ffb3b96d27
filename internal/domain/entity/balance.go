package entity

// WalletBalance is the aggregated balance of one wallet on one network.
// Total always equals the sum of the Balances values, within floating-point
// tolerance. Amounts are human-scaled (raw on-chain integer / 10^decimals);
// the float64 representation can lose precision for very large balances.
type WalletBalance struct {
	Network  string             `json:"network"`
	Address  string             `json:"address"`
	Total    float64            `json:"total"`
	Balances map[string]float64 `json:"balances"`
}

// NewZeroWalletBalance returns the empty result used when a network is not
// recognized. Soft miss: callers render an empty state, no error is raised.
func NewZeroWalletBalance(network, address string) *WalletBalance {
	return &WalletBalance{
		Network:  network,
		Address:  address,
		Balances: make(map[string]float64),
	}
}
