package entity

// TransferRequest is the caller-supplied input for sealing a transfer payload.
type TransferRequest struct {
	Network     string `json:"network"`
	Recipient   string `json:"recipient"`
	TokenSymbol string `json:"token"`
	Amount      string `json:"amount"`
}

// Validate checks that all required fields are present.
func (r *TransferRequest) Validate() error {
	if r.Network == "" {
		return ErrMissingNetwork
	}
	if r.Recipient == "" {
		return ErrMissingRecipient
	}
	if r.TokenSymbol == "" {
		return ErrMissingToken
	}
	if r.Amount == "" {
		return ErrMissingAmount
	}
	return nil
}

// TransferPayload is the plaintext structure sealed for the gateway API.
// It never travels unencrypted past the encryptor.
type TransferPayload struct {
	Network        string `json:"network"`
	GatewayAddress string `json:"gatewayAddress"`
	TokenAddress   string `json:"tokenAddress"`
	TokenSymbol    string `json:"tokenSymbol"`
	Recipient      string `json:"recipient"`
	Amount         string `json:"amount"`
	Nonce          string `json:"nonce"`
	RequestedAt    string `json:"requestedAt"`
}

// SealedTransfer is returned to the caller: opaque ciphertext plus the nonce
// used to correlate the request.
type SealedTransfer struct {
	Payload string `json:"payload"`
	Nonce   string `json:"nonce"`
}
