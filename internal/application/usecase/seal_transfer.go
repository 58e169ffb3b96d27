package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"nairagate.com/internal/domain/entity"
	"nairagate.com/internal/domain/port"
)

// SealTransferUseCase assembles the transfer request submitted to the
// gateway API and seals it with the gateway's RSA public key. The nonce in
// the sealed payload is returned alongside the ciphertext so the caller can
// correlate the eventual settlement callback.
type SealTransferUseCase struct {
	registry     port.NetworkRegistry
	encryptor    port.PayloadEncryptor
	nonces       port.NonceGenerator
	publicKeyPEM string
}

// NewSealTransferUseCase creates a new SealTransferUseCase.
func NewSealTransferUseCase(
	registry port.NetworkRegistry,
	encryptor port.PayloadEncryptor,
	nonces port.NonceGenerator,
	publicKeyPEM string,
) *SealTransferUseCase {
	return &SealTransferUseCase{
		registry:     registry,
		encryptor:    encryptor,
		nonces:       nonces,
		publicKeyPEM: publicKeyPEM,
	}
}

// Execute validates the request, resolves gateway and token metadata and
// returns the sealed payload. Unlike balance lookups, an unknown network is
// a hard error here: sealing needs a gateway address.
func (uc *SealTransferUseCase) Execute(_ context.Context, req *entity.TransferRequest) (*entity.SealedTransfer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidAmount, req.Amount)
	}

	gateway, ok := uc.registry.GatewayContractAddress(req.Network)
	if !ok {
		return nil, fmt.Errorf("%w: %q", entity.ErrUnsupportedNetwork, req.Network)
	}

	tokens, _ := uc.registry.SupportedTokens(req.Network)
	var token *entity.Token
	for i := range tokens {
		if tokens[i].Symbol == req.TokenSymbol {
			token = &tokens[i]
			break
		}
	}
	if token == nil {
		return nil, fmt.Errorf("%w: %q on %s", entity.ErrUnsupportedToken, req.TokenSymbol, req.Network)
	}

	payload := entity.TransferPayload{
		Network:        req.Network,
		GatewayAddress: gateway,
		TokenAddress:   token.Address,
		TokenSymbol:    token.Symbol,
		Recipient:      req.Recipient,
		Amount:         amount.String(),
		Nonce:          uc.nonces.Generate(0),
		RequestedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	ciphertext, err := uc.encryptor.Encrypt(payload, uc.publicKeyPEM)
	if err != nil {
		return nil, err
	}

	return &entity.SealedTransfer{
		Payload: ciphertext,
		Nonce:   payload.Nonce,
	}, nil
}
