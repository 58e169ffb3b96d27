package entity

import "errors"

var (
	ErrMissingNetwork   = errors.New("missing required field: network")
	ErrMissingRecipient = errors.New("missing required field: recipient")
	ErrMissingAmount    = errors.New("missing required field: amount")
	ErrMissingToken     = errors.New("missing required field: token")

	ErrUnsupportedNetwork = errors.New("unsupported network")
	ErrUnsupportedToken   = errors.New("unsupported token")
	ErrInvalidAmount      = errors.New("invalid transfer amount")

	// ErrEncryptionFailed wraps any failure of the payload encryption
	// primitive: malformed key material or a plaintext exceeding the
	// RSA key's single-shot capacity.
	ErrEncryptionFailed = errors.New("payload encryption failed")
)
