package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"fmt"

	"nairagate.com/internal/domain/entity"
	"nairagate.com/internal/domain/port"
)

// RSAEncryptor seals payloads with single-shot RSA PKCS#1 v1.5 encryption.
// No hybrid scheme: the JSON-serialized plaintext must fit within
// keySizeInBytes - 11, so a 2048-bit key caps payloads at 245 bytes.
// Stateless; safe for unsynchronized concurrent use.
type RSAEncryptor struct{}

// NewRSAEncryptor creates a payload encryptor.
func NewRSAEncryptor() port.PayloadEncryptor {
	return &RSAEncryptor{}
}

// Encrypt serializes data to JSON and encrypts it under publicKeyPEM,
// returning base64 ciphertext. Any failure of the underlying primitive
// wraps entity.ErrEncryptionFailed; oversize payloads fail rather than
// truncate.
func (e *RSAEncryptor) Encrypt(data any, publicKeyPEM string) (string, error) {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("%w: serialize payload: %v", entity.ErrEncryptionFailed, err)
	}

	pub, err := parseRSAPublicKey(publicKeyPEM)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrEncryptionFailed, err)
	}

	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, pub, plaintext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrEncryptionFailed, err)
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// parseRSAPublicKey accepts PKIX ("PUBLIC KEY") and PKCS#1 ("RSA PUBLIC KEY")
// PEM blocks.
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, fmt.Errorf("no PEM block found in public key")
	}

	if key, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %v", err)
	}
	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is %T, want RSA", parsed)
	}
	return key, nil
}
