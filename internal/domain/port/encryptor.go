package port

// PayloadEncryptor is the port for sealing sensitive request payloads.
// Implementations serialize data to JSON and encrypt it for the holder of
// the private key matching publicKeyPEM, returning base64 ciphertext.
type PayloadEncryptor interface {
	Encrypt(data any, publicKeyPEM string) (string, error)
}
