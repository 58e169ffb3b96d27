package port

// NonceGenerator is the port for request correlation identifiers. Nonces are
// not security tokens: rough chronological ordering and low collision
// probability only.
type NonceGenerator interface {
	Generate(length int) string
}
