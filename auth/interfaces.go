package auth

// Verifier decides whether a presented api key grants access.
type Verifier interface {
	Verify(presented string) error
}
