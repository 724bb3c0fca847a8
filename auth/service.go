package auth

type verifier struct {
	key Key
}

func NewVerifier(key Key) Verifier {
	return &verifier{key: key}
}

func (v *verifier) Verify(presented string) error {
	if presented == "" {
		return ErrMissingKey
	}

	if v.key.IsZero() {
		return ErrKeyUnavailable
	}

	if !v.key.Matches(presented) {
		return ErrInvalidKey
	}

	return nil
}
