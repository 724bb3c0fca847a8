package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Key is the shared secret clients present in the api-key header. It holds
// either the plain secret or its bcrypt hash.
type Key struct {
	plain []byte
	hash  []byte
}

var (
	ErrMissingKey     = errors.New("api key missing")
	ErrInvalidKey     = errors.New("api key invalid")
	ErrMalformedHash  = errors.New("api key hash is not a bcrypt hash")
	ErrKeyUnavailable = errors.New("no api key configured")
)

//NewKey returns a Key that matches the given secret
func NewKey(secret string) Key {
	return Key{plain: []byte(secret)}
}

//NewHashedKey returns a Key from a bcrypt hash so the secret itself never
// has to be deployed
func NewHashedKey(hash string) (Key, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return Key{}, ErrMalformedHash
	}
	return Key{hash: []byte(hash)}, nil
}

func (k Key) IsZero() bool {
	return len(k.plain) == 0 && len(k.hash) == 0
}

func (k Key) Matches(presented string) bool {
	if k.IsZero() || presented == "" {
		return false
	}
	if len(k.hash) > 0 {
		return hashMatchesKey(k.hash, presented)
	}
	return subtle.ConstantTimeCompare(k.plain, []byte(presented)) == 1
}

// HashKey returns the bcrypt hash of secret suitable for NewHashedKey.
func HashKey(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.New("error hashing api key")
	}
	return string(hash), nil
}

func hashMatchesKey(hash []byte, key string) bool {
	err := bcrypt.CompareHashAndPassword(hash, []byte(key))
	return err == nil
}
