package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey_Matches(t *testing.T) {
	hash, err := HashKey("s3cret")
	require.NoError(t, err)

	hashed, err := NewHashedKey(hash)
	require.NoError(t, err)

	tests := []struct {
		name      string
		key       Key
		presented string
		want      bool
	}{
		{name: "plain match", key: NewKey("s3cret"), presented: "s3cret", want: true},
		{name: "plain mismatch", key: NewKey("s3cret"), presented: "S3CRET"},
		{name: "plain prefix", key: NewKey("s3cret"), presented: "s3cre"},
		{name: "empty presented", key: NewKey("s3cret"), presented: ""},
		{name: "zero key", key: Key{}, presented: "s3cret"},
		{name: "zero key empty presented", key: NewKey(""), presented: ""},
		{name: "hash match", key: hashed, presented: "s3cret", want: true},
		{name: "hash mismatch", key: hashed, presented: "wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.Matches(tt.presented))
		})
	}
}

func TestNewHashedKey_RejectsMalformedHash(t *testing.T) {
	_, err := NewHashedKey("not-a-hash")
	assert.Equal(t, ErrMalformedHash, err)
}

func TestKey_IsZero(t *testing.T) {
	assert.True(t, Key{}.IsZero())
	assert.True(t, NewKey("").IsZero())
	assert.False(t, NewKey("k").IsZero())
}
