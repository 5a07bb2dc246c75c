package gameid

import (
	rand "math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	id := Generate()

	require.Len(t, id, Length)
	assert.NoError(t, Validate(id))
	assert.LessOrEqual(t, id[0], byte('7'))
}

func TestGenerateUnique(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := Generate()
		assert.False(t, ids[id], "duplicate ID generated: %s", id)
		ids[id] = true
	}
}

func TestGenerateTimeSorted(t *testing.T) {
	var ids []string
	for i := 0; i < 10; i++ {
		ids = append(ids, Generate())
		time.Sleep(2 * time.Millisecond)
	}

	for i := 1; i < len(ids); i++ {
		assert.Negative(t, strings.Compare(ids[i-1], ids[i]), "IDs not sorted: %s >= %s", ids[i-1], ids[i])
	}
}

func TestGeneratorWithEntropy(t *testing.T) {
	g := NewGenerator(rand.NewChaCha8([32]byte{1, 2, 3}))
	id := g.Generate()
	require.NoError(t, Validate(id))

	decoded, err := Decode(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), decoded.Version())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, id := range []uuid.UUID{
		{},
		uuid.Must(uuid.NewV7()),
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	} {
		encoded := Encode(id)
		require.NoError(t, Validate(encoded))
		decoded, err := Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}

	assert.Equal(t, strings.Repeat("0", Length), Encode(uuid.UUID{}))
	assert.Equal(t, "7"+strings.Repeat("z", Length-1), Encode(uuid.UUID{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid", id: strings.Repeat("0", 26)},
		{name: "too short", id: "0123", wantErr: true},
		{name: "too long", id: strings.Repeat("0", 27), wantErr: true},
		{name: "first char too high", id: "8" + strings.Repeat("0", 25), wantErr: true},
		{name: "invalid character", id: "0" + strings.Repeat("u", 25), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	_, err := Decode("bad")
	assert.Error(t, err)
}
