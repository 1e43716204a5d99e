package identifier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := New()

		require.NoError(t, Validate(id, "toy"))
		assert.False(t, seen[id], "duplicate id %v", id)
		seen[id] = true
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid token", "00a1b2c3d4e5f607", false},
		{"too short", "00a1b2c3d4e5f6", true},
		{"too long", "00a1b2c3d4e5f60788", true},
		{"uppercase hex", "00A1B2C3D4E5F607", true},
		{"non hex", "00a1b2c3d4e5g607", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id, "school")
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var invalidErr *InvalidError
			require.True(t, errors.As(err, &invalidErr))
			assert.Equal(t, "school", invalidErr.Label)
			assert.Contains(t, err.Error(), "school")
		})
	}
}
