package giturl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLocation(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantBase     string
		wantFragment string
		wantErr      bool
	}{
		{
			name:         "shared link",
			input:        "https://example.org/forks/#octocat/Hello-World",
			wantBase:     "https://example.org/forks/",
			wantFragment: "octocat/Hello-World",
		},
		{
			name:         "escaped fragment",
			input:        "#octocat%2FHello-World",
			wantFragment: "octocat/Hello-World",
		},
		{
			name:     "no fragment",
			input:    "https://example.org/forks/",
			wantBase: "https://example.org/forks/",
		},
		{
			name:     "empty fragment",
			input:    "https://example.org/#",
			wantBase: "https://example.org/",
		},
		{
			name:    "bad escape",
			input:   "#octocat%zz",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, fragment, err := SplitLocation(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantBase, base)
			assert.Equal(t, tt.wantFragment, fragment)
		})
	}
}

func TestEscapeFragment(t *testing.T) {
	assert.Equal(t, "octocat/Hello-World", EscapeFragment("octocat/Hello-World"))
	assert.Equal(t, "a%20b/c", EscapeFragment("a b/c"))

	_, fragment, err := SplitLocation("#" + EscapeFragment("a b/c"))
	require.NoError(t, err)
	assert.Equal(t, "a b/c", fragment)
}

func TestIsLocation(t *testing.T) {
	assert.True(t, IsLocation("#octocat/Hello-World"))
	assert.False(t, IsLocation("octocat/Hello-World"))
}
