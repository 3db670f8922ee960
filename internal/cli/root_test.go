package cli

import (
	"testing"
	"time"

	"github.com/rileyhilliard/vitals/internal/config"
	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInterval(t *testing.T) {
	cfg := config.Defaults()

	tests := []struct {
		name     string
		override string
		want     time.Duration
		wantErr  bool
	}{
		{
			name:     "empty override uses config value",
			override: "",
			want:     config.DefaultRefreshInterval,
		},
		{
			name:     "flag wins over config",
			override: "5s",
			want:     5 * time.Second,
		},
		{
			name:     "not a duration",
			override: "soon",
			wantErr:  true,
		},
		{
			name:     "below minimum",
			override: "10ms",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveInterval(cfg, tt.override)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRootCommand_UnknownSubcommand(t *testing.T) {
	rootCmd.SetArgs([]string{"bogus"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "bogus"`)
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	assert.True(t, names["init"])
	assert.True(t, names["version"])
	assert.True(t, names["completion"])
}
