package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/easycodec/internal/config"
)

// TestExecuteConfigInitCommand tests that the written file loads back as the defaults.
func TestExecuteConfigInitCommand(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "easycodec.yaml")

	ExecuteConfigInitCommand(context.Background(), configPath, false)

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
