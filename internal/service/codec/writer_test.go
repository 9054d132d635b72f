package codec

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/easycodec/codec/base32"
	"github.com/oshokin/easycodec/codec/hex"
	"github.com/oshokin/easycodec/internal/config"
)

// testResults returns a batch with one successful and one failed item.
func testResults() []*Result {
	errBad := errors.New("bad input")

	return []*Result{
		{Index: 0, Input: "f", Output: "MY======"},
		{Index: 1, Input: "AB", Err: errBad, Error: errBad.Error()},
	}
}

// TestRenderResults tests rendering in every format.
func TestRenderResults(t *testing.T) {
	t.Parallel()

	t.Run("plain skips failed items", func(t *testing.T) {
		t.Parallel()

		payload, err := RenderResults(testResults(), config.OutputFormatPlain)
		require.NoError(t, err)
		assert.Equal(t, "MY======\n", string(payload))
	})

	t.Run("yaml keeps failed items", func(t *testing.T) {
		t.Parallel()

		payload, err := RenderResults(testResults(), config.OutputFormatYAML)
		require.NoError(t, err)

		var decoded []map[string]any
		require.NoError(t, yaml.Unmarshal(payload, &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "MY======", decoded[0]["output"])
		assert.Equal(t, "bad input", decoded[1]["error"])
		assert.NotContains(t, decoded[1], "output")
	})

	t.Run("json keeps failed items", func(t *testing.T) {
		t.Parallel()

		payload, err := RenderResults(testResults(), config.OutputFormatJSON)
		require.NoError(t, err)

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(payload, &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "f", decoded[0]["input"])
		assert.Equal(t, "AB", decoded[1]["input"])
		assert.Equal(t, "bad input", decoded[1]["error"])
	})

	t.Run("json keeps non-UTF-8 bytes as hex", func(t *testing.T) {
		t.Parallel()

		raw := []byte{0xFF, 0xFE, 0x00, 0x80}
		encoded := base32.Encode(raw)

		decoded, err := Base32Codec{}.Decode(encoded)
		require.NoError(t, err)

		payload, err := RenderResults([]*Result{
			{Index: 0, Input: encoded, Output: decoded},
			{Index: 1, Input: string(raw), Output: encoded},
		}, config.OutputFormatJSON)
		require.NoError(t, err)

		var records []jsonResult
		require.NoError(t, json.Unmarshal(payload, &records))
		require.Len(t, records, 2)

		assert.Equal(t, encoded, records[0].Input)
		assert.Empty(t, records[0].Output)
		assert.Equal(t, "fffe0080", records[0].OutputHex)

		output, err := hex.Decode(records[0].OutputHex)
		require.NoError(t, err)
		assert.Equal(t, raw, output)

		assert.Empty(t, records[1].Input)
		assert.Equal(t, "fffe0080", records[1].InputHex)
		assert.Equal(t, encoded, records[1].Output)
		assert.Empty(t, records[1].OutputHex)
	})

	t.Run("yaml keeps non-UTF-8 bytes", func(t *testing.T) {
		t.Parallel()

		raw := string([]byte{0xFF, 0xFE, 0x00, 0x80})

		payload, err := RenderResults([]*Result{{Index: 0, Input: "x", Output: raw}}, config.OutputFormatYAML)
		require.NoError(t, err)
		assert.Contains(t, string(payload), "!!binary")

		var records []Result
		require.NoError(t, yaml.Unmarshal(payload, &records))
		require.Len(t, records, 1)
		assert.Equal(t, raw, records[0].Output)
	})

	t.Run("plain writes newlines inside outputs verbatim", func(t *testing.T) {
		t.Parallel()

		results := []*Result{{Index: 0, Input: "MEFGE===", Output: "a\nb"}}

		payload, err := RenderResults(results, config.OutputFormatPlain)
		require.NoError(t, err)
		assert.Equal(t, "a\nb\n", string(payload))

		payload, err = RenderResults(results, config.OutputFormatJSON)
		require.NoError(t, err)

		var records []jsonResult
		require.NoError(t, json.Unmarshal(payload, &records))
		require.Len(t, records, 1)
		assert.Equal(t, "a\nb", records[0].Output)
	})

	t.Run("empty batch renders an empty list", func(t *testing.T) {
		t.Parallel()

		payload, err := RenderResults(nil, config.OutputFormatJSON)
		require.NoError(t, err)
		assert.JSONEq(t, "[]", string(payload))
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := RenderResults(testResults(), "xml")
		require.ErrorIs(t, err, ErrUnsupportedOutputFormat)
	})
}

// TestResultWriterStdout tests writing to standard output.
func TestResultWriterStdout(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, config.ValidateConfig(cfg))

	var stdout bytes.Buffer

	w := NewResultWriter(cfg, &stdout)
	require.NoError(t, w.Write(context.Background(), testResults()))
	assert.Equal(t, "MY======\n", stdout.String())
}

// TestResultWriterFile tests writing to a file through a temporary file.
func TestResultWriterFile(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "nested", "results.json")

	cfg := config.Default()
	cfg.OutputPath = outputPath
	cfg.OutputFormat = string(config.OutputFormatJSON)
	cfg.ShowProgress = false
	require.NoError(t, config.ValidateConfig(cfg))

	var stdout bytes.Buffer

	w := NewResultWriter(cfg, &stdout)
	require.NoError(t, w.Write(context.Background(), testResults()))

	assert.Empty(t, stdout.String())

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.Len(t, decoded, 2)

	// Only the final file must remain, no temporary leftovers.
	entries, err := os.ReadDir(filepath.Dir(outputPath))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "results.json", entries[0].Name())
}
