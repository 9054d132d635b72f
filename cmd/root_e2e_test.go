package cmd_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// testBinaryName is the name of the test binary for E2E tests.
	testBinaryName = "easycodec-test"
)

// TestMain builds the binary before running E2E tests.
func TestMain(m *testing.M) {
	// Build the binary for testing.
	//nolint:noctx // TestMain doesn't have access to context, and build is needed before tests run.
	buildCmd := exec.Command("go", "build", "-o", testBinaryName, "../.")
	if err := buildCmd.Run(); err != nil {
		os.Exit(1)
	}

	// Run tests.
	code := m.Run()

	// Cleanup.
	_ = os.Remove(testBinaryName)

	os.Exit(code)
}

// e2eResult is one record of the json output format.
type e2eResult struct {
	Index  int    `json:"index"`
	Input  string `json:"input"`
	Output string `json:"output"`
	Error  string `json:"error"`
}

// runBinary runs the test binary with an empty config in a temp dir and returns stdout and the exit error.
func runBinary(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log_level: error\n"), 0o644)) //nolint:gosec // It's a test file.

	//nolint:gosec,noctx // Test binary name is a constant, not user input. No context available in test.
	cmd := exec.Command("./"+testBinaryName, append([]string{"--config", configPath}, args...)...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout strings.Builder

	cmd.Stdout = &stdout

	err := cmd.Run()

	return stdout.String(), err
}

// TestE2E_Encode tests encoding of command-line items for every scheme.
func TestE2E_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"base32", []string{"encode", "base32", "foobar"}, "MZXW6YTBOI======\n"},
		{"base62", []string{"encode", "base62", "12345", "0"}, "3D7\n0\n"},
		{"hex lowercase", []string{"encode", "hex", "--lowercase", "Hi"}, "4869\n"},
		{"rot with shift", []string{"encode", "rot", "--shift", "3", "hello"}, "KHOOR\n"},
		{"morse", []string{"encode", "morse", "SOS"}, "... --- ...\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, err := runBinary(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stdout)
		})
	}
}

// TestE2E_DecodeStdin tests decoding of items read from standard input.
func TestE2E_DecodeStdin(t *testing.T) {
	t.Parallel()

	stdout, err := runBinary(t, "MZXW6===\n\nMZXW6YQ=\n", "decode", "base32")
	require.NoError(t, err)
	assert.Equal(t, "foo\nfoob\n", stdout)
}

// TestE2E_DecodeFailure tests that invalid items make the command fail and are reported in json output.
func TestE2E_DecodeFailure(t *testing.T) {
	t.Parallel()

	stdout, err := runBinary(t, "", "decode", "base32", "--format", "json", "MY======", "MZXW6YQ")
	require.Error(t, err)

	var results []e2eResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &results), "stdout: %s", stdout)
	require.Len(t, results, 2)

	assert.Equal(t, "f", results[0].Output)
	assert.Empty(t, results[0].Error)
	assert.Equal(t, "MZXW6YQ", results[1].Input)
	assert.NotEmpty(t, results[1].Error)
}

// TestE2E_UnknownScheme tests that an unknown scheme fails without output.
func TestE2E_UnknownScheme(t *testing.T) {
	t.Parallel()

	stdout, err := runBinary(t, "", "encode", "base64", "foo")
	require.Error(t, err)
	assert.Empty(t, stdout)
}

// TestE2E_Schemes tests the scheme listing.
func TestE2E_Schemes(t *testing.T) {
	t.Parallel()

	stdout, err := runBinary(t, "", "schemes")
	require.NoError(t, err)

	for _, name := range []string{"base32", "base62", "hex", "morse", "rot"} {
		assert.Contains(t, stdout, name)
	}
}

// TestE2E_OutputFile tests that results are written to the output file.
func TestE2E_OutputFile(t *testing.T) {
	t.Parallel()

	outputPath := filepath.Join(t.TempDir(), "encoded.txt")

	stdout, err := runBinary(t, "", "encode", "base32", "-o", outputPath, "f", "fo")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	content, err := os.ReadFile(outputPath) //nolint:gosec // It's a test file.
	require.NoError(t, err)
	assert.Equal(t, "MY======\nMZXQ====\n", string(content))
}
