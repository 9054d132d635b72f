package codec

//go:generate $MOCKGEN -source=writer.go -destination=mocks/writer_mock.go

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/easycodec/codec/hex"
	"github.com/oshokin/easycodec/internal/config"
	"github.com/oshokin/easycodec/internal/constants"
	"github.com/oshokin/easycodec/internal/logger"
	"github.com/oshokin/easycodec/internal/utils"
)

// ErrUnsupportedOutputFormat indicates that the writer cannot render the requested format.
var ErrUnsupportedOutputFormat = errors.New("unsupported output format")

// ResultWriter defines the interface for writing processed results.
type ResultWriter interface {
	// Write renders results in the configured format and writes them to the configured destination.
	Write(ctx context.Context, results []*Result) error
}

// ResultWriterImpl implements ResultWriter.
type ResultWriterImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// stdout receives results when no output path is configured.
	stdout io.Writer
}

// NewResultWriter creates and returns a new instance of ResultWriterImpl.
func NewResultWriter(cfg *config.Config, stdout io.Writer) ResultWriter {
	return &ResultWriterImpl{
		cfg:    cfg,
		stdout: stdout,
	}
}

// Write renders results and writes them to standard output or to the output file.
func (w *ResultWriterImpl) Write(ctx context.Context, results []*Result) error {
	payload, err := RenderResults(results, w.cfg.ParsedOutputFormat)
	if err != nil {
		return err
	}

	if w.cfg.OutputPath == "" {
		if _, err = w.stdout.Write(payload); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}

		return nil
	}

	return w.writeFile(ctx, payload)
}

// writeFile writes payload to a temporary file next to the output path and renames it into place,
// so an interrupted run never leaves a truncated output file behind.
func (w *ResultWriterImpl) writeFile(ctx context.Context, payload []byte) (err error) {
	outputPath := filepath.Clean(w.cfg.OutputPath)

	if err = os.MkdirAll(filepath.Dir(outputPath), constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tempFilePath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) +
		"_" + uuid.New().String() + constants.ExtensionTmp

	f, err := os.OpenFile(tempFilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	defer func() {
		if err == nil {
			return
		}

		if removeErr := os.Remove(tempFilePath); removeErr != nil && !os.IsNotExist(removeErr) {
			logger.Warnf(ctx, "Failed to clean up temporary file '%s': %v", tempFilePath, removeErr)
		}
	}()

	var writer io.Writer = f

	if w.cfg.ShowProgress && logger.Level() <= zap.InfoLevel {
		bar := progressbar.DefaultBytes(int64(len(payload)), "Writing")
		writer = io.MultiWriter(f, bar)
	}

	_, err = io.Copy(writer, bytes.NewReader(payload))

	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	if err = os.Rename(tempFilePath, outputPath); err != nil {
		return fmt.Errorf("failed to move results into place: %w", err)
	}

	logger.Debugf(ctx, "Results written to '%s'", outputPath)

	return nil
}

// jsonResult is the JSON record of a Result. JSON strings cannot hold arbitrary bytes,
// so an input or output that is not valid UTF-8 is written to its _hex field instead.
type jsonResult struct {
	Index     int    `json:"index"`
	Input     string `json:"input"`
	InputHex  string `json:"input_hex,omitempty"`
	Output    string `json:"output,omitempty"`
	OutputHex string `json:"output_hex,omitempty"`
	Error     string `json:"error,omitempty"`
}

// RenderResults serializes results. The plain format writes each successful output verbatim
// followed by a newline, so outputs containing newlines span several lines.
// Structured formats include failed items with their error messages and keep every byte:
// YAML tags non-UTF-8 strings as !!binary, JSON moves them to the input_hex and output_hex fields.
func RenderResults(results []*Result, format config.OutputFormat) ([]byte, error) {
	switch format {
	case config.OutputFormatPlain, "":
		var buf bytes.Buffer

		for _, result := range results {
			if result.Err != nil {
				continue
			}

			buf.WriteString(result.Output)
			buf.WriteByte('\n')
		}

		return buf.Bytes(), nil
	case config.OutputFormatYAML:
		payload, err := yaml.Marshal(nonNilResults(results))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML: %w", err)
		}

		return payload, nil
	case config.OutputFormatJSON:
		payload, err := json.MarshalIndent(toJSONResults(results), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON: %w", err)
		}

		return append(payload, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedOutputFormat, format)
	}
}

// nonNilResults makes an empty batch render as an empty list rather than null.
func nonNilResults(results []*Result) []*Result {
	if results == nil {
		return []*Result{}
	}

	return results
}

// toJSONResults converts results into JSON records.
func toJSONResults(results []*Result) []*jsonResult {
	return utils.Map(nonNilResults(results), func(result *Result) *jsonResult {
		record := &jsonResult{
			Index: result.Index,
			Error: result.Error,
		}

		if utf8.ValidString(result.Input) {
			record.Input = result.Input
		} else {
			record.InputHex = hex.Encode([]byte(result.Input), true)
		}

		if utf8.ValidString(result.Output) {
			record.Output = result.Output
		} else {
			record.OutputHex = hex.Encode([]byte(result.Output), true)
		}

		return record
	})
}
