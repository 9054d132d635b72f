package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/easycodec/internal/config"
	"github.com/oshokin/easycodec/internal/logger"
	codec_service "github.com/oshokin/easycodec/internal/service/codec"
)

// ErrItemsFailed indicates that at least one item could not be transcoded.
var ErrItemsFailed = errors.New("some items failed")

// CodecCommandRequest holds the arguments of an encode or decode command.
type CodecCommandRequest struct {
	// Scheme is the registry name of the codec.
	Scheme string
	// Direction tells whether items are encoded or decoded.
	Direction codec_service.Direction
	// Args are the raw command-line items, files or "-".
	Args []string
}

// codecCommandDependencies are the components an encode or decode command runs on.
type codecCommandDependencies struct {
	// inputProcessor expands arguments into items.
	inputProcessor codec_service.InputProcessor
	// service transcodes the items.
	service codec_service.Service
	// resultWriter writes the results.
	resultWriter codec_service.ResultWriter
}

// ExecuteCodecCommand runs an encode or decode command and exits the process on failure.
func ExecuteCodecCommand(ctx context.Context, cfg *config.Config, request *CodecCommandRequest) {
	registry := codec_service.NewDefaultRegistry(cfg)

	service, err := codec_service.NewService(cfg, registry)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize codec service: %v", err)
	}

	deps := &codecCommandDependencies{
		inputProcessor: codec_service.NewInputProcessor(os.Stdin, cfg.UniqueInputs),
		service:        service,
		resultWriter:   codec_service.NewResultWriter(cfg, os.Stdout),
	}

	if err = runCodecCommand(ctx, deps, request); err != nil {
		logger.Fatalf(ctx, "%s %s failed: %v", request.Scheme, request.Direction, err)
	}
}

// runCodecCommand extracts items, transcodes them, writes the results and prints the summary.
func runCodecCommand(ctx context.Context, deps *codecCommandDependencies, request *CodecCommandRequest) error {
	inputs, err := deps.inputProcessor.ExtractInputs(ctx, request.Args)
	if err != nil {
		return fmt.Errorf("failed to extract inputs: %w", err)
	}

	// Ensure statistics are printed even when processing is interrupted.
	defer deps.service.PrintSummary(ctx)

	results, processErr := deps.service.Process(ctx, &codec_service.ProcessRequest{
		Scheme:    request.Scheme,
		Direction: request.Direction,
		Inputs:    inputs,
	})
	if processErr != nil && !errors.Is(processErr, context.Canceled) {
		return processErr
	}

	if err = deps.resultWriter.Write(ctx, results); err != nil {
		return err
	}

	if processErr != nil {
		return processErr
	}

	for _, result := range results {
		if result.Err != nil {
			return ErrItemsFailed
		}
	}

	return nil
}

// ExecuteSchemesCommand prints the available schemes.
func ExecuteSchemesCommand(ctx context.Context, cfg *config.Config, w io.Writer) {
	if err := writeSchemes(cfg, w); err != nil {
		logger.Fatalf(ctx, "Failed to list schemes: %v", err)
	}
}

// writeSchemes writes one "name  description" line per registered scheme.
func writeSchemes(cfg *config.Config, w io.Writer) error {
	for _, c := range codec_service.NewDefaultRegistry(cfg).Codecs() {
		if _, err := fmt.Fprintf(w, "%-8s %s\n", c.Name(), c.Description()); err != nil {
			return err
		}
	}

	return nil
}
