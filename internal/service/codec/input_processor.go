package codec

//go:generate $MOCKGEN -source=input_processor.go -destination=mocks/input_processor_mock.go

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/oshokin/easycodec/internal/constants"
	"github.com/oshokin/easycodec/internal/logger"
	"github.com/oshokin/easycodec/internal/utils"
)

// StdinArgument is the argument that stands for standard input.
const StdinArgument = "-"

// InputProcessor defines the interface for turning command-line arguments into input items.
type InputProcessor interface {
	// ExtractInputs expands arguments into items. Text files are read line by line,
	// "-" and an empty argument list read standard input, anything else is an item itself.
	ExtractInputs(ctx context.Context, args []string) ([]string, error)
}

// InputProcessorImpl implements the InputProcessor interface.
type InputProcessorImpl struct {
	// stdin is read for the "-" argument or when no arguments are given.
	stdin io.Reader
	// uniqueInputs drops repeated items, keeping the first occurrence.
	uniqueInputs bool
}

// NewInputProcessor creates and returns a new instance of InputProcessorImpl.
func NewInputProcessor(stdin io.Reader, uniqueInputs bool) InputProcessor {
	return &InputProcessorImpl{
		stdin:        stdin,
		uniqueInputs: uniqueInputs,
	}
}

// ExtractInputs expands arguments into items. Lines read from standard input or .txt files
// are trimmed of surrounding whitespace and blank lines are skipped; literal arguments are kept as given.
func (ip *InputProcessorImpl) ExtractInputs(ctx context.Context, args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{StdinArgument}
	}

	var (
		inputs      []string
		isStdinRead bool
	)

	for _, arg := range args {
		switch {
		case arg == StdinArgument:
			if isStdinRead {
				continue
			}

			isStdinRead = true

			lines, err := utils.ReadLines(ip.stdin, false)
			if err != nil {
				return nil, fmt.Errorf("failed to read standard input: %w", err)
			}

			logger.Debugf(ctx, "Read %d items from standard input", len(lines))

			inputs = append(inputs, lines...)
		case strings.HasSuffix(strings.ToLower(arg), constants.ExtensionTXT):
			lines, err := ip.readInputFile(ctx, arg)
			if err != nil {
				return nil, err
			}

			inputs = append(inputs, lines...)
		default:
			inputs = append(inputs, arg)
		}
	}

	if ip.uniqueInputs {
		inputs = utils.Deduplicate(inputs)
	}

	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}

	return inputs, nil
}

// readInputFile reads items from a text file. A missing file is treated as a literal item.
func (ip *InputProcessorImpl) readInputFile(ctx context.Context, path string) ([]string, error) {
	isExist, err := utils.IsFileExist(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check input file '%s': %w", path, err)
	}

	if !isExist {
		logger.Debugf(ctx, "File '%s' does not exist, treating it as an input item", path)

		return []string{path}, nil
	}

	lines, err := utils.ReadLinesFromFile(path, false)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file '%s': %w", path, err)
	}

	logger.Debugf(ctx, "Read %d items from '%s'", len(lines), path)

	return lines, nil
}
