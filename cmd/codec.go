package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/easycodec/internal/app"
	"github.com/oshokin/easycodec/internal/config"
	"github.com/oshokin/easycodec/internal/logger"
	codec_service "github.com/oshokin/easycodec/internal/service/codec"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	encodeCmd = newCodecCommand(
		codec_service.DirectionEncode,
		"Encode items with the given scheme.",
		`Encode every item with the given scheme and print one result per item.

Examples:
  easycodec encode base32 foobar
  easycodec encode base62 12345 67890
  easycodec encode hex --lowercase < payload.txt
  easycodec encode base32 items.txt -f json -o encoded.json`)

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	decodeCmd = newCodecCommand(
		codec_service.DirectionDecode,
		"Decode items with the given scheme.",
		`Decode every item with the given scheme and print one result per item.
Items that cannot be decoded are reported and the command exits with a non-zero status.

Examples:
  easycodec decode base32 MZXW6YTBOI======
  easycodec decode base62 3D7
  easycodec decode rot --shift 3 KHOOR`)
)

// newCodecCommand builds an encode or decode command.
func newCodecCommand(direction codec_service.Direction, short, long string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(direction) + " <scheme> [items or .txt files...]",
		Short: short,
		Long:  long,
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			logger.SetLevel(appConfig.ParsedLogLevel)

			app.ExecuteCodecCommand(cmd.Context(), appConfig, &app.CodecCommandRequest{
				Scheme:    args[0],
				Direction: direction,
				Args:      args[1:],
			})
		},
	}

	addCodecFlags(cmd.Flags())

	return cmd
}

// addCodecFlags registers the flags shared by the encode and decode commands.
func addCodecFlags(flags *pflag.FlagSet) {
	flags.StringP(
		"output",
		"o",
		"",
		"file to write results to (standard output if omitted).")

	flags.StringP(
		"format",
		"f",
		"",
		"result format: plain, yaml or json.")

	flags.Int64P(
		"workers",
		"w",
		0,
		"maximum number of items processed simultaneously.")

	flags.Int64(
		"shift",
		0,
		"rotation used by the rot scheme.")

	flags.Bool(
		"lowercase",
		false,
		"emit lower-case digits in the hex scheme.")

	flags.BoolP(
		"unique",
		"u",
		false,
		"drop duplicate items.")
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(encodeCmd, decodeCmd)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputPath, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("format"); flag != nil && flag.Changed {
		cfg.OutputFormat, _ = flags.GetString("format")
	}

	if flag := flags.Lookup("workers"); flag != nil && flag.Changed {
		cfg.MaxConcurrentWorkers, _ = flags.GetInt64("workers")
	}

	if flag := flags.Lookup("shift"); flag != nil && flag.Changed {
		cfg.RotShift, _ = flags.GetInt64("shift")
	}

	if flag := flags.Lookup("lowercase"); flag != nil && flag.Changed {
		cfg.HexLowercase, _ = flags.GetBool("lowercase")
	}

	if flag := flags.Lookup("unique"); flag != nil && flag.Changed {
		cfg.UniqueInputs, _ = flags.GetBool("unique")
	}

	return config.ValidateConfig(cfg)
}
