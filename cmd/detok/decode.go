package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/detok/internal/decode"
	"github.com/samcharles93/detok/internal/spm"
	"github.com/samcharles93/detok/internal/textio"
)

func decodeCmd() *cli.Command {
	var (
		modelPath    string
		inputPath    string
		outputPath   string
		inputFormat  string
		outputFormat string
		extraOptions string
	)

	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode piece or id streams back into text",
		ArgsUsage: "[files...]",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "model",
				Aliases:     []string{"m"},
				Usage:       "path to the SentencePiece model file",
				Destination: &modelPath,
			},
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "input file (empty falls back to positional args, then stdin)",
				Destination: &inputPath,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output file (empty writes to stdout)",
				Destination: &outputPath,
			},
			&cli.StringFlag{
				Name:        "input-format",
				Aliases:     []string{"input_format"},
				Usage:       "input encoding (piece, id, map)",
				Value:       "piece",
				Destination: &inputFormat,
			},
			&cli.StringFlag{
				Name:        "output-format",
				Aliases:     []string{"output_format"},
				Usage:       "output encoding (string, proto)",
				Value:       "string",
				Destination: &outputFormat,
			},
			&cli.StringFlag{
				Name:        "extra-options",
				Aliases:     []string{"extra_options"},
				Usage:       "':' separated decode extra options, e.g. \"reverse:bos:eos\"",
				Destination: &extraOptions,
			},
		}, loggingFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			applyDecodeConfig(c, LoadConfig(), &outputPath, &inputFormat, &outputFormat, &extraOptions)
			log := newLogger().With("run_id", uuid.NewString())

			// Configuration errors surface before any file is touched.
			if modelPath == "" {
				return cli.Exit("error: --model is required", 1)
			}
			inFmt, err := decode.ParseInputFormat(inputFormat)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			outFmt, err := decode.ParseOutputFormat(outputFormat)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			model, err := spm.Load(modelPath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: load model: %v", err), 1)
			}
			if err := model.SetDecodeExtraOptions(extraOptions); err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			sink, err := textio.Create(outputPath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: open output %q: %v", outputPath, err), 1)
			}
			defer func() { _ = sink.Close() }()

			pipeline, err := decode.NewPipeline(inFmt, outFmt, model, sink, log)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			log.Debug("starting decode run",
				"model", modelPath,
				"input_format", inputFormat,
				"output_format", outputFormat,
			)

			runner := &decode.Runner{Pipeline: pipeline, Log: log}
			if err := runner.Run(decode.Sources(inputPath, c.Args().Slice())); err != nil {
				return cli.Exit(fmt.Sprintf("error: decode: %v", err), 1)
			}

			if err := sink.Close(); err != nil {
				return cli.Exit(fmt.Sprintf("error: close output: %v", err), 1)
			}
			return nil
		},
	}
}
