package main

import (
	"context"
	"testing"

	"github.com/urfave/cli/v3"
)

func runDecodeConfig(t *testing.T, cfg Config, args []string) (output, inFmt, outFmt, extra string) {
	t.Helper()

	cmd := &cli.Command{
		Name: "decode",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Destination: &output},
			&cli.StringFlag{Name: "input-format", Aliases: []string{"input_format"}, Value: "piece", Destination: &inFmt},
			&cli.StringFlag{Name: "output-format", Aliases: []string{"output_format"}, Value: "string", Destination: &outFmt},
			&cli.StringFlag{Name: "extra-options", Aliases: []string{"extra_options"}, Destination: &extra},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			applyDecodeConfig(c, cfg, &output, &inFmt, &outFmt, &extra)
			return nil
		},
	}
	if err := cmd.Run(context.Background(), append([]string{"decode"}, args...)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return output, inFmt, outFmt, extra
}

func TestApplyDecodeConfigDefaults(t *testing.T) {
	cfg := Config{
		Output:       "from-config.txt",
		OutputFormat: "proto",
		ExtraOptions: "reverse",
	}

	output, inFmt, outFmt, extra := runDecodeConfig(t, cfg, nil)
	if output != "from-config.txt" {
		t.Errorf("output: got %q", output)
	}
	if inFmt != "piece" {
		t.Errorf("input format: got %q, want flag default", inFmt)
	}
	if outFmt != "proto" {
		t.Errorf("output format: got %q, want config value", outFmt)
	}
	if extra != "reverse" {
		t.Errorf("extra options: got %q", extra)
	}
}

func TestApplyDecodeConfigFlagWins(t *testing.T) {
	cfg := Config{
		Output:       "from-config.txt",
		OutputFormat: "proto",
	}

	output, _, outFmt, _ := runDecodeConfig(t, cfg, []string{"--output", "cli.txt", "--output_format", "string"})
	if output != "cli.txt" {
		t.Errorf("output: got %q, want flag value", output)
	}
	if outFmt != "string" {
		t.Errorf("output format: got %q, want flag value", outFmt)
	}
}
