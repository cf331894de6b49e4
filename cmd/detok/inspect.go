package main

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/detok/internal/spm"
)

func inspectCmd() *cli.Command {
	var (
		modelPath string
		asJSON    bool
	)

	return &cli.Command{
		Name:      "inspect",
		Usage:     "Print a summary of a SentencePiece model",
		ArgsUsage: "[model file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "model",
				Aliases:     []string{"m"},
				Usage:       "path to the SentencePiece model file",
				Destination: &modelPath,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit the summary as JSON",
				Destination: &asJSON,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if modelPath == "" && c.Args().Len() > 0 {
				modelPath = c.Args().First()
			}
			if modelPath == "" {
				return cli.Exit("error: --model is required", 1)
			}

			model, err := spm.Load(modelPath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: load model: %v", err), 1)
			}
			info := model.Info()

			if asJSON {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Printf("File: %s\n", modelPath)
			fmt.Printf("vocab=%d\n", info.VocabSize)
			printSpecial(model, "unk", info.UnknownID)
			printSpecial(model, "bos", info.BOSID)
			printSpecial(model, "eos", info.EOSID)
			printSpecial(model, "pad", info.PadID)
			return nil
		},
	}
}

func printSpecial(m *spm.Model, name string, id int) {
	if id < 0 {
		fmt.Printf("  %s: none\n", name)
		return
	}
	piece, ok := m.PieceText(id)
	if !ok {
		fmt.Printf("  %s: %d (out of range)\n", name, id)
		return
	}
	fmt.Printf("  %s: %d %q\n", name, id, piece)
}
