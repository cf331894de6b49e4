package decode

import (
	"fmt"
	"strings"

	"github.com/samcharles93/detok/internal/logger"
	"github.com/samcharles93/detok/internal/textio"
)

// Sources resolves the list of input paths for a run: a named input file
// wins, otherwise the positional arguments, otherwise the "" sentinel
// meaning standard input.
func Sources(input string, args []string) []string {
	if input != "" {
		return []string{input}
	}
	if len(args) > 0 {
		return args
	}
	return []string{""}
}

// Runner streams every input source through the selected pipeline. Sources
// are processed strictly in order; the first failure aborts the run.
type Runner struct {
	Pipeline *Pipeline
	Log      logger.Logger
}

// Run processes the given sources. For line-oriented formats each line is
// one unit; for the map format each file is one unit.
func (r *Runner) Run(sources []string) error {
	for _, src := range sources {
		if r.Pipeline.PerFile() {
			if err := r.Pipeline.RunIDs(ReadIDFile(src, r.Log)); err != nil {
				return err
			}
			continue
		}
		if err := r.runLines(src); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runLines(src string) error {
	in, err := textio.Open(src)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = in.Close() }()

	for in.Scan() {
		if err := r.Pipeline.RunLine(splitTokens(in.Text())); err != nil {
			return err
		}
	}
	return in.Err()
}

// splitTokens splits a line on single spaces. An empty line is an empty
// batch, not a batch holding one empty token.
func splitTokens(line string) []string {
	if line == "" {
		return nil
	}
	return strings.Split(line, " ")
}
