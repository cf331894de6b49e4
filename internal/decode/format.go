// Package decode is the batch decode driver: it resolves the requested
// input/output encoding pair into a single conversion pipeline, then
// streams every input source through it.
package decode

import "fmt"

// InputFormat selects how input units are interpreted.
type InputFormat string

const (
	// InputPiece reads whitespace-separated piece strings, one batch per line.
	InputPiece InputFormat = "piece"
	// InputID reads whitespace-separated decimal ids, one batch per line.
	InputID InputFormat = "id"
	// InputMap reads a whole file of packed little-endian uint16 ids.
	InputMap InputFormat = "map"
)

// OutputFormat selects what each decode produces.
type OutputFormat string

const (
	// OutputString writes one line of detokenized text per input unit.
	OutputString OutputFormat = "string"
	// OutputProto produces a structured record per input unit; the driver
	// itself writes nothing for it.
	OutputProto OutputFormat = "proto"
)

// ParseInputFormat validates a --input_format flag value.
func ParseInputFormat(s string) (InputFormat, error) {
	switch f := InputFormat(s); f {
	case InputPiece, InputID, InputMap:
		return f, nil
	default:
		return "", fmt.Errorf("unknown input format %q", s)
	}
}

// ParseOutputFormat validates a --output_format flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputString, OutputProto:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}
