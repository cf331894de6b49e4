package decode

import (
	"fmt"
	"strconv"

	"github.com/samcharles93/detok/internal/logger"
	"github.com/samcharles93/detok/internal/spm"
)

// Decoder is the decode capability required from the tokenization model.
type Decoder interface {
	DecodePieces(pieces []string) (string, error)
	DecodeIDs(ids []int) (string, error)
	DecodePiecesToRecord(pieces []string) (*spm.Record, error)
	DecodeIDsToRecord(ids []int) (*spm.Record, error)
}

// Sink receives one line of decoded text per processed unit.
type Sink interface {
	WriteLine(s string) error
}

// Pipeline is the conversion selected for one run. Exactly one of lineFn
// and idsFn is set, fixed by the (input, output) format pair at startup,
// and applied uniformly to every input unit for the rest of the run.
type Pipeline struct {
	in     InputFormat
	lineFn func(tokens []string) error
	idsFn  func(ids []int) error
	log    logger.Logger
}

// NewPipeline resolves the format pair into a pipeline bound to dec and
// sink. The formats must already be validated; an unknown pair is rejected
// here as well since nothing downstream could run it.
func NewPipeline(in InputFormat, out OutputFormat, dec Decoder, sink Sink, log logger.Logger) (*Pipeline, error) {
	p := &Pipeline{in: in, log: log}

	switch in {
	case InputPiece:
		switch out {
		case OutputString:
			p.lineFn = func(tokens []string) error {
				text, err := dec.DecodePieces(tokens)
				if err != nil {
					return err
				}
				return sink.WriteLine(text)
			}
		case OutputProto:
			p.lineFn = func(tokens []string) error {
				_, err := dec.DecodePiecesToRecord(tokens)
				return err
			}
		}
	case InputID:
		switch out {
		case OutputString:
			p.lineFn = func(tokens []string) error {
				text, err := dec.DecodeIDs(p.parseIDs(tokens))
				if err != nil {
					return err
				}
				return sink.WriteLine(text)
			}
		case OutputProto:
			p.lineFn = func(tokens []string) error {
				_, err := dec.DecodeIDsToRecord(p.parseIDs(tokens))
				return err
			}
		}
	case InputMap:
		switch out {
		case OutputString:
			p.idsFn = func(ids []int) error {
				text, err := dec.DecodeIDs(ids)
				if err != nil {
					return err
				}
				return sink.WriteLine(text)
			}
		case OutputProto:
			p.idsFn = func(ids []int) error {
				_, err := dec.DecodeIDsToRecord(ids)
				return err
			}
		}
	}

	if p.lineFn == nil && p.idsFn == nil {
		return nil, fmt.Errorf("unknown format pair %q/%q", in, out)
	}
	return p, nil
}

// PerFile reports whether the pipeline consumes whole files of packed ids
// rather than lines of tokens.
func (p *Pipeline) PerFile() bool { return p.in == InputMap }

// RunLine feeds one line's token batch through the conversion.
func (p *Pipeline) RunLine(tokens []string) error { return p.lineFn(tokens) }

// RunIDs feeds one file's id batch through the conversion.
func (p *Pipeline) RunIDs(ids []int) error { return p.idsFn(ids) }

// parseIDs converts decimal tokens to ids. Conversion is lenient:
// unparseable tokens become 0, with a diagnostic naming the token since
// the zero silently stands in for whatever the producer meant.
func (p *Pipeline) parseIDs(tokens []string) []int {
	ids := make([]int, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			p.log.Warn("unparseable id token, substituting 0", "token", tok)
			n = 0
		}
		ids[i] = n
	}
	return ids
}
