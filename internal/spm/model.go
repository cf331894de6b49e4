// Package spm wraps a SentencePiece model for the decode direction: piece
// or id sequences in, detokenized text or a structured Record out.
//
// Id-sequence decoding delegates to github.com/eliben/go-sentencepiece;
// piece-surface reconstruction and the Record path run off the model's own
// piece table (see vocab.go).
package spm

import (
	"strconv"
	"strings"

	sentencepiece "github.com/eliben/go-sentencepiece"
	"github.com/pkg/errors"
)

// metaspace is U+2581 (lower one eighth block), SentencePiece's space
// replacement inside pieces.
const metaspace = "▁"

// unknownSurface is the conventional rendering of the unknown piece.
const unknownSurface = " ⁇ "

// Model is a loaded SentencePiece model bound to a fixed set of decode
// extra options. It is immutable after SetDecodeExtraOptions and safe to
// share for the lifetime of a run.
type Model struct {
	proc  *sentencepiece.Processor
	info  *sentencepiece.ModelInfo
	vocab *vocab
	opts  decodeOptions
}

// Load reads and validates a SentencePiece model file.
func Load(path string) (*Model, error) {
	proc, err := sentencepiece.NewProcessorFromPath(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't load sentencepiece model %q", path)
	}
	vocab, err := loadVocab(path)
	if err != nil {
		return nil, err
	}
	return &Model{
		proc:  proc,
		info:  proc.ModelInfo(),
		vocab: vocab,
	}, nil
}

// SetDecodeExtraOptions installs the ':' separated decode post-processing
// directives for all subsequent decodes. An empty spec is a no-op.
func (m *Model) SetDecodeExtraOptions(spec string) error {
	opts, err := parseExtraOptions(spec)
	if err != nil {
		return err
	}
	m.opts = opts
	return nil
}

// applyExtra rewrites the id sequence per the installed extra options:
// reverse first, then the BOS/EOS markers around the result.
func (m *Model) applyExtra(ids []int) []int {
	if !m.opts.any() {
		return ids
	}
	out := make([]int, 0, len(ids)+2)
	if m.opts.bos {
		out = append(out, m.info.BeginningOfSentenceID)
	}
	if m.opts.reverse {
		for i := len(ids) - 1; i >= 0; i-- {
			out = append(out, ids[i])
		}
	} else {
		out = append(out, ids...)
	}
	if m.opts.eos {
		out = append(out, m.info.EndOfSentenceID)
	}
	return out
}

// DecodeIDs reconstructs text from a sequence of vocabulary ids.
func (m *Model) DecodeIDs(ids []int) (string, error) {
	ids = m.applyExtra(ids)
	if err := m.checkIDs(ids); err != nil {
		return "", err
	}
	return m.proc.Decode(ids), nil
}

// DecodePieces reconstructs text from a sequence of piece strings. Pieces
// outside the vocabulary render as the unknown surface.
func (m *Model) DecodePieces(pieces []string) (string, error) {
	rec, err := m.DecodePiecesToRecord(pieces)
	if err != nil {
		return "", err
	}
	return rec.Text, nil
}

// DecodeIDsToRecord decodes ids into a structured Record.
func (m *Model) DecodeIDsToRecord(ids []int) (*Record, error) {
	return m.record(m.applyExtra(ids))
}

// DecodePiecesToRecord decodes piece strings into a structured Record.
func (m *Model) DecodePiecesToRecord(pieces []string) (*Record, error) {
	return m.record(m.applyExtra(m.idsForPieces(pieces)))
}

func (m *Model) idsForPieces(pieces []string) []int {
	ids := make([]int, len(pieces))
	for i, piece := range pieces {
		if id, ok := m.vocab.id(piece); ok {
			ids[i] = id
		} else {
			ids[i] = m.info.UnknownID
		}
	}
	return ids
}

func (m *Model) checkIDs(ids []int) error {
	for _, id := range ids {
		if id < 0 || id >= m.vocab.size() {
			return errors.Errorf("id %d out of vocabulary range [0, %d)", id, m.vocab.size())
		}
	}
	return nil
}

func (m *Model) record(ids []int) (*Record, error) {
	var sb strings.Builder
	pieces := make([]RecordPiece, len(ids))

	for i, id := range ids {
		vp, ok := m.vocab.at(id)
		if !ok {
			return nil, errors.Errorf("id %d out of vocabulary range [0, %d)", id, m.vocab.size())
		}
		surface := pieceSurface(vp)
		pieces[i] = RecordPiece{ID: id, Piece: vp.text, Surface: surface}
		sb.WriteString(surface)
	}

	return &Record{
		Text:   strings.TrimPrefix(sb.String(), " "),
		Pieces: pieces,
	}, nil
}

func pieceSurface(p vocabPiece) string {
	switch p.typ {
	case PieceControl, PieceUnused:
		return ""
	case PieceUnknown:
		return unknownSurface
	case PieceByte:
		if b, ok := byteValue(p.text); ok {
			return string([]byte{b})
		}
		return ""
	}
	return strings.ReplaceAll(p.text, metaspace, " ")
}

// byteValue extracts the raw byte from a "<0xXX>" byte piece.
func byteValue(piece string) (byte, bool) {
	if len(piece) != 6 || piece[0] != '<' || piece[1] != '0' || piece[2] != 'x' || piece[5] != '>' {
		return 0, false
	}
	v, err := strconv.ParseUint(piece[3:5], 16, 8)
	if err != nil {
		return 0, false
	}
	return byte(v), true
}

// Info summarizes the loaded model for inspection.
type Info struct {
	VocabSize int `json:"vocab_size"`
	UnknownID int `json:"unk_id"`
	BOSID     int `json:"bos_id"`
	EOSID     int `json:"eos_id"`
	PadID     int `json:"pad_id"`
}

// Info reports the model's vocabulary size and special ids.
func (m *Model) Info() Info {
	return Info{
		VocabSize: m.vocab.size(),
		UnknownID: m.info.UnknownID,
		BOSID:     m.info.BeginningOfSentenceID,
		EOSID:     m.info.EndOfSentenceID,
		PadID:     m.info.PadID,
	}
}

// PieceText returns the piece string for an id, when the id is in range.
func (m *Model) PieceText(id int) (string, bool) {
	vp, ok := m.vocab.at(id)
	if !ok {
		return "", false
	}
	return vp.text, true
}
