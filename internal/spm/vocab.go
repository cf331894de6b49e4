package spm

import (
	"os"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// PieceType mirrors the SentencePiece model's piece classification.
type PieceType int32

const (
	PieceNormal      PieceType = 1
	PieceUnknown     PieceType = 2
	PieceControl     PieceType = 3
	PieceUserDefined PieceType = 4
	PieceUnused      PieceType = 5
	PieceByte        PieceType = 6
)

// Field numbers in the serialized model.
const (
	fieldModelPieces = 1 // ModelProto.pieces, repeated message
	fieldPieceText   = 1 // SentencePiece.piece, string
	fieldPieceType   = 3 // SentencePiece.type, enum (default NORMAL)
)

type vocabPiece struct {
	text string
	typ  PieceType
}

// vocab is the model's piece table, indexed by id.
//
// go-sentencepiece keeps its vocabulary private, so the piece table is read
// straight off the model file's wire format here. Only the pieces are
// decoded; every other field is skipped.
type vocab struct {
	pieces []vocabPiece
	ids    map[string]int
}

func loadVocab(path string) (*vocab, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read model file %q", path)
	}
	return parseVocab(data)
}

func parseVocab(data []byte) (*vocab, error) {
	v := &vocab{ids: make(map[string]int)}

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, errors.Wrap(protowire.ParseError(n), "malformed model proto")
		}
		data = data[n:]

		if num == fieldModelPieces && typ == protowire.BytesType {
			msg, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, errors.Wrap(protowire.ParseError(n), "malformed piece entry")
			}
			data = data[n:]

			p, err := parsePieceMessage(msg)
			if err != nil {
				return nil, err
			}
			v.ids[p.text] = len(v.pieces)
			v.pieces = append(v.pieces, p)
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, data)
		if n < 0 {
			return nil, errors.Wrap(protowire.ParseError(n), "malformed model proto")
		}
		data = data[n:]
	}

	if len(v.pieces) == 0 {
		return nil, errors.New("model proto contains no pieces")
	}
	return v, nil
}

func parsePieceMessage(msg []byte) (vocabPiece, error) {
	p := vocabPiece{typ: PieceNormal}

	for len(msg) > 0 {
		num, typ, n := protowire.ConsumeTag(msg)
		if n < 0 {
			return p, errors.Wrap(protowire.ParseError(n), "malformed piece message")
		}
		msg = msg[n:]

		switch {
		case num == fieldPieceText && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(msg)
			if n < 0 {
				return p, errors.Wrap(protowire.ParseError(n), "malformed piece text")
			}
			msg = msg[n:]
			p.text = s
		case num == fieldPieceType && typ == protowire.VarintType:
			u, n := protowire.ConsumeVarint(msg)
			if n < 0 {
				return p, errors.Wrap(protowire.ParseError(n), "malformed piece type")
			}
			msg = msg[n:]
			p.typ = PieceType(u)
		default:
			n = protowire.ConsumeFieldValue(num, typ, msg)
			if n < 0 {
				return p, errors.Wrap(protowire.ParseError(n), "malformed piece message")
			}
			msg = msg[n:]
		}
	}
	return p, nil
}

func (v *vocab) size() int { return len(v.pieces) }

func (v *vocab) at(id int) (vocabPiece, bool) {
	if id < 0 || id >= len(v.pieces) {
		return vocabPiece{}, false
	}
	return v.pieces[id], true
}

func (v *vocab) id(piece string) (int, bool) {
	id, ok := v.ids[piece]
	return id, ok
}
