package spm

import (
	json "github.com/goccy/go-json"
)

// RecordPiece is one decoded token inside a Record.
type RecordPiece struct {
	ID      int    `json:"id"`
	Piece   string `json:"piece"`
	Surface string `json:"surface"`
}

// Record is the structured form of a decode result: the detokenized text
// plus the per-piece metadata that produced it.
type Record struct {
	Text   string        `json:"text"`
	Pieces []RecordPiece `json:"pieces"`
}

// JSON serializes the record as a single-line JSON document.
func (r *Record) JSON() ([]byte, error) {
	return json.Marshal(r)
}
