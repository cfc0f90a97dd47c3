package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/gob"
	"io"

	"github.com/andybalholm/brotli"

	"github.com/Connerlevi/evo-core/individual"
)

// EncodeBinary renders snap as gob, brotli-compressed and base64-encoded
// so the result is still a string (spec §4.7's Binary encoding:
// "lossless, fastest").
func EncodeBinary(snap individual.Snapshot) (string, error) {
	var buf bytes.Buffer
	bw := brotli.NewWriter(&buf)
	if err := gob.NewEncoder(bw).Encode(snap); err != nil {
		return "", wrapSerializationErr("encode binary", err)
	}
	if err := bw.Close(); err != nil {
		return "", wrapSerializationErr("encode binary", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeBinary parses s, previously produced by EncodeBinary, back into a
// Snapshot.
func DecodeBinary(s string) (individual.Snapshot, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return individual.Snapshot{}, wrapSerializationErr("decode binary", err)
	}
	br := brotli.NewReader(bytes.NewReader(raw))
	var snap individual.Snapshot
	if err := gob.NewDecoder(br).Decode(&snap); err != nil && err != io.EOF {
		return individual.Snapshot{}, wrapSerializationErr("decode binary", err)
	}
	return snap, nil
}
