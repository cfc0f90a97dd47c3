package codec

import (
	"encoding/json"

	"github.com/Connerlevi/evo-core/individual"
)

// EncodeText renders snap as JSON (spec §4.7's Text encoding: "human-
// readable").
func EncodeText(snap individual.Snapshot) (string, error) {
	b, err := json.Marshal(snap)
	if err != nil {
		return "", wrapSerializationErr("encode text", err)
	}
	return string(b), nil
}

// DecodeText parses s, previously produced by EncodeText, back into a
// Snapshot.
func DecodeText(s string) (individual.Snapshot, error) {
	var snap individual.Snapshot
	if err := json.Unmarshal([]byte(s), &snap); err != nil {
		return individual.Snapshot{}, wrapSerializationErr("decode text", err)
	}
	return snap, nil
}
