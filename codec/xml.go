package codec

import (
	"encoding/json"
	"encoding/xml"

	"github.com/Connerlevi/evo-core/carrier"
	"github.com/Connerlevi/evo-core/individual"
)

// xmlSnapshot mirrors individual.Snapshot but replaces the Traits map
// (encoding/xml cannot marshal Go maps) with an ordered key/JSON-value
// list, following the spec's note that Xml is "the canonical
// interoperability format" rather than a lossless one.
type xmlSnapshot struct {
	XMLName               xml.Name             `xml:"individual"`
	Carriers              []carrier.Snapshot   `xml:"carriers>carrier"`
	FitnessCache          float64              `xml:"fitnessCache"`
	Dirty                 bool                 `xml:"dirty"`
	EvaluationPermission  int                  `xml:"evaluationPermission"`
	LazyEvaluationAllowed bool                 `xml:"lazyEvaluationAllowed"`
	ParentIteration       uint64               `xml:"parentIteration"`
	Traits                []xmlTraitEntry      `xml:"traits>trait,omitempty"`
}

type xmlTraitEntry struct {
	Key       string `xml:"key"`
	ValueJSON string `xml:"valueJson"`
}

func toXMLSnapshot(snap individual.Snapshot) xmlSnapshot {
	x := xmlSnapshot{
		XMLName:               xml.Name{Local: "individual"},
		Carriers:              snap.Carriers,
		FitnessCache:          snap.FitnessCache,
		Dirty:                 snap.Dirty,
		EvaluationPermission:  int(snap.EvaluationPermission),
		LazyEvaluationAllowed: snap.LazyEvaluationAllowed,
		ParentIteration:       snap.ParentIteration,
	}
	for k, v := range snap.Traits {
		b, err := json.Marshal(v)
		if err != nil {
			continue
		}
		x.Traits = append(x.Traits, xmlTraitEntry{Key: k, ValueJSON: string(b)})
	}
	return x
}

func fromXMLSnapshot(x xmlSnapshot) individual.Snapshot {
	snap := individual.Snapshot{
		Carriers:              x.Carriers,
		FitnessCache:          x.FitnessCache,
		Dirty:                 x.Dirty,
		EvaluationPermission:  individual.EvaluationPermission(x.EvaluationPermission),
		LazyEvaluationAllowed: x.LazyEvaluationAllowed,
		ParentIteration:       x.ParentIteration,
	}
	if len(x.Traits) > 0 {
		snap.Traits = make(individual.Traits, len(x.Traits))
		for _, e := range x.Traits {
			var v any
			if err := json.Unmarshal([]byte(e.ValueJSON), &v); err == nil {
				snap.Traits[e.Key] = v
			}
		}
	}
	return snap
}

// EncodeXml renders snap as XML (spec §4.7's Xml encoding: "interoperable
// format").
func EncodeXml(snap individual.Snapshot) (string, error) {
	b, err := xml.MarshalIndent(toXMLSnapshot(snap), "", "  ")
	if err != nil {
		return "", wrapSerializationErr("encode xml", err)
	}
	return string(b), nil
}

// DecodeXml parses s, previously produced by EncodeXml, back into a
// Snapshot.
func DecodeXml(s string) (individual.Snapshot, error) {
	var x xmlSnapshot
	if err := xml.Unmarshal([]byte(s), &x); err != nil {
		return individual.Snapshot{}, wrapSerializationErr("decode xml", err)
	}
	return fromXMLSnapshot(x), nil
}
