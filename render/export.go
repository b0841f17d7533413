package render

import (
	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepviz/trace"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrFormat is returned by Export for an unknown format.
var ErrFormat = errors.New("render: unknown export format")

// Document is the serialized form of a Trace.
type Document struct {
	Algorithm string       `json:"algorithm" yaml:"algorithm"`
	Steps     []trace.Step `json:"steps" yaml:"steps"`
}

// NewDocument copies tr into a Document.
func NewDocument(tr *trace.Trace) Document {
	return Document{Algorithm: tr.Algorithm(), Steps: tr.Steps()}
}

// Export serializes tr as indented JSON (map keys sorted) or YAML.
//
// Errors: ErrFormat.
func Export(tr *trace.Trace, format string) ([]byte, error) {
	doc := NewDocument(tr)
	switch format {
	case FormatJSON:
		out, err := sonic.ConfigStd.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "render: marshal json")
		}

		return out, nil
	case FormatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(err, "render: marshal yaml")
		}

		return out, nil
	default:
		return nil, errors.Wrapf(ErrFormat, "%q", format)
	}
}

// Import parses a Document written by Export.
//
// Errors: ErrFormat, or the decoder error.
func Import(data []byte, format string) (Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatJSON:
		err = sonic.ConfigStd.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		return Document{}, errors.Wrapf(ErrFormat, "%q", format)
	}
	if err != nil {
		return Document{}, errors.Wrapf(err, "render: decode %s", format)
	}

	return doc, nil
}
