// Package yaml encodes inputmask configs and snapshots as YAML.
package yaml

import (
	"github.com/zoobzio/inputmask"
	"gopkg.in/yaml.v3"
)

// ContentType is the MIME type written by this codec.
const ContentType = "application/yaml"

// codec implements inputmask.Codec for YAML.
type codec struct{}

// New returns a YAML codec.
func New() inputmask.Codec {
	return codec{}
}

// ContentType returns the MIME type for YAML.
func (codec) ContentType() string {
	return ContentType
}

// Marshal encodes v as YAML.
func (codec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (codec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
