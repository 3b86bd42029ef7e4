// Package json encodes inputmask configs and snapshots as JSON.
package json

import (
	"encoding/json"

	"github.com/zoobzio/inputmask"
)

// ContentType is the MIME type written by this codec.
const ContentType = "application/json"

// codec implements inputmask.Codec for JSON.
type codec struct{}

// New returns a JSON codec.
func New() inputmask.Codec {
	return codec{}
}

// ContentType returns the MIME type for JSON.
func (codec) ContentType() string {
	return ContentType
}

// Marshal encodes v as JSON.
func (codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
