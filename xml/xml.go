// Package xml encodes inputmask configs and snapshots as XML.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/inputmask"
)

// ContentType is the MIME type written by this codec.
const ContentType = "application/xml"

// codec implements inputmask.Codec for XML.
type codec struct{}

// New returns a XML codec.
func New() inputmask.Codec {
	return codec{}
}

// ContentType returns the MIME type for XML.
func (codec) ContentType() string {
	return ContentType
}

// Marshal encodes v as XML.
func (codec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (codec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
