// Package bson encodes inputmask configs and snapshots as BSON.
package bson

import (
	"github.com/zoobzio/inputmask"
	"go.mongodb.org/mongo-driver/bson"
)

// ContentType is the MIME type written by this codec.
const ContentType = "application/bson"

// codec implements inputmask.Codec for BSON.
type codec struct{}

// New returns a BSON codec.
func New() inputmask.Codec {
	return codec{}
}

// ContentType returns the MIME type for BSON.
func (codec) ContentType() string {
	return ContentType
}

// Marshal encodes v as BSON.
func (codec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (codec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
