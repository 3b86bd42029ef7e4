// Package msgpack encodes inputmask configs and snapshots as MessagePack.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/inputmask"
)

// ContentType is the MIME type written by this codec.
const ContentType = "application/msgpack"

// codec implements inputmask.Codec for MessagePack.
type codec struct{}

// New returns a MessagePack codec.
func New() inputmask.Codec {
	return codec{}
}

// ContentType returns the MIME type for MessagePack.
func (codec) ContentType() string {
	return ContentType
}

// Marshal encodes v as MessagePack.
func (codec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (codec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
