package inputmask

import "context"

// Snapshot is the persisted form of an engine's state.
type Snapshot struct {
	MaskType string `json:"mask_type" xml:"mask_type" yaml:"mask_type" msgpack:"mask_type" bson:"mask_type"`
	Raw      string `json:"raw" xml:"raw" yaml:"raw" msgpack:"raw" bson:"raw"`
	Masked   string `json:"masked" xml:"masked" yaml:"masked" msgpack:"masked" bson:"masked"`
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		MaskType: string(e.cfg.MaskType),
		Raw:      e.state.Raw,
		Masked:   e.state.Masked,
	}
}

// MarshalSnapshot encodes the engine's snapshot with codec c.
func (e *Engine) MarshalSnapshot(c Codec) ([]byte, error) {
	snap := e.Snapshot()
	data, err := c.Marshal(&snap)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

// Restore decodes a snapshot written by MarshalSnapshot and seeds the engine
// from its raw value, as construction does. OnChange is not called.
//
// The stored masked value is not trusted; it is recomputed so the masked
// value always derives from the raw one. A snapshot taken under another
// mask type is rejected with ErrMaskTypeMismatch.
func (e *Engine) Restore(c Codec, data []byte) (State, error) {
	var snap Snapshot
	if err := c.Unmarshal(data, &snap); err != nil {
		err = newCodecError(ErrUnmarshal, err)
		emitSnapshotRestored(context.Background(), c.ContentType(), e.cfg.MaskType, e.state, err)
		return e.state, err
	}

	if MaskType(snap.MaskType) != e.cfg.MaskType {
		err := newConfigError(ErrMaskTypeMismatch, MaskType(snap.MaskType), "")
		emitSnapshotRestored(context.Background(), c.ContentType(), e.cfg.MaskType, e.state, err)
		return e.state, err
	}

	e.seed(snap.Raw)
	emitSnapshotRestored(context.Background(), c.ContentType(), e.cfg.MaskType, e.state, nil)
	return e.state, nil
}
