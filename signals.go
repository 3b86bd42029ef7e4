package inputmask

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for engine, form and snapshot events.
var (
	SignalEngineCreated    = capitan.NewSignal("inputmask.engine.created", "Engine instantiated")
	SignalEditApplied      = capitan.NewSignal("inputmask.edit.applied", "Host edit reconciled")
	SignalValueSet         = capitan.NewSignal("inputmask.value.set", "Programmatic value reconciled")
	SignalSnapshotRestored = capitan.NewSignal("inputmask.snapshot.restored", "Engine state restored from a snapshot")
	SignalFormCreated      = capitan.NewSignal("inputmask.form.created", "Form bound to a struct type")
)

// Keys for typed event data.
// Raw input is never emitted; see Digest.
var (
	KeyMaskType     = capitan.NewStringKey("mask_type")
	KeyRawLength    = capitan.NewIntKey("raw_length")
	KeyMaskedLength = capitan.NewIntKey("masked_length")
	KeyRawDigest    = capitan.NewStringKey("raw_digest")
	KeyDuration     = capitan.NewDurationKey("duration")
	KeyError        = capitan.NewErrorKey("error")
	KeyContentType  = capitan.NewStringKey("content_type")
	KeyTypeName     = capitan.NewStringKey("type_name")
	KeyFieldCount   = capitan.NewIntKey("field_count")
)

// stateFields describes a state without exposing its raw value.
func stateFields(mt MaskType, s State) []capitan.Field {
	return []capitan.Field{
		KeyMaskType.Field(mt.String()),
		KeyRawLength.Field(len(s.Raw)),
		KeyMaskedLength.Field(len(s.Masked)),
		KeyRawDigest.Field(Digest(s.Raw)),
	}
}

// emitEngineCreated emits an event when an engine is seeded.
func emitEngineCreated(ctx context.Context, mt MaskType, s State) {
	capitan.Emit(ctx, SignalEngineCreated, stateFields(mt, s)...)
}

// emitEditApplied emits an event after a host edit.
func emitEditApplied(ctx context.Context, mt MaskType, s State, duration time.Duration) {
	fields := append(stateFields(mt, s), KeyDuration.Field(duration))
	capitan.Emit(ctx, SignalEditApplied, fields...)
}

// emitValueSet emits an event after a programmatic set.
func emitValueSet(ctx context.Context, mt MaskType, s State, duration time.Duration) {
	fields := append(stateFields(mt, s), KeyDuration.Field(duration))
	capitan.Emit(ctx, SignalValueSet, fields...)
}

// emitSnapshotRestored emits an event when a restore finishes.
func emitSnapshotRestored(ctx context.Context, contentType string, mt MaskType, s State, err error) {
	fields := append(stateFields(mt, s), KeyContentType.Field(contentType))
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSnapshotRestored, fields...)
	} else {
		capitan.Emit(ctx, SignalSnapshotRestored, fields...)
	}
}

// emitFormCreated emits an event when a form is bound to a type.
func emitFormCreated(ctx context.Context, typeName string, fieldCount int) {
	capitan.Emit(ctx, SignalFormCreated,
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(fieldCount),
	)
}
