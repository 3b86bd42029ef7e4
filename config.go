package inputmask

// Config is the construction configuration of an Engine.
// An Engine copies it; later changes to a Config have no effect.
type Config struct {
	// MaskType selects the clamp policy and masker. MaskNone passes input through.
	MaskType MaskType

	// InitialValue seeds the engine state.
	InitialValue string

	// Custom formats values when MaskType is MaskCustom; ignored otherwise.
	Custom FormatFunc

	// OnChange is called with the new raw value after every Edit and SetValue.
	OnChange func(raw string)
}

// Option mutates a Config during construction.
type Option func(*Config)

// DefaultConfig returns a pass-through configuration with an empty value.
func DefaultConfig() Config {
	return Config{MaskType: MaskNone}
}

// NewConfig builds a Config from the given options.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaskType sets the mask type.
func WithMaskType(mt MaskType) Option {
	return func(c *Config) {
		c.MaskType = mt
	}
}

// WithInitialValue sets the value the engine starts from.
func WithInitialValue(value string) Option {
	return func(c *Config) {
		c.InitialValue = value
	}
}

// WithCustomMask sets the formatter used by MaskCustom.
func WithCustomMask(fn FormatFunc) Option {
	return func(c *Config) {
		c.Custom = fn
	}
}

// WithOnChange sets the raw value change callback.
func WithOnChange(fn func(raw string)) Option {
	return func(c *Config) {
		c.OnChange = fn
	}
}

// configDocument is the serialisable part of a Config.
type configDocument struct {
	MaskType     string `json:"mask_type" xml:"mask_type" yaml:"mask_type" msgpack:"mask_type" bson:"mask_type"`
	InitialValue string `json:"initial_value" xml:"initial_value" yaml:"initial_value" msgpack:"initial_value" bson:"initial_value"`
}

// DecodeConfig reads a mask_type/initial_value document with codec c.
// Options are applied on top of the decoded values, which is how callers
// attach Custom and OnChange.
func DecodeConfig(c Codec, data []byte, opts ...Option) (Config, error) {
	var doc configDocument
	if err := c.Unmarshal(data, &doc); err != nil {
		return Config{}, newCodecError(ErrUnmarshal, err)
	}

	mt, err := ParseMaskType(doc.MaskType)
	if err != nil {
		return Config{}, err
	}

	cfg := NewConfig(WithMaskType(mt), WithInitialValue(doc.InitialValue))
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, nil
}

// EncodeConfig writes the serialisable part of cfg with codec c.
func EncodeConfig(c Codec, cfg Config) ([]byte, error) {
	data, err := c.Marshal(&configDocument{
		MaskType:     string(cfg.MaskType),
		InitialValue: cfg.InitialValue,
	})
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}
