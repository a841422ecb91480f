package config

// Config bundles the two language-independent selectors every walker
// consults when deciding what to include on a tag: which extension fields
// to emit, and the qualified/file-scope extras toggles. Kind selection is
// language-specific (see KindConfig) and is held separately by each
// lang/<language> package alongside its kind alias table.
type Config struct {
	Fields *FieldsConfig
	Extras *ExtrasConfig
}

// DefaultConfig returns the ctags-compatible defaults for both selectors.
func DefaultConfig() *Config {
	return &Config{
		Fields: NewFieldsConfig(),
		Extras: NewExtrasConfig(),
	}
}
