package recidx

import "errors"

// Common errors used throughout the recidx package
var (
	// ErrNonUniformFieldType is returned when two fields of one record spell their
	// declared types differently. The comparison is literal token text, so a
	// qualified spelling of an otherwise identical type is still a mismatch.
	ErrNonUniformFieldType = errors.New("all fields of a record must have the same literal type")
	// ErrEmptyRecord is returned when a record declares no fields. Indexing is
	// undefined for an empty record, so generation is refused instead of emitting
	// accessors whose bounds check always fails.
	ErrEmptyRecord = errors.New("record has no fields to index")

	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")
)
