package intermediate

import (
	"fmt"

	recidx "github.com/recidx/recidx"
)

// ValidatedFieldSet is a record's field sequence after the uniformity check
// passed: it is non-empty and every field shares one literal type text.
// It exists only for the duration of a generation pass.
type ValidatedFieldSet struct {
	Record   *RecordFormat
	TypeText string // the single type all fields share
}

// Len returns the number of indexable fields.
func (v *ValidatedFieldSet) Len() int {
	return len(v.Record.Fields)
}

// Validate checks that every field of the record spells its type identically
// to the first field. The comparison is over the literal token sequence:
// nothing is resolved, so aliases and qualified paths that would name the same
// type are still mismatches. An empty record is rejected outright because
// indexing it is undefined.
func Validate(rec *RecordFormat) (*ValidatedFieldSet, error) {
	if len(rec.Fields) == 0 {
		return nil, fmt.Errorf("%w: record %s (%s:%d)", recidx.ErrEmptyRecord, rec.Name, rec.Source.File, rec.Source.Line)
	}

	first := rec.Fields[0]
	for _, field := range rec.Fields[1:] {
		if field.TypeText != first.TypeText {
			return nil, fmt.Errorf("%w: record %s: field %s is %q but field %s is %q (%s:%d)",
				recidx.ErrNonUniformFieldType, rec.Name,
				first.Identifier, first.TypeText,
				field.Identifier, field.TypeText,
				rec.Source.File, rec.Source.Line)
		}
	}

	return &ValidatedFieldSet{Record: rec, TypeText: first.TypeText}, nil
}
