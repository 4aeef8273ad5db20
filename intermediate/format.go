package intermediate

import (
	"encoding/json"
	"fmt"
	"io"
)

// FormatVersion identifies the JSON intermediate format revision.
const FormatVersion = "1"

// FileFormat is the JSON intermediate artifact for one input file: every
// record that passed validation, in declaration order.
type FileFormat struct {
	FormatVersion string          `json:"format_version"`
	Source        string          `json:"source,omitempty"`
	Records       []*RecordFormat `json:"records"`
}

// NewFileFormat builds the intermediate artifact for validated record sets.
func NewFileFormat(source string, sets []*ValidatedFieldSet) *FileFormat {
	records := make([]*RecordFormat, 0, len(sets))
	for _, set := range sets {
		records = append(records, set.Record)
	}

	return &FileFormat{
		FormatVersion: FormatVersion,
		Source:        source,
		Records:       records,
	}
}

// WriteJSON writes the artifact to w, optionally indented.
func (f *FileFormat) WriteJSON(w io.Writer, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("failed to encode intermediate format: %w", err)
	}

	return nil
}

// ReadJSON parses an intermediate artifact produced by WriteJSON.
func ReadJSON(r io.Reader) (*FileFormat, error) {
	var f FileFormat

	dec := json.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode intermediate format: %w", err)
	}

	return &f, nil
}
