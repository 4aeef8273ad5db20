package intermediate

import (
	"bytes"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFileFormatRoundTrip(t *testing.T) {
	set, err := validateSource(t, "record Triple(uint32, uint32, uint32)")
	assert.NoError(t, err)

	format := NewFileFormat("triple.rec", []*ValidatedFieldSet{set})

	var buf bytes.Buffer

	err = format.WriteJSON(&buf, true)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"declaration_order": 2`)

	parsed, err := ReadJSON(&buf)
	assert.NoError(t, err)
	assert.Equal(t, FormatVersion, parsed.FormatVersion)
	assert.Equal(t, 1, len(parsed.Records))
	assert.Equal(t, "Triple", parsed.Records[0].Name)
	assert.True(t, parsed.Records[0].Positional)
}
