package sink_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/treetags/internal/sink"
	"github.com/viant/treetags/internal/tag"
)

func TestSink_TagsSortedStableByName(t *testing.T) {
	s := sink.New()
	s.Add([]tag.Tag{{Name: "banana", FileName: "a.go"}, {Name: "apple", FileName: "a.go"}})
	s.Add([]tag.Tag{{Name: "apple", FileName: "b.go"}})

	out := s.Tags()
	require.Len(t, out, 3)
	assert.Equal(t, "apple", out[0].Name)
	assert.Equal(t, "a.go", out[0].FileName)
	assert.Equal(t, "apple", out[1].Name)
	assert.Equal(t, "b.go", out[1].FileName)
	assert.Equal(t, "banana", out[2].Name)
}

func TestSink_WriteAndParseExistingRoundTrip(t *testing.T) {
	s := sink.New()
	fields := tag.NewFields()
	fields.Set("kind", "f")
	fields.Set("line", "3")
	s.Add([]tag.Tag{{
		Name:     "area",
		FileName: "shapes.go",
		Address:  `/^func area() int {$/;"`,
		Kind:     "f",
		Fields:   fields,
	}})

	dir := t.TempDir()
	path := filepath.Join(dir, "tags")
	require.NoError(t, s.Write(path))

	parsed, err := sink.ParseExisting(path)
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, "area", parsed[0].Name)
	assert.Equal(t, "shapes.go", parsed[0].FileName)
	assert.Equal(t, `/^func area() int {$/;"`, parsed[0].Address)
	assert.Equal(t, "f", parsed[0].Kind)
	line, ok := parsed[0].Fields.Get("line")
	require.True(t, ok)
	assert.Equal(t, "3", line)
}

func TestParseExisting_RejectsShortLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tags")
	require.NoError(t, os.WriteFile(path, []byte("name\tfile.go\n"), 0o644))

	_, err := sink.ParseExisting(path)
	assert.Error(t, err)
}

func TestParseExisting_RejectsMissingTerminator(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tags")
	require.NoError(t, os.WriteFile(path, []byte("name\tfile.go\t/^foo$/\n"), 0o644))

	_, err := sink.ParseExisting(path)
	assert.Error(t, err)
}

func TestSink_AppendModeProducesDuplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tags")

	first := sink.New()
	first.Add([]tag.Tag{{Name: "area", FileName: "shapes.go", Address: `/^func area() int {$/;"`, Fields: tag.NewFields()}})
	require.NoError(t, first.Write(path))

	existing, err := sink.ParseExisting(path)
	require.NoError(t, err)

	second := sink.New()
	second.Merge(existing)
	second.Add([]tag.Tag{{Name: "area", FileName: "shapes.go", Address: `/^func area() int {$/;"`, Fields: tag.NewFields()}})

	out := second.Tags()
	require.Len(t, out, 2)
	assert.Equal(t, "area", out[0].Name)
	assert.Equal(t, "area", out[1].Name)
}
