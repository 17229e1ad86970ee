package fs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/deskmate/pkg/core"
)

func TestCodecFor(t *testing.T) {
	cases := map[string]string{
		"schedule_data.json": "json",
		"notes.YAML":         "yaml",
		"notes.yml":          "yaml",
		"no_extension":       "json",
		"data.txt":           "json",
	}
	for path, want := range cases {
		assert.Equal(t, want, CodecFor(path).Name(), path)
	}
}

func TestJSONCodec_Indentation(t *testing.T) {
	tasks := []core.Task{{ID: 1, Title: "Stand-up", Datetime: "2026-03-01 09:00"}}

	data, err := JSONCodec{}.Encode(tasks)
	require.NoError(t, err)

	want := `[
  {
    "id": 1,
    "title": "Stand-up",
    "datetime": "2026-03-01 09:00",
    "description": ""
  }
]
`
	assert.Equal(t, want, string(data))
}

func TestJSONCodec_KeepsNonASCIIAndHTML(t *testing.T) {
	data, err := JSONCodec{}.Encode([]core.Note{{ID: 1, Title: "Café <b>", CreatedAt: "2026-02-20 10:00"}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Café <b>"`)
}

func TestJSONCodec_Malformed(t *testing.T) {
	var notes []core.Note
	err := JSONCodec{}.Decode([]byte(`[{"id": 1,`), &notes)
	assert.ErrorContains(t, err, "invalid json")
}

func TestYAMLCodec_RoundTrip(t *testing.T) {
	notes := []core.Note{
		{ID: 1, Title: "Hello", Content: "World\nsecond line", CreatedAt: "2026-02-20 10:00"},
		{ID: 2, Title: "Empty", CreatedAt: "2026-02-20 11:00"},
	}

	data, err := YAMLCodec{}.Encode(notes)
	require.NoError(t, err)

	var got []core.Note
	require.NoError(t, YAMLCodec{}.Decode(data, &got))
	assert.Equal(t, notes, got)
}
