package events

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	c, err := LoadFile(filepath.Join("testdata", "events.yaml"))
	require.NoError(t, err)
	require.Len(t, c, 2)

	assert.Equal(t, []string{"1", "2"}, c.IDs())
	first := c[0]
	assert.Equal(t, "Event 1", first.Title)
	assert.Equal(t, "San Francisco", first.City)
	assert.Equal(t, "123 Fake Street", first.AddressLine)
	assert.Equal(t, "94101", first.Postcode)
	assert.Equal(t, "This is Event 1", first.Description)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
}

func TestLoadAssignsIDs(t *testing.T) {
	c, err := Load(strings.NewReader("events:\n  - title: anonymous\n  - id: \"  \"\n    title: blank\n"))
	require.NoError(t, err)
	require.Len(t, c, 2)
	for _, r := range c {
		_, err := uuid.Parse(r.ID)
		assert.NoError(t, err, "id %q", r.ID)
	}
	assert.NotEqual(t, c[0].ID, c[1].ID)
}

func TestLoadDuplicateID(t *testing.T) {
	_, err := Load(strings.NewReader("events:\n  - id: 7\n  - id: \"7\"\n"))
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("events:\n  - id: 1\n    venue: somewhere\n"))
	require.Error(t, err)
}

func TestLoadEmpty(t *testing.T) {
	c, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, c)

	c, err = Load(strings.NewReader("events: []\n"))
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestFilterByCity(t *testing.T) {
	c := Collection{
		{ID: "1", City: "San Francisco"},
		{ID: "2", City: "New York"},
		{ID: "3", City: "new york"},
	}
	assert.Equal(t, []string{"2", "3"}, c.Filter(ByCity(" New York ")).IDs())
	assert.Equal(t, []string{"1", "2", "3"}, c.Filter(ByCity("")).IDs())
	assert.Empty(t, c.Filter(ByCity("Paris")))
}
