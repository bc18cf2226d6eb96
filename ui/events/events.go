// Package events loads the event records an event listing displays.
//
// Records are payload: apart from ID, nothing here interprets them.
package events

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrDuplicateID is returned by Load when two records share an id.
var ErrDuplicateID = errors.New("events: duplicate id")

// Record is one listed event.
type Record struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Image       string `yaml:"image"`
	Date        string `yaml:"date"`
	City        string `yaml:"city"`
	Time        string `yaml:"time"`
	AddressLine string `yaml:"firstLineOfAddress"`
	Postcode    string `yaml:"postcode"`
	Description string `yaml:"description"`
}

// Collection is an ordered list of records. Order is display order.
type Collection []Record

type document struct {
	Events Collection `yaml:"events"`
}

// Load decodes a YAML document with a top-level "events" list.
// Numeric ids are kept in their decimal form. Records without an id
// are given a random UUID.
func Load(r io.Reader) (Collection, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Collection{}, nil
		}
		return nil, fmt.Errorf("events: decode: %w", err)
	}
	seen := make(map[string]int, len(doc.Events))
	for i := range doc.Events {
		rec := &doc.Events[i]
		rec.ID = strings.TrimSpace(rec.ID)
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		if j, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("%w %q (records %d and %d)", ErrDuplicateID, rec.ID, j, i)
		}
		seen[rec.ID] = i
	}
	if doc.Events == nil {
		doc.Events = Collection{}
	}
	return doc.Events, nil
}

// LoadFile is Load on the named file.
func LoadFile(path string) (Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Filter returns the records for which keep reports true, in order.
func (c Collection) Filter(keep func(Record) bool) Collection {
	out := make(Collection, 0, len(c))
	for _, r := range c {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// ByCity returns a predicate matching city case-insensitively. An
// empty city matches everything.
func ByCity(city string) func(Record) bool {
	city = strings.TrimSpace(city)
	return func(r Record) bool {
		return city == "" || strings.EqualFold(r.City, city)
	}
}

// IDs returns the record ids in order.
func (c Collection) IDs() []string {
	ids := make([]string, len(c))
	for i, r := range c {
		ids[i] = r.ID
	}
	return ids
}
