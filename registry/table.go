package registry

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Entry associates a type with its singular and collection tags. Either
// tag may be empty, but not both.
type Entry struct {
	Type string `yaml:"type"`
	One  string `yaml:"one,omitempty"`
	Many string `yaml:"many,omitempty"`
}

// Table is a list of tag associations.
type Table []Entry

// ParseTable parses a YAML sequence of entries. Every entry must name a
// type and at least one tag, and no tag may appear twice.
func ParseTable(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrap(err, "failed to parse tag table")
	}
	seen := map[string]string{}
	for i, e := range t {
		if e.Type == "" {
			return nil, errors.Errorf("tag table entry %d: missing type", i)
		}
		if e.One == "" && e.Many == "" {
			return nil, errors.Errorf("tag table entry %d (%s): no tags", i, e.Type)
		}
		for _, tag := range []string{e.One, e.Many} {
			if tag == "" {
				continue
			}
			if prev, ok := seen[tag]; ok {
				return nil, errors.Errorf("tag table entry %d (%s): tag %q already used by %s", i, e.Type, tag, prev)
			}
			seen[tag] = e.Type
		}
	}
	return t, nil
}

// Marshal serializes t to YAML.
func (t Table) Marshal() ([]byte, error) { return yaml.Marshal(t) }

// Lookup returns the entry for the named type.
func (t Table) Lookup(typ string) (Entry, bool) {
	for _, e := range t {
		if e.Type == typ {
			return e, true
		}
	}
	return Entry{}, false
}
