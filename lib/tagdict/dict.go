// Package tagdict loads a YAML file mapping numeric field ids to
// names, so a tool inspecting an id-mode TBF buffer (see
// [tbf.IDMode]) can recover readable field
// names without the original program's compiled-in tag constants.
//
// A dictionary file is a flat mapping:
//
//	1: player_name
//	2: health
//	3: position
//
// Unlike [tbf.HashName], dictionary ids are
// arbitrary and assigned by whatever external schema produced the
// buffer; tagdict does not validate or derive them.
package tagdict

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/electrodiux/tbf/lib/tbf"
)

// Dict is a loaded id-to-name mapping.
type Dict struct {
	byID map[uint16]string
}

// Load reads a dictionary file at path. The file must parse as a YAML
// mapping from integer id to string name; ids outside uint16's range
// or duplicate ids are reported as errors.
func Load(path string) (*Dict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tagdict: reading %s: %w", path, err)
	}

	var raw map[int]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("tagdict: parsing %s: %w", path, err)
	}

	d := &Dict{byID: make(map[uint16]string, len(raw))}
	for id, name := range raw {
		if id <= 0 || id > 0xFFFF {
			return nil, fmt.Errorf("tagdict: %s: id %d out of range (1..65535)", path, id)
		}
		d.byID[uint16(id)] = name
	}
	return d, nil
}

// Name returns the name registered for id, or "" if the dictionary
// has no entry for it.
func (d *Dict) Name(id uint16) string {
	if d == nil {
		return ""
	}
	return d.byID[id]
}

// Tag returns a [tbf.Tag] for id: one carrying the dictionary's name
// if it has an entry, an id-only tag otherwise. Useful for building a
// [tbf.Tag] to pass back into ReadXxx methods when browsing an
// id-mode buffer interactively.
func (d *Dict) Tag(id uint16) tbf.Tag {
	if name := d.Name(id); name != "" {
		if tag, err := tbf.NewIDTag(id, name); err == nil {
			return tag
		}
	}
	return tbf.IDOnlyTag(id)
}

// Len returns the number of entries in the dictionary.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.byID)
}
