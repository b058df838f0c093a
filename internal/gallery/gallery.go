// Package gallery implements the photo gallery: an immutable collection
// list loaded once per session, and the nested three-state controller
// (collections, viewer, grid) that owns the gallery container while the
// page shows a gallery item.
package gallery

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// collectionsFile is the gallery content path inside the content filesystem.
const collectionsFile = "gallery.yaml"

// Photo is one gallery entry: a block of character art plus the metadata
// shown under it in the viewer.
type Photo struct {
	Caption  string `yaml:"caption"`
	Location string `yaml:"location"`
	Taken    string `yaml:"taken"`
	Art      string `yaml:"art"`
}

// Collection is an ordered photo sequence with a cover glyph for the
// collection list.
type Collection struct {
	ID     string  `yaml:"id"`
	Title  string  `yaml:"title"`
	Cover  string  `yaml:"cover"`
	Photos []Photo `yaml:"photos"`
}

type collectionsDoc struct {
	Collections []Collection `yaml:"collections"`
}

// LoadCollections reads and validates gallery.yaml from the content
// filesystem. The result is treated as immutable for the session.
func LoadCollections(fsys fs.FS) ([]Collection, error) {
	data, err := fs.ReadFile(fsys, collectionsFile)
	if err != nil {
		return nil, fmt.Errorf("gallery: reading %s: %w", collectionsFile, err)
	}

	var doc collectionsDoc
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("gallery: parsing %s: %w", collectionsFile, err)
	}

	seen := make(map[string]bool, len(doc.Collections))
	for _, c := range doc.Collections {
		if c.ID == "" {
			return nil, fmt.Errorf("gallery: collection %q has no id", c.Title)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("gallery: duplicate collection id %q", c.ID)
		}
		seen[c.ID] = true
		if len(c.Photos) == 0 {
			return nil, fmt.Errorf("gallery: collection %q has no photos", c.ID)
		}
	}
	return doc.Collections, nil
}
