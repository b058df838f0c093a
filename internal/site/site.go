// Package site loads the item registry: every piece of content the page
// can show, keyed by the id carried in the location query. The registry
// is read once per session and held immutable in memory.
package site

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// registryFile is the registry's path inside the content filesystem.
const registryFile = "site.yaml"

// ErrNotFound indicates a location id with no registry entry.
var ErrNotFound = errors.New("site: item not found")

// Kind classifies how an item's detail view is produced.
type Kind string

const (
	KindPost    Kind = "post"    // markdown source rendered to styled text
	KindGallery Kind = "gallery" // hands the container to the gallery controller
	KindMap     Kind = "map"     // place markers projected onto the world map
)

// Item is one navigable entry of the site.
type Item struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	Kind   Kind   `yaml:"kind"`
	Blurb  string `yaml:"blurb"`  // short line under the home tile title
	Source string `yaml:"source"` // content path, required for posts
}

// Registry holds the loaded site: its title, the ordered item list, and a
// per-session cache of fetched post sources.
type Registry struct {
	title string
	items []Item
	byID  map[string]Item
	fsys  fs.FS
	posts map[string]string
}

type registryDoc struct {
	Title string `yaml:"title"`
	Items []Item `yaml:"items"`
}

// Load reads and validates site.yaml from the content filesystem.
func Load(fsys fs.FS) (*Registry, error) {
	data, err := fs.ReadFile(fsys, registryFile)
	if err != nil {
		return nil, fmt.Errorf("site: reading %s: %w", registryFile, err)
	}

	var doc registryDoc
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("site: parsing %s: %w", registryFile, err)
	}

	r := &Registry{
		title: doc.Title,
		items: doc.Items,
		byID:  make(map[string]Item, len(doc.Items)),
		fsys:  fsys,
		posts: make(map[string]string),
	}
	for _, it := range doc.Items {
		if err := validateItem(it); err != nil {
			return nil, err
		}
		if _, dup := r.byID[it.ID]; dup {
			return nil, fmt.Errorf("site: duplicate item id %q", it.ID)
		}
		r.byID[it.ID] = it
	}
	return r, nil
}

func validateItem(it Item) error {
	if it.ID == "" {
		return fmt.Errorf("site: item %q has no id", it.Title)
	}
	if it.Title == "" {
		return fmt.Errorf("site: item %q has no title", it.ID)
	}
	switch it.Kind {
	case KindPost:
		if it.Source == "" {
			return fmt.Errorf("site: post %q has no source", it.ID)
		}
	case KindGallery, KindMap:
		// no source; these items render from their own content files
	default:
		return fmt.Errorf("site: item %q has unknown kind %q", it.ID, it.Kind)
	}
	return nil
}

// SiteTitle returns the title shown in the page header.
func (r *Registry) SiteTitle() string {
	return r.title
}

// Items returns the items in registry order, which is also the order they
// bind to home grid positions.
func (r *Registry) Items() []Item {
	return r.items
}

// Get looks an item up by id.
func (r *Registry) Get(id string) (Item, bool) {
	it, ok := r.byID[id]
	return it, ok
}

// Kind reports the kind of the item with the given id.
func (r *Registry) Kind(id string) (Kind, bool) {
	it, ok := r.byID[id]
	return it.Kind, ok
}

// PostSource returns the markdown source for a post item, fetching it
// from the content filesystem on first use and serving the in-memory
// copy afterwards.
func (r *Registry) PostSource(id string) (string, error) {
	if src, ok := r.posts[id]; ok {
		return src, nil
	}
	it, ok := r.byID[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if it.Kind != KindPost {
		return "", fmt.Errorf("site: item %q is not a post", id)
	}
	data, err := fs.ReadFile(r.fsys, it.Source)
	if err != nil {
		return "", fmt.Errorf("site: reading %s: %w", it.Source, err)
	}
	r.posts[id] = string(data)
	return r.posts[id], nil
}

// Search filters items whose title or blurb contains the query,
// case-insensitively. An empty query returns every item.
func (r *Registry) Search(query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.items
	}
	var out []Item
	for _, it := range r.items {
		if strings.Contains(strings.ToLower(it.Title), q) ||
			strings.Contains(strings.ToLower(it.Blurb), q) {
			out = append(out, it)
		}
	}
	return out
}
