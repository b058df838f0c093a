// Package nav models the address bar: a Location value serialized as a
// query string, and a History stack with browser push/back/forward
// semantics. Both are plain values with no knowledge of what the
// locations point at.
package nav

import (
	"fmt"
	"net/url"
	"strings"
)

// Query parameter keys. These are the only externally visible state keys
// besides history entries and the local key-value store.
const (
	paramID         = "id"
	paramCollection = "collection"
)

// Location identifies what the page shows. A zero Location is Home.
type Location struct {
	ID         string // active item id; empty means Home
	Collection string // optional sub-selection, meaningful only with a non-empty ID
}

// Home returns the Home location.
func Home() Location {
	return Location{}
}

// IsHome reports whether the location is the home view.
func (l Location) IsHome() bool {
	return l.ID == ""
}

// Query serializes the location as a query string without the leading "?".
// Home serializes to the empty string. Parsing the result with ParseQuery
// round-trips the value.
func (l Location) Query() string {
	if l.IsHome() {
		return ""
	}
	v := url.Values{}
	v.Set(paramID, l.ID)
	if l.Collection != "" {
		v.Set(paramCollection, l.Collection)
	}
	return v.Encode()
}

// String renders the location the way the header shows it: "/" for Home,
// "/?id=…" otherwise.
func (l Location) String() string {
	q := l.Query()
	if q == "" {
		return "/"
	}
	return "/?" + q
}

// ParseQuery parses a location from a query string. Leading "/" and "?"
// are tolerated, so "", "/", "?id=x", "/?id=x" and "id=x" all parse.
// A collection with no id is dropped: the sub-selection is only
// interpreted alongside an active item.
func ParseQuery(raw string) (Location, error) {
	s := strings.TrimPrefix(raw, "/")
	s = strings.TrimPrefix(s, "?")
	if s == "" {
		return Home(), nil
	}
	v, err := url.ParseQuery(s)
	if err != nil {
		return Home(), fmt.Errorf("nav: parsing %q: %w", raw, err)
	}
	loc := Location{ID: v.Get(paramID)}
	if !loc.IsHome() {
		loc.Collection = v.Get(paramCollection)
	}
	return loc, nil
}
