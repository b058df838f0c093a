package site

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"site.yaml": &fstest.MapFile{Data: []byte(`
title: harbor
items:
  - id: hello
    title: Hello
    kind: post
    blurb: the first post
    source: posts/hello.md
  - id: gallery
    title: Darkroom
    kind: gallery
    blurb: photo collections
  - id: map
    title: Footprints
    kind: map
`)},
		"posts/hello.md": &fstest.MapFile{Data: []byte("# Hello\n\nbody\n")},
	}
}

func TestLoad_ParsesRegistry(t *testing.T) {
	r, err := Load(testFS())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if r.SiteTitle() != "harbor" {
		t.Errorf("SiteTitle() = %q, want %q", r.SiteTitle(), "harbor")
	}
	if len(r.Items()) != 3 {
		t.Fatalf("Items() count = %d, want 3", len(r.Items()))
	}
	if got := r.Items()[0].ID; got != "hello" {
		t.Errorf("first item id = %q, want hello (registry order preserved)", got)
	}
}

func TestLoad_MissingRegistry(t *testing.T) {
	_, err := Load(fstest.MapFS{})
	if err == nil {
		t.Fatal("Load should fail without site.yaml")
	}
}

func TestLoad_RejectsUnknownKind(t *testing.T) {
	fsys := fstest.MapFS{
		"site.yaml": &fstest.MapFile{Data: []byte(
			"title: x\nitems:\n  - id: a\n    title: A\n    kind: video\n")},
	}
	if _, err := Load(fsys); err == nil {
		t.Error("Load should reject unknown kinds")
	}
}

func TestLoad_RejectsDuplicateID(t *testing.T) {
	fsys := fstest.MapFS{
		"site.yaml": &fstest.MapFile{Data: []byte(
			"title: x\nitems:\n" +
				"  - {id: a, title: A, kind: map}\n" +
				"  - {id: a, title: B, kind: map}\n")},
	}
	if _, err := Load(fsys); err == nil {
		t.Error("Load should reject duplicate ids")
	}
}

func TestLoad_RejectsPostWithoutSource(t *testing.T) {
	fsys := fstest.MapFS{
		"site.yaml": &fstest.MapFile{Data: []byte(
			"title: x\nitems:\n  - {id: a, title: A, kind: post}\n")},
	}
	if _, err := Load(fsys); err == nil {
		t.Error("Load should reject posts without a source")
	}
}

func TestKind_Lookup(t *testing.T) {
	r, err := Load(testFS())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	k, ok := r.Kind("gallery")
	if !ok || k != KindGallery {
		t.Errorf("Kind(gallery) = %v, %v; want KindGallery, true", k, ok)
	}
	if _, ok := r.Kind("nope"); ok {
		t.Error("Kind(nope) should report false")
	}
}

func TestPostSource_FetchOnceCached(t *testing.T) {
	// Given: a registry over a mutable in-memory filesystem
	fsys := testFS()
	r, err := Load(fsys)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	// When: the post is fetched, the file changes, and it is fetched again
	first, err := r.PostSource("hello")
	if err != nil {
		t.Fatalf("PostSource error: %v", err)
	}
	fsys["posts/hello.md"] = &fstest.MapFile{Data: []byte("changed")}
	second, err := r.PostSource("hello")
	if err != nil {
		t.Fatalf("PostSource error: %v", err)
	}

	// Then: the session serves the in-memory copy from the first fetch
	if first != second {
		t.Errorf("second fetch = %q, want the cached %q", second, first)
	}
}

func TestPostSource_UnknownID(t *testing.T) {
	r, err := Load(testFS())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	_, err = r.PostSource("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("PostSource(missing) error = %v, want ErrNotFound", err)
	}
}

func TestPostSource_NonPost(t *testing.T) {
	r, err := Load(testFS())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if _, err := r.PostSource("gallery"); err == nil {
		t.Error("PostSource on a gallery item should fail")
	}
}

func TestSearch_FiltersByTitleAndBlurb(t *testing.T) {
	r, err := Load(testFS())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	hits := r.Search("PHOTO")
	if len(hits) != 1 || hits[0].ID != "gallery" {
		t.Errorf("Search(PHOTO) = %+v, want just the gallery (blurb match)", hits)
	}
	if got := len(r.Search("")); got != 3 {
		t.Errorf("empty query should return all items, got %d", got)
	}
	if got := len(r.Search("zzz")); got != 0 {
		t.Errorf("Search(zzz) = %d hits, want 0", got)
	}
}
