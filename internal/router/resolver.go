package router

import (
	tea "github.com/charmbracelet/bubbletea"

	"atrium/internal/site"
)

// BackResolver is the single decision point for a generic back intent
// (back key, Escape). It asks the nested gallery machine first and only
// falls back to a top-level home navigation when the gallery has nothing
// left to unwind. History back/forward never comes through here; the
// history cursor has already moved by then and the machine handles it
// directly.
type BackResolver struct {
	machine *Machine
	catalog Catalog
	nested  NestedNavigator
}

// NewBackResolver wires the resolver to the machine and the nested
// controller it arbitrates between.
func NewBackResolver(machine *Machine, catalog Catalog, nested NestedNavigator) *BackResolver {
	return &BackResolver{machine: machine, catalog: catalog, nested: nested}
}

// Resolve handles one back intent. When the active detail item is
// gallery-typed and the nested machine is below its list, the unwind
// stays internal and no location changes; otherwise the machine
// navigates home.
func (r *BackResolver) Resolve() tea.Cmd {
	loc := r.machine.Current()
	if loc.IsHome() {
		return nil
	}
	if k, ok := r.catalog.Kind(loc.ID); ok && k == site.KindGallery && r.nested.IsNested() {
		if r.nested.HandleBack() {
			return nil
		}
	}
	return r.machine.NavigateHome()
}
