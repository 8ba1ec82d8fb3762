// Package tzregistry looks up a compiled ZoneInfo by name or by its
// 32-bit name hash. It is glue around tzprocessor's own ZoneInfo type,
// not part of the processor's own invariants: nothing in tzprocessor
// imports this package.
package tzregistry

import (
	"fmt"
	"sort"

	"github.com/gopherzone/tzcore/tzprocessor"
)

// Registry is a name/hash index over a fixed set of compiled zones,
// grounded on the reference library's own zone_registrar's binary search.
// New always sorts its copy by ZoneID, so lookups never fall back to a
// linear scan.
type Registry struct {
	entries []*tzprocessor.ZoneInfo
}

// New builds a Registry over zones, sorting a private copy by ZoneID
// (populated by tzcompile) so lookups can binary-search it.
func New(zones []*tzprocessor.ZoneInfo) *Registry {
	entries := make([]*tzprocessor.ZoneInfo, len(zones))
	copy(entries, zones)
	sort.Slice(entries, func(i, j int) bool { return entries[i].ZoneID < entries[j].ZoneID })
	return &Registry{entries: entries}
}

// FindByID binary-searches the ZoneID index, returning nil if no zone
// carries that hash.
func (r *Registry) FindByID(zoneID uint32) *tzprocessor.ZoneInfo {
	i := sort.Search(len(r.entries), func(i int) bool { return r.entries[i].ZoneID >= zoneID })
	if i < len(r.entries) && r.entries[i].ZoneID == zoneID {
		return r.entries[i]
	}
	return nil
}

// FindByName hashes name with DJB2, looks it up by ZoneID, then verifies
// the match's own Name against name to rule out a hash collision — the
// same two-step the reference registrar's atc_registrar_find_by_name
// performs.
func (r *Registry) FindByName(name string) *tzprocessor.ZoneInfo {
	z := r.FindByID(DJB2(name))
	if z == nil || z.Name != name {
		return nil
	}
	return z
}

// Len reports how many zones the registry holds.
func (r *Registry) Len() int { return len(r.entries) }

// Lookup is FindByName, returning an error instead of nil so callers in
// cmd/ don't need a separate nil check.
func (r *Registry) Lookup(name string) (*tzprocessor.ZoneInfo, error) {
	z := r.FindByName(name)
	if z == nil {
		return nil, fmt.Errorf("tzregistry: zone %q not found", name)
	}
	return z, nil
}
