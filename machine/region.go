package machine

import "fmt"

// RegionMapping is a permanent virtual→target mapping established once at
// machine build (§3). The set of all RegionMappings for a profile is the
// "base mapping" and must cover [0, profile_size) exactly once (§3
// invariant, §8 property 1).
type RegionMapping struct {
	Name         string
	Start        Addr
	Size         Addr
	Target       BusTarget
	PhysicalBase Addr
	Perms        PagePerms
	Context      MemoryContext
	Tag          RegionTag
}

func (r RegionMapping) End() Addr { return r.Start + r.Size }

func (r RegionMapping) contains(a Addr) bool { return a >= r.Start && a < r.End() }

// RegionTable is the static, page-indexed base mapping for a profile's
// address space. Lookups are O(1): At indexes straight into a
// per-page slice built once at construction.
type RegionTable struct {
	size    Addr
	regions []RegionMapping
	byPage  []*RegionMapping // indexed by page number, O(1) resolution
}

// NewRegionTable validates and builds the base region table for an address
// space of size bytes. regions must be page-aligned, non-overlapping, and
// must together cover every address in [0, size) exactly once (§3, §8
// property 1).
func NewRegionTable(size Addr, regions []RegionMapping) (*RegionTable, error) {
	if !size.Aligned() {
		return nil, fmt.Errorf("%w: address space size %s", ErrUnalignedRegion, size)
	}

	pageCount := int(size / PageSize)
	byPage := make([]*RegionMapping, pageCount)

	sorted := make([]RegionMapping, len(regions))
	copy(sorted, regions)
	// simple insertion sort by Start; region counts are small (tens, not
	// thousands) so this never shows up in a profile.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Start < sorted[j-1].Start; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	var cursor Addr
	for i := range sorted {
		r := &sorted[i]
		if !r.Start.Aligned() || !r.Size.Aligned() {
			return nil, fmt.Errorf("%w: region %q (start=%s size=%s)", ErrUnalignedRegion, r.Name, r.Start, r.Size)
		}
		if r.Start != cursor {
			if r.Start < cursor {
				return nil, fmt.Errorf("%w: region %q starts at %s, overlapping the previous region", ErrOverlappingRegion, r.Name, r.Start)
			}
			return nil, fmt.Errorf("%w: gap before region %q starting at %s (expected %s)", ErrRegionGap, r.Name, r.Start, cursor)
		}
		if r.Target == nil {
			return nil, fmt.Errorf("%w: region %q has no target", ErrMissingPhysical, r.Name)
		}

		startPage := int(r.Start / PageSize)
		endPage := int(r.End() / PageSize)
		for p := startPage; p < endPage; p++ {
			byPage[p] = r
		}

		cursor = r.End()
	}
	if cursor != size {
		return nil, fmt.Errorf("%w: regions cover up to %s, expected %s", ErrRegionGap, cursor, size)
	}

	return &RegionTable{size: size, regions: sorted, byPage: byPage}, nil
}

// Size returns the address space size the table was built for.
func (t *RegionTable) Size() Addr { return t.size }

// Regions returns the base regions in ascending address order. Callers
// must not mutate the returned slice.
func (t *RegionTable) Regions() []RegionMapping { return t.regions }

// At returns the base region mapping covering address a. Panics if a is
// outside the table's address space — callers are expected to mask
// addresses to the CPU's 16-bit space before calling, so this should never
// trip in practice; it exists to surface a profile/addressing bug loudly
// rather than silently returning a zero-value mapping.
func (t *RegionTable) At(a Addr) *RegionMapping {
	page := int(a / PageSize)
	if page < 0 || page >= len(t.byPage) {
		panic(fmt.Sprintf("machine: address %s outside the %s address space", a, t.size))
	}
	r := t.byPage[page]
	if r == nil {
		panic(fmt.Sprintf("machine: address %s has no base region (incomplete coverage slipped past NewRegionTable)", a))
	}
	return r
}
