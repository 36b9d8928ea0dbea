package tzlookup

import "sort"

// CountryZones is the static zone data for one country: every zone ID in use
// there plus the designated default ("" when no single default is sensible).
type CountryZones struct {
	Default string
	Zones   []string
}

// Table is an immutable country -> zones mapping. It is plain versioned data:
// swapping in a newer IANA snapshot requires no code change, and tests inject
// small fixed tables for determinism.
type Table struct {
	countries map[string]CountryZones
	all       []string
}

// NewTable builds a Table from literal country data. The input map is copied;
// the returned Table is safe for concurrent use.
func NewTable(countries map[string]CountryZones) Table {
	cp := make(map[string]CountryZones, len(countries))
	seen := make(map[string]bool)
	var all []string
	for iso, cz := range countries {
		zones := make([]string, len(cz.Zones))
		copy(zones, cz.Zones)
		cp[iso] = CountryZones{Default: cz.Default, Zones: zones}
		for _, z := range zones {
			if !seen[z] {
				seen[z] = true
				all = append(all, z)
			}
		}
	}
	sort.Strings(all)
	return Table{countries: cp, all: all}
}

// DefaultTable returns the built-in curated IANA subset.
func DefaultTable() Table {
	return NewTable(defaultCountryZones)
}

// Country returns the zone data for an ISO-3166 alpha-2 code.
func (t Table) Country(iso string) (CountryZones, bool) {
	cz, ok := t.countries[iso]
	return cz, ok
}

// AllZones returns every zone ID in the table, sorted. The slice is shared;
// callers must not modify it.
func (t Table) AllZones() []string {
	return t.all
}
