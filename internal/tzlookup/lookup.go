// Package tzlookup answers "which time zone is this" questions from a UTC
// offset, a DST flag and/or a serving-network country, against a static zone
// table.
package tzlookup

import "time"

const hourMillis = 60 * 60 * 1000

// Quality grades how safe it is to apply a country's representative zone
// without an offset to corroborate it.
type Quality int

const (
	// QualitySingleZone means the country has exactly one zone.
	QualitySingleZone Quality = iota
	// QualityDefaultBoosted means the country has several zones but they
	// all agree on the offset at the queried instant.
	QualityDefaultBoosted
	// QualityDefaultNotBoosted means a default exists but the country's
	// zones disagree at the queried instant.
	QualityDefaultNotBoosted
	// QualityMultiple means there is no usable default at all.
	QualityMultiple
)

func (q Quality) String() string {
	switch q {
	case QualitySingleZone:
		return "single"
	case QualityDefaultBoosted:
		return "default-boosted"
	case QualityDefaultNotBoosted:
		return "default-not-boosted"
	case QualityMultiple:
		return "multiple"
	}
	return "unknown"
}

// utcCountries are the countries that legitimately sit at UTC+0 outside DST.
// A zero offset from anywhere else is suspect.
var utcCountries = map[string]bool{
	"bf": true, "ci": true, "eh": true, "fo": true, "gb": true,
	"gh": true, "gm": true, "gn": true, "gw": true, "ie": true,
	"is": true, "lr": true, "ma": true, "ml": true, "mr": true,
	"pt": true, "sl": true, "sn": true, "st": true, "tg": true,
}

// CountryUsesUTC reports whether a country legitimately uses UTC+0 as its
// standard time.
func CountryUsesUTC(country string) bool {
	return utcCountries[country]
}

// Lookup runs zone queries against a Table. It is stateless apart from the
// injected collaborators and safe for concurrent use.
type Lookup struct {
	table Table
	// defaultZone reports the platform's currently configured zone, used
	// only to break ties among equally plausible candidates. May be nil.
	defaultZone func() string
}

// New builds a Lookup over table. defaultZone may be nil when no platform
// zone is available.
func New(table Table, defaultZone func() string) Lookup {
	return Lookup{table: table, defaultZone: defaultZone}
}

// ByOffsetDST guesses a zone from the signal alone: total offset, DST flag,
// DST amount (0 when unknown) and the claimed instant. Returns "" when no
// zone matches. Among ties it prefers the platform's current default zone,
// else the first candidate in sorted order, so a device that is already
// configured correctly does not churn.
func (l Lookup) ByOffsetDST(offsetMillis int32, isDST bool, dstMillis int32, at time.Time) string {
	raw := offsetMillis
	if isDST {
		if dstMillis != 0 {
			raw -= dstMillis
		} else {
			// DST claimed without an amount; assume the common one hour.
			raw -= hourMillis
		}
	}

	var candidates []string
	for _, id := range l.table.AllZones() {
		loc, err := time.LoadLocation(id)
		if err != nil {
			continue
		}
		if standardOffsetMillis(loc, at) != raw {
			continue
		}
		if matchesAt(loc, offsetMillis, isDST, at) {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	if l.defaultZone != nil {
		if def := l.defaultZone(); def != "" {
			for _, id := range candidates {
				if id == def {
					return id
				}
			}
		}
	}
	return candidates[0]
}

// ByOffsetDSTCountry guesses a zone from the signal constrained to one
// country's zones. Returns "" when no zone of that country matches. This is
// the preferred query whenever a country is known.
func (l Lookup) ByOffsetDSTCountry(offsetMillis int32, isDST bool, at time.Time, country string) string {
	cz, ok := l.table.Country(country)
	if !ok {
		return ""
	}
	for _, id := range cz.Zones {
		loc, err := time.LoadLocation(id)
		if err != nil {
			continue
		}
		if matchesAt(loc, offsetMillis, isDST, at) {
			return id
		}
	}
	return ""
}

// ByCountry returns the country's representative zone and a Quality grade.
// ok is false when the country is absent from the table.
func (l Lookup) ByCountry(country string, at time.Time) (zone string, q Quality, ok bool) {
	cz, found := l.table.Country(country)
	if !found || len(cz.Zones) == 0 {
		return "", QualityMultiple, false
	}
	if len(cz.Zones) == 1 {
		return cz.Zones[0], QualitySingleZone, true
	}

	def := cz.Default
	if def == "" {
		return cz.Zones[0], QualityMultiple, true
	}

	agree := true
	first, haveFirst := int32(0), false
	for _, id := range cz.Zones {
		loc, err := time.LoadLocation(id)
		if err != nil {
			continue
		}
		off := totalOffsetMillis(loc, at)
		if !haveFirst {
			first, haveFirst = off, true
			continue
		}
		if off != first {
			agree = false
			break
		}
	}
	if agree && haveFirst {
		return def, QualityDefaultBoosted, true
	}
	return def, QualityDefaultNotBoosted, true
}

// matchesAt reports whether loc has exactly the signal's total offset and
// DST status at the given instant.
func matchesAt(loc *time.Location, offsetMillis int32, isDST bool, at time.Time) bool {
	local := at.In(loc)
	return totalOffsetMillis(loc, at) == offsetMillis && local.IsDST() == isDST
}

func totalOffsetMillis(loc *time.Location, at time.Time) int32 {
	_, sec := at.In(loc).Zone()
	return int32(sec) * 1000
}

// standardOffsetMillis derives loc's non-DST offset for the instant's year by
// sampling January and July and taking the smaller offset; DST never lowers
// the offset, and the two samples cover both hemispheres.
func standardOffsetMillis(loc *time.Location, at time.Time) int32 {
	year := at.UTC().Year()
	jan := totalOffsetMillis(loc, time.Date(year, time.January, 1, 12, 0, 0, 0, time.UTC))
	jul := totalOffsetMillis(loc, time.Date(year, time.July, 1, 12, 0, 0, 0, time.UTC))
	if jan < jul {
		return jan
	}
	return jul
}
