package locale

import (
	"time"

	"golang.org/x/text/language"
)

// firstDayByRegion holds the CLDR weekData firstDay entries that differ from
// the world default (Monday).
var firstDayByRegion = map[string]time.Weekday{
	"MV": time.Friday,

	"AE": time.Saturday, "AF": time.Saturday, "BH": time.Saturday,
	"DJ": time.Saturday, "DZ": time.Saturday, "EG": time.Saturday,
	"IQ": time.Saturday, "IR": time.Saturday, "JO": time.Saturday,
	"KW": time.Saturday, "LY": time.Saturday, "OM": time.Saturday,
	"QA": time.Saturday, "SD": time.Saturday, "SY": time.Saturday,

	"AG": time.Sunday, "AS": time.Sunday, "BD": time.Sunday, "BR": time.Sunday,
	"BS": time.Sunday, "BT": time.Sunday, "BW": time.Sunday, "BZ": time.Sunday,
	"CA": time.Sunday, "CN": time.Sunday, "CO": time.Sunday, "DM": time.Sunday,
	"DO": time.Sunday, "ET": time.Sunday, "GT": time.Sunday, "GU": time.Sunday,
	"HK": time.Sunday, "HN": time.Sunday, "ID": time.Sunday, "IL": time.Sunday,
	"IN": time.Sunday, "JM": time.Sunday, "JP": time.Sunday, "KE": time.Sunday,
	"KH": time.Sunday, "KR": time.Sunday, "LA": time.Sunday, "MH": time.Sunday,
	"MM": time.Sunday, "MO": time.Sunday, "MT": time.Sunday, "MX": time.Sunday,
	"MZ": time.Sunday, "NI": time.Sunday, "NP": time.Sunday, "PA": time.Sunday,
	"PE": time.Sunday, "PH": time.Sunday, "PK": time.Sunday, "PR": time.Sunday,
	"PT": time.Sunday, "PY": time.Sunday, "SA": time.Sunday, "SG": time.Sunday,
	"SV": time.Sunday, "TH": time.Sunday, "TT": time.Sunday, "TW": time.Sunday,
	"UM": time.Sunday, "US": time.Sunday, "VE": time.Sunday, "VI": time.Sunday,
	"WS": time.Sunday, "YE": time.Sunday, "ZA": time.Sunday, "ZW": time.Sunday,
}

// fwValues maps the BCP 47 "fw" (first weekday) extension values
var fwValues = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// WeekStart returns the first day of the week for a locale. An explicit
// "-u-fw-" extension wins over the region's CLDR default.
func WeekStart(tag language.Tag) time.Weekday {
	if day, ok := fwValues[tag.TypeForKey("fw")]; ok {
		return day
	}
	if day, ok := firstDayByRegion[Region(tag)]; ok {
		return day
	}
	return time.Monday
}
