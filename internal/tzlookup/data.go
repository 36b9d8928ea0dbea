package tzlookup

// defaultCountryZones is a curated subset of the IANA country/zone mapping,
// covering single-zone countries and the common multi-zone ones. Zone lists
// are ordered roughly east to west within each country.
var defaultCountryZones = map[string]CountryZones{
	// Europe
	"gb": {Default: "Europe/London", Zones: []string{"Europe/London"}},
	"ie": {Default: "Europe/Dublin", Zones: []string{"Europe/Dublin"}},
	"is": {Default: "Atlantic/Reykjavik", Zones: []string{"Atlantic/Reykjavik"}},
	"pt": {Default: "Europe/Lisbon", Zones: []string{"Europe/Lisbon", "Atlantic/Madeira", "Atlantic/Azores"}},
	"es": {Default: "Europe/Madrid", Zones: []string{"Europe/Madrid", "Atlantic/Canary"}},
	"fr": {Default: "Europe/Paris", Zones: []string{"Europe/Paris"}},
	"de": {Default: "Europe/Berlin", Zones: []string{"Europe/Berlin"}},
	"nl": {Default: "Europe/Amsterdam", Zones: []string{"Europe/Amsterdam"}},
	"be": {Default: "Europe/Brussels", Zones: []string{"Europe/Brussels"}},
	"ch": {Default: "Europe/Zurich", Zones: []string{"Europe/Zurich"}},
	"at": {Default: "Europe/Vienna", Zones: []string{"Europe/Vienna"}},
	"it": {Default: "Europe/Rome", Zones: []string{"Europe/Rome"}},
	"pl": {Default: "Europe/Warsaw", Zones: []string{"Europe/Warsaw"}},
	"cz": {Default: "Europe/Prague", Zones: []string{"Europe/Prague"}},
	"se": {Default: "Europe/Stockholm", Zones: []string{"Europe/Stockholm"}},
	"no": {Default: "Europe/Oslo", Zones: []string{"Europe/Oslo"}},
	"dk": {Default: "Europe/Copenhagen", Zones: []string{"Europe/Copenhagen"}},
	"fi": {Default: "Europe/Helsinki", Zones: []string{"Europe/Helsinki"}},
	"gr": {Default: "Europe/Athens", Zones: []string{"Europe/Athens"}},
	"tr": {Default: "Europe/Istanbul", Zones: []string{"Europe/Istanbul"}},
	"ua": {Default: "Europe/Kyiv", Zones: []string{"Europe/Kyiv"}},
	"fo": {Default: "Atlantic/Faroe", Zones: []string{"Atlantic/Faroe"}},
	"ru": {Default: "Europe/Moscow", Zones: []string{
		"Asia/Kamchatka", "Asia/Magadan", "Asia/Vladivostok", "Asia/Yakutsk",
		"Asia/Irkutsk", "Asia/Krasnoyarsk", "Asia/Novosibirsk", "Asia/Omsk",
		"Asia/Yekaterinburg", "Europe/Samara", "Europe/Moscow", "Europe/Kaliningrad",
	}},

	// Asia / Middle East
	"jp": {Default: "Asia/Tokyo", Zones: []string{"Asia/Tokyo"}},
	"kr": {Default: "Asia/Seoul", Zones: []string{"Asia/Seoul"}},
	"cn": {Default: "Asia/Shanghai", Zones: []string{"Asia/Shanghai", "Asia/Urumqi"}},
	"tw": {Default: "Asia/Taipei", Zones: []string{"Asia/Taipei"}},
	"hk": {Default: "Asia/Hong_Kong", Zones: []string{"Asia/Hong_Kong"}},
	"sg": {Default: "Asia/Singapore", Zones: []string{"Asia/Singapore"}},
	"my": {Default: "Asia/Kuala_Lumpur", Zones: []string{"Asia/Kuala_Lumpur", "Asia/Kuching"}},
	"th": {Default: "Asia/Bangkok", Zones: []string{"Asia/Bangkok"}},
	"vn": {Default: "Asia/Ho_Chi_Minh", Zones: []string{"Asia/Ho_Chi_Minh"}},
	"ph": {Default: "Asia/Manila", Zones: []string{"Asia/Manila"}},
	"id": {Default: "Asia/Jakarta", Zones: []string{
		"Asia/Jayapura", "Asia/Makassar", "Asia/Pontianak", "Asia/Jakarta",
	}},
	"in": {Default: "Asia/Kolkata", Zones: []string{"Asia/Kolkata"}},
	"bd": {Default: "Asia/Dhaka", Zones: []string{"Asia/Dhaka"}},
	"pk": {Default: "Asia/Karachi", Zones: []string{"Asia/Karachi"}},
	"ir": {Default: "Asia/Tehran", Zones: []string{"Asia/Tehran"}},
	"ae": {Default: "Asia/Dubai", Zones: []string{"Asia/Dubai"}},
	"sa": {Default: "Asia/Riyadh", Zones: []string{"Asia/Riyadh"}},
	"il": {Default: "Asia/Jerusalem", Zones: []string{"Asia/Jerusalem"}},

	// Africa
	"za": {Default: "Africa/Johannesburg", Zones: []string{"Africa/Johannesburg"}},
	"ng": {Default: "Africa/Lagos", Zones: []string{"Africa/Lagos"}},
	"eg": {Default: "Africa/Cairo", Zones: []string{"Africa/Cairo"}},
	"ke": {Default: "Africa/Nairobi", Zones: []string{"Africa/Nairobi"}},
	"ma": {Default: "Africa/Casablanca", Zones: []string{"Africa/Casablanca"}},
	"eh": {Default: "Africa/El_Aaiun", Zones: []string{"Africa/El_Aaiun"}},
	"gh": {Default: "Africa/Accra", Zones: []string{"Africa/Accra"}},
	"sn": {Default: "Africa/Dakar", Zones: []string{"Africa/Dakar"}},
	"ci": {Default: "Africa/Abidjan", Zones: []string{"Africa/Abidjan"}},
	"ml": {Default: "Africa/Bamako", Zones: []string{"Africa/Bamako"}},
	"bf": {Default: "Africa/Ouagadougou", Zones: []string{"Africa/Ouagadougou"}},
	"gm": {Default: "Africa/Banjul", Zones: []string{"Africa/Banjul"}},
	"gn": {Default: "Africa/Conakry", Zones: []string{"Africa/Conakry"}},
	"gw": {Default: "Africa/Bissau", Zones: []string{"Africa/Bissau"}},
	"lr": {Default: "Africa/Monrovia", Zones: []string{"Africa/Monrovia"}},
	"sl": {Default: "Africa/Freetown", Zones: []string{"Africa/Freetown"}},
	"tg": {Default: "Africa/Lome", Zones: []string{"Africa/Lome"}},
	"mr": {Default: "Africa/Nouakchott", Zones: []string{"Africa/Nouakchott"}},
	"st": {Default: "Africa/Sao_Tome", Zones: []string{"Africa/Sao_Tome"}},

	// Americas
	"us": {Default: "America/New_York", Zones: []string{
		"America/New_York", "America/Chicago", "America/Denver", "America/Phoenix",
		"America/Los_Angeles", "America/Anchorage", "Pacific/Honolulu",
	}},
	"ca": {Default: "America/Toronto", Zones: []string{
		"America/St_Johns", "America/Halifax", "America/Toronto",
		"America/Winnipeg", "America/Edmonton", "America/Vancouver",
	}},
	"mx": {Default: "America/Mexico_City", Zones: []string{
		"America/Mexico_City", "America/Chihuahua", "America/Hermosillo", "America/Tijuana",
	}},
	"br": {Default: "America/Sao_Paulo", Zones: []string{
		"America/Noronha", "America/Sao_Paulo", "America/Fortaleza",
		"America/Manaus", "America/Rio_Branco",
	}},
	"ar": {Default: "America/Argentina/Buenos_Aires", Zones: []string{"America/Argentina/Buenos_Aires"}},
	"cl": {Default: "America/Santiago", Zones: []string{"America/Santiago", "Pacific/Easter"}},
	"co": {Default: "America/Bogota", Zones: []string{"America/Bogota"}},
	"pe": {Default: "America/Lima", Zones: []string{"America/Lima"}},

	// Oceania
	"au": {Default: "Australia/Sydney", Zones: []string{
		"Australia/Sydney", "Australia/Melbourne", "Australia/Brisbane",
		"Australia/Hobart", "Australia/Adelaide", "Australia/Darwin", "Australia/Perth",
	}},
	"nz": {Default: "Pacific/Auckland", Zones: []string{"Pacific/Auckland", "Pacific/Chatham"}},
}
