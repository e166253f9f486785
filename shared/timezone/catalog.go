package timezone

import (
	"slices"
)

// Entry is one selectable choice: a display label and its canonical zone id.
type Entry struct {
	Label string `json:"label"`
	Zone  string `json:"zone"`
}

// Region groups entries under a display heading.
type Region struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

var catalog = []Region{
	{
		Name: "Africa",
		Entries: []Entry{
			{Label: "Cairo", Zone: "Africa/Cairo"},
			{Label: "Casablanca", Zone: "Africa/Casablanca"},
			{Label: "Johannesburg", Zone: "Africa/Johannesburg"},
			{Label: "Lagos", Zone: "Africa/Lagos"},
			{Label: "Nairobi", Zone: "Africa/Nairobi"},
		},
	},
	{
		Name: "America",
		Entries: []Entry{
			{Label: "Anchorage", Zone: "America/Anchorage"},
			{Label: "Buenos Aires", Zone: "America/Argentina/Buenos_Aires"},
			{Label: "Chicago", Zone: "America/Chicago"},
			{Label: "Denver", Zone: "America/Denver"},
			{Label: "Halifax", Zone: "America/Halifax"},
			{Label: "Los Angeles", Zone: "America/Los_Angeles"},
			{Label: "Mexico City", Zone: "America/Mexico_City"},
			{Label: "New York", Zone: "America/New_York"},
			{Label: "Phoenix", Zone: "America/Phoenix"},
			{Label: "Santiago", Zone: "America/Santiago"},
			{Label: "Sao Paulo", Zone: "America/Sao_Paulo"},
			{Label: "St. John's", Zone: "America/St_Johns"},
			{Label: "Toronto", Zone: "America/Toronto"},
			{Label: "Vancouver", Zone: "America/Vancouver"},
			{Label: "Washington, D.C.", Zone: "America/New_York"},
		},
	},
	{
		Name: "Asia",
		Entries: []Entry{
			{Label: "Bangkok", Zone: "Asia/Bangkok"},
			{Label: "Beijing", Zone: "Asia/Shanghai"},
			{Label: "Dhaka", Zone: "Asia/Dhaka"},
			{Label: "Dubai", Zone: "Asia/Dubai"},
			{Label: "Ho Chi Minh City", Zone: "Asia/Ho_Chi_Minh"},
			{Label: "Hong Kong", Zone: "Asia/Hong_Kong"},
			{Label: "Jakarta", Zone: "Asia/Jakarta"},
			{Label: "Jerusalem", Zone: "Asia/Jerusalem"},
			{Label: "Karachi", Zone: "Asia/Karachi"},
			{Label: "Kathmandu", Zone: "Asia/Kathmandu"},
			{Label: "Kolkata", Zone: "Asia/Kolkata"},
			{Label: "Manila", Zone: "Asia/Manila"},
			{Label: "Seoul", Zone: "Asia/Seoul"},
			{Label: "Shanghai", Zone: "Asia/Shanghai"},
			{Label: "Singapore", Zone: "Asia/Singapore"},
			{Label: "Taipei", Zone: "Asia/Taipei"},
			{Label: "Tehran", Zone: "Asia/Tehran"},
			{Label: "Tokyo", Zone: "Asia/Tokyo"},
		},
	},
	{
		Name: "Atlantic",
		Entries: []Entry{
			{Label: "Azores", Zone: "Atlantic/Azores"},
			{Label: "Reykjavik", Zone: "Atlantic/Reykjavik"},
		},
	},
	{
		Name: "Australia",
		Entries: []Entry{
			{Label: "Adelaide", Zone: "Australia/Adelaide"},
			{Label: "Brisbane", Zone: "Australia/Brisbane"},
			{Label: "Melbourne", Zone: "Australia/Melbourne"},
			{Label: "Perth", Zone: "Australia/Perth"},
			{Label: "Sydney", Zone: "Australia/Sydney"},
		},
	},
	{
		Name: "Europe",
		Entries: []Entry{
			{Label: "Amsterdam", Zone: "Europe/Amsterdam"},
			{Label: "Athens", Zone: "Europe/Athens"},
			{Label: "Berlin", Zone: "Europe/Berlin"},
			{Label: "Dublin", Zone: "Europe/Dublin"},
			{Label: "Helsinki", Zone: "Europe/Helsinki"},
			{Label: "Istanbul", Zone: "Europe/Istanbul"},
			{Label: "Kyiv", Zone: "Europe/Kyiv"},
			{Label: "Lisbon", Zone: "Europe/Lisbon"},
			{Label: "London", Zone: "Europe/London"},
			{Label: "Madrid", Zone: "Europe/Madrid"},
			{Label: "Moscow", Zone: "Europe/Moscow"},
			{Label: "Paris", Zone: "Europe/Paris"},
			{Label: "Rome", Zone: "Europe/Rome"},
			{Label: "Stockholm", Zone: "Europe/Stockholm"},
			{Label: "Warsaw", Zone: "Europe/Warsaw"},
			{Label: "Zurich", Zone: "Europe/Zurich"},
		},
	},
	{
		Name: "Pacific",
		Entries: []Entry{
			{Label: "Auckland", Zone: "Pacific/Auckland"},
			{Label: "Fiji", Zone: "Pacific/Fiji"},
			{Label: "Honolulu", Zone: "Pacific/Honolulu"},
		},
	},
	{
		Name: "Universal",
		Entries: []Entry{
			{Label: "UTC", Zone: "UTC"},
		},
	},
}

var cataloged = func() map[string]struct{} {
	zones := make(map[string]struct{})
	for _, region := range catalog {
		for _, entry := range region.Entries {
			zones[entry.Zone] = struct{}{}
		}
	}

	return zones
}()

// Catalog returns a copy of the curated choices in declaration order.
func Catalog() []Region {
	regions := make([]Region, len(catalog))
	for i, region := range catalog {
		regions[i] = Region{
			Name:    region.Name,
			Entries: slices.Clone(region.Entries),
		}
	}

	return regions
}

// IsCataloged reports whether zone is offered by the catalog.
func IsCataloged(zone string) bool {
	_, ok := cataloged[zone]

	return ok
}

// Zones lists the distinct canonical zone ids of the catalog, sorted.
func Zones() []string {
	zones := make([]string, 0, len(cataloged))
	for zone := range cataloged {
		zones = append(zones, zone)
	}

	slices.Sort(zones)

	return zones
}

// Labels returns every label mapped to zone, in catalog order.
func Labels(zone string) []string {
	var labels []string

	for _, region := range catalog {
		for _, entry := range region.Entries {
			if entry.Zone == zone {
				labels = append(labels, entry.Label)
			}
		}
	}

	return labels
}
