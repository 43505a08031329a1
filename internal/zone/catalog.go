package zone

// Local is the sentinel identifier for the host's current time zone.
const Local = "local"

// UTC is the identifier for Coordinated Universal Time.
const UTC = "UTC"

// Entry is one selectable zone.
type Entry struct {
	ID   string
	Name string
}

var catalog = []Entry{
	{ID: Local, Name: "Local Time"},
	{ID: UTC, Name: "UTC"},
	{ID: "America/New_York", Name: "New York"},
	{ID: "America/Chicago", Name: "Chicago"},
	{ID: "America/Denver", Name: "Denver"},
	{ID: "America/Los_Angeles", Name: "Los Angeles"},
	{ID: "Europe/London", Name: "London"},
	{ID: "Europe/Paris", Name: "Paris"},
	{ID: "Asia/Tokyo", Name: "Tokyo"},
	{ID: "Australia/Sydney", Name: "Sydney"},
}

// Catalog returns a copy of the supported zones in display order.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry for id.
func Lookup(id string) (Entry, bool) {
	for _, e := range catalog {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Supported reports whether id is in the catalog.
func Supported(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// DisplayName returns the catalog name for id, or id itself when unknown.
func DisplayName(id string) string {
	if e, ok := Lookup(id); ok {
		return e.Name
	}
	return id
}
