// README: Location record and remote suggestion shapes.
package location

// Record is one entry of the fixed pickup/dropoff catalog.
// Label and Value are derived at construction: Label is
// "{name}, {country} ({code})" and Value equals the code.
type Record struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Code    string `json:"code"`
	Label   string `json:"label"`
	Value   string `json:"value"`
}

// Suggestion is a remote (or fallback) autocomplete result.
type Suggestion struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Type  string `json:"type"` // "AIRPORT" or "CITY"
}
