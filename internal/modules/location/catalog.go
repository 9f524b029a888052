// README: Fixed location catalog and fallback suggestions, loaded once at init.
package location

import "fmt"

func rec(name, country, code string) Record {
	return Record{
		Name:    name,
		Country: country,
		Code:    code,
		Label:   fmt.Sprintf("%s, %s (%s)", name, country, code),
		Value:   code,
	}
}

// Catalog is the static pickup/dropoff list served by Search. Read-only
// after init; declaration order is the ranking order.
var Catalog = []Record{
	rec("Amman", "Jordan", "AMM"),
	rec("Aqaba", "Jordan", "AQJ"),
	rec("Dubai", "UAE", "DXB"),
	rec("Dubai World Central", "UAE", "DWC"),
	rec("Abu Dhabi", "UAE", "AUH"),
	rec("Sharjah", "UAE", "SHJ"),
	rec("Doha", "Qatar", "DOH"),
	rec("Riyadh", "Saudi Arabia", "RUH"),
	rec("Jeddah", "Saudi Arabia", "JED"),
	rec("Dammam", "Saudi Arabia", "DMM"),
	rec("Kuwait City", "Kuwait", "KWI"),
	rec("Manama", "Bahrain", "BAH"),
	rec("Muscat", "Oman", "MCT"),
	rec("Cairo", "Egypt", "CAI"),
	rec("Alexandria", "Egypt", "HBE"),
	rec("Beirut", "Lebanon", "BEY"),
	rec("Istanbul", "Turkey", "IST"),
	rec("Ankara", "Turkey", "ESB"),
	rec("Athens", "Greece", "ATH"),
	rec("Rome", "Italy", "FCO"),
	rec("Milan", "Italy", "MXP"),
	rec("Paris", "France", "CDG"),
	rec("London Heathrow", "United Kingdom", "LHR"),
	rec("Manchester", "United Kingdom", "MAN"),
	rec("Frankfurt", "Germany", "FRA"),
	rec("Munich", "Germany", "MUC"),
	rec("Amsterdam", "Netherlands", "AMS"),
	rec("Madrid", "Spain", "MAD"),
	rec("Barcelona", "Spain", "BCN"),
	rec("Vienna", "Austria", "VIE"),
	rec("Zurich", "Switzerland", "ZRH"),
	rec("New York JFK", "USA", "JFK"),
	rec("Los Angeles", "USA", "LAX"),
}

// defaultSuggestions is served whenever the remote lookup is unavailable,
// the query is too short, or the remote call fails.
var defaultSuggestions = []Suggestion{
	{Value: "DXB", Label: "Dubai International Airport (DXB), Dubai, AE", Type: "AIRPORT"},
	{Value: "AUH", Label: "Abu Dhabi International Airport (AUH), Abu Dhabi, AE", Type: "AIRPORT"},
	{Value: "LHR", Label: "London Heathrow Airport (LHR), London, GB", Type: "AIRPORT"},
	{Value: "JFK", Label: "John F. Kennedy International Airport (JFK), New York, US", Type: "AIRPORT"},
	{Value: "CDG", Label: "Charles de Gaulle Airport (CDG), Paris, FR", Type: "AIRPORT"},
}

// DefaultSuggestions returns a copy of the fallback list.
func DefaultSuggestions() []Suggestion {
	out := make([]Suggestion, len(defaultSuggestions))
	copy(out, defaultSuggestions)
	return out
}
