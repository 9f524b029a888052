package location

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"hogicar/internal/amadeus"
)

// stubRemote is a test double for the Amadeus lookup.
type stubRemote struct {
	locs  []amadeus.Location
	err   error
	calls int
}

func (s *stubRemote) Locations(_ context.Context, _, _ string) ([]amadeus.Location, error) {
	s.calls++
	return s.locs, s.err
}

func TestSearch_BlankQueryReturnsWholeCatalog(t *testing.T) {
	svc := NewService(nil, nil, nil)

	for _, query := range []string{"", "   "} {
		got := svc.Search(query)
		if !reflect.DeepEqual(got, Catalog) {
			t.Errorf("Search(%q) should return the full catalog in order, got %d records", query, len(got))
		}
	}
}

func TestSearch_PunctuationInsensitiveSubstring(t *testing.T) {
	svc := NewService(nil, nil, nil)

	got := svc.Search("du.")
	if len(got) == 0 {
		t.Fatal("Search(\"du.\") returned no records")
	}
	if got[0].Code != "DXB" || got[0].Name != "Dubai" {
		t.Errorf("first match = %s (%s), want Dubai (DXB)", got[0].Name, got[0].Code)
	}
	for _, r := range got {
		if r.Code != "DXB" && r.Code != "DWC" {
			t.Errorf("unexpected match %s (%s)", r.Name, r.Code)
		}
	}
}

func TestSearch_MatchesAcrossFields(t *testing.T) {
	svc := NewService(nil, nil, nil)

	tests := []struct {
		query    string
		wantCode string
	}{
		{"DXB", "DXB"},           // code
		{"jordan", "AMM"},        // country
		{"heathrow", "LHR"},      // name
		{"zurich, switz", "ZRH"}, // label, punctuation and space stripped
	}
	for _, tt := range tests {
		got := svc.Search(tt.query)
		if len(got) == 0 || got[0].Code != tt.wantCode {
			t.Errorf("Search(%q) first match = %v, want code %s", tt.query, got, tt.wantCode)
		}
	}
}

func TestSearch_CapsResults(t *testing.T) {
	svc := NewService(nil, nil, nil)

	// Every catalog entry contains the letter "a" somewhere in its label.
	got := svc.Search("a")
	if len(got) != 20 {
		t.Errorf("Search(\"a\") returned %d records, want the 20-record cap", len(got))
	}
}

func TestSearch_NoMatch(t *testing.T) {
	svc := NewService(nil, nil, nil)
	if got := svc.Search("xyzzy"); len(got) != 0 {
		t.Errorf("Search(\"xyzzy\") = %v, want empty", got)
	}
}

func TestSearch_Idempotent(t *testing.T) {
	svc := NewService(nil, nil, nil)
	first := svc.Search("du")
	second := svc.Search("du")
	if !reflect.DeepEqual(first, second) {
		t.Error("two identical searches returned different results")
	}
}

func TestSuggest_UnconfiguredServesDefaults(t *testing.T) {
	svc := NewService(nil, nil, nil)

	got := svc.Suggest(context.Background(), "dubai")
	if !reflect.DeepEqual(got, DefaultSuggestions()) {
		t.Errorf("Suggest without remote = %v, want default list", got)
	}
}

func TestSuggest_ShortQuerySkipsRemote(t *testing.T) {
	remote := &stubRemote{}
	svc := NewService(remote, nil, nil)

	got := svc.Suggest(context.Background(), "d")
	if remote.calls != 0 {
		t.Errorf("remote called %d times for a one-character query", remote.calls)
	}
	if !reflect.DeepEqual(got, DefaultSuggestions()) {
		t.Errorf("short query = %v, want default list", got)
	}
}

func TestSuggest_RemoteFaultDegradesToDefaults(t *testing.T) {
	remote := &stubRemote{err: errors.New("upstream timeout")}
	svc := NewService(remote, nil, nil)

	got := svc.Suggest(context.Background(), "dubai")
	if len(got) == 0 {
		t.Fatal("Suggest returned an empty list on remote failure")
	}
	if !reflect.DeepEqual(got, DefaultSuggestions()) {
		t.Errorf("Suggest on remote failure = %v, want default list", got)
	}
}

func TestSuggest_MapsFiltersAndLimits(t *testing.T) {
	locs := []amadeus.Location{
		{IATACode: "", Name: "No Code", CountryCode: "AE", SubType: "CITY"},
		{IATACode: "XXX", Name: "No Country", CountryCode: "", SubType: "AIRPORT"},
	}
	for i := 0; i < 12; i++ {
		locs = append(locs, amadeus.Location{
			IATACode:    fmt.Sprintf("A%02d", i),
			Name:        fmt.Sprintf("Airport %d", i),
			CountryCode: "AE",
			SubType:     "AIRPORT",
		})
	}
	remote := &stubRemote{locs: locs}
	svc := NewService(remote, nil, nil)

	got := svc.Suggest(context.Background(), "airport")
	if len(got) != 10 {
		t.Fatalf("got %d suggestions, want 10", len(got))
	}
	want := Suggestion{Value: "A00", Label: "Airport 0, AE (A00)", Type: "AIRPORT"}
	if got[0] != want {
		t.Errorf("first suggestion = %+v, want %+v", got[0], want)
	}
	for _, s := range got {
		if s.Value == "" || s.Value == "XXX" {
			t.Errorf("suggestion %+v should have been filtered out", s)
		}
	}
}

func TestSuggest_Idempotent(t *testing.T) {
	remote := &stubRemote{locs: []amadeus.Location{
		{IATACode: "DXB", Name: "Dubai International", CountryCode: "AE", SubType: "AIRPORT"},
	}}
	svc := NewService(remote, nil, nil)

	first := svc.Suggest(context.Background(), "dubai")
	second := svc.Suggest(context.Background(), "dubai")
	if !reflect.DeepEqual(first, second) {
		t.Error("two identical suggest calls returned different results")
	}
}
