package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"hogicar/internal/http/handlers"
	"hogicar/internal/modules/location"
)

func buildLocationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	// No remote and no cache: Search works on the catalog, Suggest
	// serves the static fallback.
	svc := location.NewService(nil, nil, nil)
	r := gin.New()
	h := handlers.NewLocationHandler(svc)
	r.GET("/api/locations", h.Search)
	r.GET("/api/locations/suggest", h.Suggest)
	return r
}

func TestSearchLocations_NoQuery(t *testing.T) {
	r := buildLocationRouter()

	w := doRequest(r, http.MethodGet, "/api/locations", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []location.Record
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != len(location.Catalog) {
		t.Errorf("got %d records, want the whole catalog (%d)", len(got), len(location.Catalog))
	}
}

func TestSearchLocations_Query(t *testing.T) {
	r := buildLocationRouter()

	for _, path := range []string{
		"/api/locations?query=du.",
		"/api/locations?keyword=du.", // legacy client parameter
	} {
		w := doRequest(r, http.MethodGet, path, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		var got []location.Record
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(got) == 0 || got[0].Code != "DXB" {
			t.Errorf("%s: first match = %v, want Dubai (DXB)", path, got)
		}
	}
}

func TestSuggestLocations_Fallback(t *testing.T) {
	r := buildLocationRouter()

	w := doRequest(r, http.MethodGet, "/api/locations/suggest?query=dubai", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []location.Suggestion
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("got %d suggestions, want the 5 defaults", len(got))
	}
	if got[0].Value != "DXB" {
		t.Errorf("first suggestion = %+v, want DXB", got[0])
	}
}
