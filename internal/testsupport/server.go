package testsupport

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// SampleCatalog is a small well-formed catalog document used across tests.
const SampleCatalog = `{
  "artists": [
    {
      "name": "Ada Lovelace",
      "bio": "Mathematician and writer, chiefly known for work on the Analytical Engine.",
      "image": "ada",
      "works": [
        {"title": "Notes", "image": "notes", "info": "Annotated translation, 1843."},
        {"title": "Diagram", "image": "diagram", "info": "Table of operations."}
      ]
    },
    {
      "name": "Ivan Aivazovsky",
      "bio": "Painter of seascapes.",
      "image": "ivan",
      "works": [
        {"title": "The Ninth Wave", "image": "wave", "info": "Oil on canvas, 1850."}
      ]
    },
    {
      "name": "Hokusai",
      "bio": "Ukiyo-e artist of the Edo period.",
      "image": "hokusai",
      "works": []
    }
  ]
}`

// CatalogServer is an httptest server that serves a fixed catalog response
// and counts requests.
type CatalogServer struct {
	*httptest.Server
	requests atomic.Int64
}

// NewCatalogServer serves body with the given status on every request and
// closes the server when the test ends.
func NewCatalogServer(t testing.TB, status int, body string) *CatalogServer {
	t.Helper()

	srv := &CatalogServer{}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// CatalogURL returns the catalog document URL.
func (s *CatalogServer) CatalogURL() string {
	return s.Server.URL + "/catalog.json"
}

// Requests reports how many requests the server has handled.
func (s *CatalogServer) Requests() int64 {
	return s.requests.Load()
}
