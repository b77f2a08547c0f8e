package catalog

import (
	"encoding/json"
	"fmt"
)

// Work is a single piece shown on an artist's page.
type Work struct {
	Title string `json:"title"`
	Image string `json:"image"`
	Info  string `json:"info"`
}

// Artist is one catalog entry. Works are kept in server order, which is also
// display order.
type Artist struct {
	Name  string `json:"name"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
	Works []Work `json:"works"`
}

// Catalog is the full ordered artist collection from a single fetch.
type Catalog struct {
	Artists []Artist `json:"artists"`
}

// Len returns the number of artists.
func (c Catalog) Len() int {
	return len(c.Artists)
}

// Clone returns a deep copy so callers can hand the catalog out without
// sharing the backing arrays.
func (c Catalog) Clone() Catalog {
	out := Catalog{Artists: make([]Artist, len(c.Artists))}
	for i, artist := range c.Artists {
		out.Artists[i] = artist.Clone()
	}
	return out
}

// Clone returns a copy of the artist with its own works slice.
func (a Artist) Clone() Artist {
	works := make([]Work, len(a.Works))
	copy(works, a.Works)
	a.Works = works
	return a
}

// Encode renders the catalog in the wire shape accepted by Decode. Nil slices
// are written as empty arrays so the output always decodes again.
func Encode(c Catalog) ([]byte, error) {
	data, err := json.Marshal(c.Clone())
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return data, nil
}
