package store

import (
	"errors"
	"strings"

	"artgallery/internal/catalog"
	"artgallery/internal/fetch"
	"artgallery/internal/textutil"
)

// Apply returns the artists whose names contain text, ignoring case, in
// their original order. An empty text returns all artists.
func Apply(artists []catalog.Artist, text string) []catalog.Artist {
	if text == "" {
		out := make([]catalog.Artist, len(artists))
		copy(out, artists)
		return out
	}
	needle := textutil.Fold(text)
	out := make([]catalog.Artist, 0, len(artists))
	for _, artist := range artists {
		if strings.Contains(textutil.Fold(artist.Name), needle) {
			out = append(out, artist)
		}
	}
	return out
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, catalog.ErrDecode):
		return "decode"
	case errors.Is(err, fetch.ErrNetwork):
		return "network"
	default:
		return "other"
	}
}
