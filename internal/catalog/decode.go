package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// The wire structs use pointers so an absent key and a JSON null can be told
// apart from an empty string or array.
type wireCatalog struct {
	Artists *[]wireArtist `json:"artists"`
}

type wireArtist struct {
	Name  *string     `json:"name"`
	Bio   *string     `json:"bio"`
	Image *string     `json:"image"`
	Works *[]wireWork `json:"works"`
}

type wireWork struct {
	Title *string `json:"title"`
	Image *string `json:"image"`
	Info  *string `json:"info"`
}

// Decode parses data as a catalog document. Any missing, null, or mistyped
// field at any depth, and any malformed JSON, returns a *DecodeError and an
// empty Catalog.
func Decode(data []byte) (Catalog, error) {
	var wire wireCatalog
	if err := json.Unmarshal(data, &wire); err != nil {
		return Catalog{}, translateJSONError(err)
	}
	if wire.Artists == nil {
		return Catalog{}, missingField("artists")
	}

	out := Catalog{Artists: make([]Artist, 0, len(*wire.Artists))}
	for i, raw := range *wire.Artists {
		artist, err := raw.artist(fmt.Sprintf("artists[%d]", i))
		if err != nil {
			return Catalog{}, err
		}
		out.Artists = append(out.Artists, artist)
	}
	return out, nil
}

func (w wireArtist) artist(path string) (Artist, error) {
	switch {
	case w.Name == nil:
		return Artist{}, missingField(path + ".name")
	case w.Bio == nil:
		return Artist{}, missingField(path + ".bio")
	case w.Image == nil:
		return Artist{}, missingField(path + ".image")
	case w.Works == nil:
		return Artist{}, missingField(path + ".works")
	}
	works := make([]Work, 0, len(*w.Works))
	for i, raw := range *w.Works {
		work, err := raw.work(fmt.Sprintf("%s.works[%d]", path, i))
		if err != nil {
			return Artist{}, err
		}
		works = append(works, work)
	}
	return Artist{Name: *w.Name, Bio: *w.Bio, Image: *w.Image, Works: works}, nil
}

func (w wireWork) work(path string) (Work, error) {
	switch {
	case w.Title == nil:
		return Work{}, missingField(path + ".title")
	case w.Image == nil:
		return Work{}, missingField(path + ".image")
	case w.Info == nil:
		return Work{}, missingField(path + ".info")
	}
	return Work{Title: *w.Title, Image: *w.Image, Info: *w.Info}, nil
}

func translateJSONError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		path := strings.TrimSpace(typeErr.Field)
		if path == "" {
			path = "$"
		}
		return &DecodeError{
			Path: path,
			Err:  fmt.Errorf("expected %s, got JSON %s", typeErr.Type, typeErr.Value),
		}
	}
	return &DecodeError{Err: err}
}
