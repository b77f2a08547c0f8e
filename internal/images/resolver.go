package images

import (
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"artgallery/internal/logging"
)

// Resolver maps an image identifier to an Image.
type Resolver interface {
	Resolve(name string) Image
}

// Placeholder resolves every identifier to an unresolved Image.
type Placeholder struct{}

// Resolve implements Resolver.
func (Placeholder) Resolve(name string) Image {
	return Image{Name: name}
}

var candidateExtensions = []string{"", ".png", ".jpg", ".jpeg"}

// DirResolver looks identifiers up in a single directory. Results are
// memoized for the life of the resolver since views re-render often.
type DirResolver struct {
	dir    string
	logger *slog.Logger

	mu    sync.Mutex
	cache map[string]Image
}

// NewDirResolver returns a resolver rooted at dir.
func NewDirResolver(dir string, logger *slog.Logger) *DirResolver {
	return &DirResolver{
		dir:    dir,
		logger: logging.NewComponentLogger(logger, "images"),
		cache:  make(map[string]Image),
	}
}

// Resolve implements Resolver. The name is tried as-is and with .png, .jpg,
// and .jpeg appended; only the file header is read.
func (r *DirResolver) Resolve(name string) Image {
	r.mu.Lock()
	defer r.mu.Unlock()
	if img, ok := r.cache[name]; ok {
		return img
	}
	img := r.lookup(name)
	r.cache[name] = img
	return img
}

func (r *DirResolver) lookup(name string) Image {
	placeholder := Image{Name: name}
	if !validName(name) || strings.TrimSpace(r.dir) == "" {
		return placeholder
	}
	for _, ext := range candidateExtensions {
		path := filepath.Join(r.dir, name+ext)
		width, height, err := readDimensions(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			logging.WarnWithContext(r.logger, "image header unreadable; showing placeholder", "image_unreadable",
				logging.String("path", path),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "replace the file with a PNG, JPEG, or GIF image"),
				logging.String(logging.FieldImpact, "placeholder shown instead of dimensions"),
			)
			return placeholder
		}
		r.logger.Debug("image resolved",
			logging.String("name", name),
			logging.String("path", path),
			logging.Int("width", width),
			logging.Int("height", height),
		)
		return Image{Name: name, Path: path, Width: width, Height: height, Found: true}
	}
	r.logger.Debug("image not found", logging.String("name", name))
	return placeholder
}

// validName rejects identifiers that would escape the image directory.
func validName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return false
	}
	return true
}

func readDimensions(path string) (int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		return 0, 0, err
	}
	if info.IsDir() {
		return 0, 0, fs.ErrNotExist
	}
	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
