package fashiontools

import (
	"os"
	"path"
	"strings"

	"github.com/bitfashion/fashiontools/bytewindow"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func windowFileLocation(name string) (string, error) {
	// a name must be a single path element that is not the directory itself or its parent
	if name == "" || name == "." || name == ".." || path.Base(name) != name ||
		strings.ContainsRune(name, os.PathSeparator) {
		return "", errors.Errorf("invalid window name %q", name)
	}

	return path.Join(windowDir(), name), nil
}

// CreateWindow creates a named memory mapped window of size bytes, replacing
// any existing window with the same name
func CreateWindow(name string, size int) (*bytewindow.MappedWindow, error) {
	loc, err := windowFileLocation(name)
	if err != nil {
		return nil, err
	}

	w, err := bytewindow.CreateMapped(loc, size)
	if err != nil {
		return nil, err
	}

	logger.Named("windows").Info("created mapped window",
		zap.String("location", loc),
		zap.Int("size", size),
	)

	return w, nil
}

// OpenWindow maps an existing named window for reading and writing
func OpenWindow(name string) (*bytewindow.MappedWindow, error) {
	loc, err := windowFileLocation(name)
	if err != nil {
		return nil, err
	}

	w, err := bytewindow.OpenMapped(loc, true)
	if err != nil {
		return nil, err
	}

	logger.Named("windows").Info("opened mapped window",
		zap.String("location", loc),
		zap.Int("size", w.Size()),
	)

	return w, nil
}

// CloseWindow closes a window created by CreateWindow or OpenWindow,
// also deleting its file if remove is set
func CloseWindow(w *bytewindow.MappedWindow, remove bool) error {
	if err := w.Close(remove); err != nil {
		return errors.Wrapf(err, "closing window at %v", w.Location())
	}

	logger.Named("windows").Info("closed mapped window",
		zap.String("location", w.Location()),
		zap.Bool("removed", remove),
	)

	return nil
}
