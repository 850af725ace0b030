package bytewindow

import (
	"os"
	"path/filepath"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// mapRegion is swapped out in tests to simulate mapping failures
var mapRegion = mmap.MapRegion

// MappedWindow is a Window over a memory mapped file
//
// unlike a plain Window it owns a resource and must be closed.
type MappedWindow struct {
	*Window
	m    mmap.MMap
	f    *os.File
	loc  string // location of the memory mapped file
	size int    // size in bytes
}

// CreateMapped creates a file of size zeroed bytes at loc, replacing any
// existing one, and maps it read write
func CreateMapped(loc string, size int) (*MappedWindow, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidRange, "cannot map %d bytes", size)
	}

	if _, err := os.Stat(loc); err == nil {
		if err = os.Remove(loc); err != nil {
			return nil, errors.Wrapf(err, "removing stale %v", loc)
		}
	}

	// ensure destination directory exists
	if err := os.MkdirAll(filepath.Dir(loc), 0700); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(loc, os.O_CREATE|os.O_RDWR|os.O_EXCL, 0644)
	if err != nil {
		return nil, err
	}

	if err = f.Truncate(int64(size)); err != nil {
		f.Close()
		os.Remove(loc)
		return nil, errors.Wrapf(err, "could not initialize %d bytes", size)
	}

	m, err := mapRegion(f, size, mmap.RDWR, 0, 0)
	if err != nil {
		f.Close()
		os.Remove(loc)
		return nil, errors.Wrapf(err, "mapping %v", loc)
	}

	return &MappedWindow{
		Window: New(m),
		m:      m,
		f:      f,
		loc:    loc,
		size:   size,
	}, nil
}

// OpenMapped maps an existing file at loc, read only unless writable is set
//
// writing through a read only mapping faults, so a read only MappedWindow
// should only ever be read from.
func OpenMapped(loc string, writable bool) (*MappedWindow, error) {
	flag, prot := os.O_RDONLY, mmap.RDONLY
	if writable {
		flag, prot = os.O_RDWR, mmap.RDWR
	}

	f, err := os.OpenFile(loc, flag, 0)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	if fi.Size() == 0 {
		f.Close()
		return nil, errors.Wrapf(ErrInvalidRange, "%v is empty", loc)
	}

	m, err := mmap.Map(f, prot, 0)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "mapping %v", loc)
	}

	return &MappedWindow{
		Window: New(m),
		m:      m,
		f:      f,
		loc:    loc,
		size:   len(m),
	}, nil
}

// Location returns the path of the mapped file
func (w *MappedWindow) Location() string { return w.loc }

// Size returns the size of the mapping in bytes
func (w *MappedWindow) Size() int { return w.size }

// Flush writes any changes in the mapping back to the file
func (w *MappedWindow) Flush() error { return w.m.Flush() }

// Close unmaps the window and closes the file, also deleting it if removefile is set
//
// the Window, and any Slice taken from it, must not be used afterwards.
func (w *MappedWindow) Close(removefile bool) error {
	if err := w.m.Unmap(); err != nil {
		return err
	}

	if err := w.f.Close(); err != nil {
		return err
	}

	if removefile {
		if err := os.Remove(w.loc); err != nil {
			return err
		}
	}

	return nil
}
