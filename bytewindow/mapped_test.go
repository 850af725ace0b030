package bytewindow

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

func TestMappedWindow(t *testing.T) {
	dir, err := ioutil.TempDir("", "bytewindow")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	loc := filepath.Join(dir, "nested", "mapped.tmp")

	w, err := CreateMapped(loc, 10)
	if err != nil {
		t.Fatal("Cannot proceed with test as create window failed:", err)
	}

	if _, err = os.Stat(loc); err != nil {
		t.Fatalf("No File created at %v despite the Window being initialized", loc)
	}

	if w.Len() != 10 || w.Size() != 10 || w.Location() != loc {
		t.Errorf("unexpected mapping %v of %d bytes (len %d)", w.Location(), w.Size(), w.Len())
	}

	w.MustSeek(5, SeekSet)
	if err = w.WriteUint32(300); err != nil {
		t.Fatal("Cannot Write to MappedWindow:", err)
	}

	if err = w.Flush(); err != nil {
		t.Error(err)
	}

	data, err := ioutil.ReadFile(loc)
	if err != nil {
		t.Fatal("Cannot read data from memory mapped file")
	}

	if data[7] != 0x01 || data[8] != 0x2C {
		t.Errorf("Data Written in window not getting reflected in file: %v", data)
	}

	if err = w.Close(false); err != nil {
		t.Fatal(err)
	}

	r, err := OpenMapped(loc, false)
	if err != nil {
		t.Fatal(err)
	}

	r.MustSeek(-5, SeekEnd)
	v, err := r.ReadInt32()
	if err != nil || v != 300 {
		t.Errorf("expected to read back 300, got %d (%v)", v, err)
	}

	if err = r.Close(true); err != nil {
		t.Error(err)
	}

	if _, err := os.Stat(loc); err == nil {
		t.Error("Memory Mapped File not getting deleted on Close")
	}
}

func TestMappedWindowInvalid(t *testing.T) {
	dir, err := ioutil.TempDir("", "bytewindow")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	if _, err = CreateMapped(filepath.Join(dir, "zero"), 0); err == nil {
		t.Error("expected error mapping zero bytes")
	}

	empty := filepath.Join(dir, "empty")
	if err = ioutil.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err = OpenMapped(empty, false); err == nil {
		t.Error("expected error mapping an empty file")
	}

	if _, err = OpenMapped(filepath.Join(dir, "missing"), false); err == nil {
		t.Error("expected error mapping a missing file")
	}
}

func TestCreateMappedCleansUpOnMapFailure(t *testing.T) {
	dir, err := ioutil.TempDir("", "bytewindow")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	failure := errors.New("no mapping for you")
	mapRegion = func(*os.File, int, int, int, int64) (mmap.MMap, error) {
		return nil, failure
	}
	defer func() { mapRegion = mmap.MapRegion }()

	loc := filepath.Join(dir, "unmapped.tmp")
	if _, err = CreateMapped(loc, 10); errors.Cause(err) != failure {
		t.Errorf("expected the mapping failure to be returned, got %v", err)
	}

	if _, err = os.Stat(loc); !os.IsNotExist(err) {
		t.Errorf("expected %v to be removed after a failed mapping, stat gave %v", loc, err)
	}
}
