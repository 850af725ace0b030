package fashiontools

import (
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/bitfashion/fashiontools/bytewindow"
)

type testWriter struct {
	messages []string
}

func (w *testWriter) Write(b []byte) (int, error) {
	w.messages = append(w.messages, string(b))
	return len(b), nil
}

func (w *testWriter) contains(s string) bool {
	for _, m := range w.messages {
		if strings.Contains(m, s) {
			return true
		}
	}
	return false
}

func withTempWindowDir(t *testing.T) func() {
	dir, err := ioutil.TempDir("", "fashiontools")
	if err != nil {
		t.Fatal(err)
	}

	oldRoot, oldConfig := rootPath, config
	rootPath = dir
	config = map[string]string{"FASHIONTOOLS_TMP_DIR": "tmp"}

	return func() {
		rootPath, config = oldRoot, oldConfig
		os.RemoveAll(dir)
	}
}

func TestWindowFileLocation(t *testing.T) {
	for _, name := range []string{"", ".", "..", "a/b", "../x", "x/", "/x"} {
		if _, err := windowFileLocation(name); err == nil {
			t.Errorf("expected error for window name %q", name)
		}
	}

	loc, err := windowFileLocation("test")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasSuffix(loc, "/windows/test") {
		t.Errorf("unexpected location %v", loc)
	}
}

func TestCreateAndOpenWindow(t *testing.T) {
	defer withTempWindowDir(t)()

	tw := &testWriter{}
	SetLogWriters(tw)
	EnableLogging(true)
	defer func() {
		EnableLogging(false)
		SetLogWriters(os.Stdout)
	}()

	w, err := CreateWindow("counters", 16)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(w.Location(), rootPath) {
		t.Errorf("expected window under %v, got %v", rootPath, w.Location())
	}

	w.MustSeek(8, bytewindow.SeekSet)
	if err = w.WriteInt64(-300); err != nil {
		t.Fatal(err)
	}

	if err = CloseWindow(w, false); err != nil {
		t.Fatal(err)
	}

	r, err := OpenWindow("counters")
	if err != nil {
		t.Fatal(err)
	}

	v, err := LongOfAt(r.Bytes(), 8)
	if err != nil || v != -300 {
		t.Errorf("expected to read back -300, got %d (%v)", v, err)
	}

	if err = CloseWindow(r, true); err != nil {
		t.Fatal(err)
	}

	if _, err = os.Stat(r.Location()); err == nil {
		t.Error("window file not removed on close")
	}

	for _, msg := range []string{"created mapped window", "opened mapped window", "closed mapped window"} {
		if !tw.contains(msg) {
			t.Errorf("expected a log containing %q", msg)
		}
	}
}

func TestCreateWindowKeepsDirectory(t *testing.T) {
	defer withTempWindowDir(t)()

	if err := os.MkdirAll(windowDir(), 0700); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{".", ".."} {
		if w, err := CreateWindow(name, 8); err == nil {
			w.Close(false)
			t.Errorf("expected CreateWindow(%q) to fail", name)
		}
	}

	fi, err := os.Stat(windowDir())
	if err != nil || !fi.IsDir() {
		t.Fatalf("window directory %v no longer a directory (%v)", windowDir(), err)
	}

	w, err := CreateWindow("next", 8)
	if err != nil {
		t.Fatal(err)
	}

	if err = CloseWindow(w, true); err != nil {
		t.Error(err)
	}
}

func TestOpenMissingWindow(t *testing.T) {
	defer withTempWindowDir(t)()

	if _, err := OpenWindow("missing"); err == nil {
		t.Error("expected error opening a window that was never created")
	}
}
