package fashiontools

import (
	"bufio"
	"io"
	"os"
	"path"
	"regexp"

	"github.com/pkg/errors"
)

// rootPath stores path to the installation root
var rootPath string

// confPath stores path to fashiontools.conf
var confPath string

// config stores the configuration read from confPath
var config map[string]string

// pat matches a valid key-value line
var pat = regexp.MustCompile("^([A-Z0-9_]+)=(.*)$")

// initConfig initializes the config constants
func initConfig() error {
	var ok bool

	rootPath, ok = os.LookupEnv("FASHIONTOOLS_DIR")
	if !ok {
		rootPath = "/"
	}

	confPath, ok = os.LookupEnv("FASHIONTOOLS_CONF")
	if !ok {
		confPath = path.Join(rootPath, "etc", "fashiontools.conf")
	}

	f, err := os.Open(confPath)
	if err != nil {
		return err
	}
	defer f.Close()

	c, err := parseConfig(f)
	if err != nil {
		return errors.Wrapf(err, "reading %v", confPath)
	}

	// if we reach at this point, it means we have a valid config
	// that can be read, so we can make the map non-nil
	config = c
	return nil
}

// parseConfig reads KEY=value lines, ignoring anything else
func parseConfig(r io.Reader) (map[string]string, error) {
	c := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if matches := pat.FindStringSubmatch(scanner.Text()); matches != nil {
			c[matches[1]] = matches[2]
		}
	}

	return c, scanner.Err()
}

// ConfigValue returns the value for key in the loaded configuration
func ConfigValue(key string) (string, bool) {
	v, ok := config[key]
	return v, ok
}

// windowDir returns the directory named windows are kept in
func windowDir() string {
	loc := os.TempDir()
	if tdir, present := config["FASHIONTOOLS_TMP_DIR"]; present {
		loc = path.Join(rootPath, tdir)
	}

	return path.Join(loc, "windows")
}
