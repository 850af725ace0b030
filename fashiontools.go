// Package fashiontools is a small collection of helpers around raw bytes.
//
// The heavy lifting lives in the bytewindow subpackage, a bounds checked
// cursor over a borrowed byte range. This package adds the conversions most
// callers actually want, like pulling a big endian int32 out of the middle of
// a slice, and named memory mapped windows that live under a configurable
// temporary directory.
//
// A small dump utility for files of fixed width values lives under
// `cmd/windump`.
package fashiontools

import "go.uber.org/zap"

// Version is the last tagged version of the package
const Version = "1.0.0"

// init maintains a central location of all things that happen when the package is initialized
// instead of everything being scattered in multiple source files
func init() {
	initLogging()

	if err := initConfig(); err != nil {
		logger.Named("config").Warn("error initializing config, falling back to defaults",
			zap.String("path", confPath),
			zap.Error(err),
		)
	}
}
