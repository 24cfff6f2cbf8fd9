package webpack

import (
	"errors"
	"fmt"
)

var (
	// ErrBundleNotFound is returned for bundles missing from a finished build.
	ErrBundleNotFound = errors.New("bundle not found")
	// ErrBadStats is returned when the stats file has no usable status.
	ErrBadStats = errors.New("the stats file does not contain valid data, make sure webpack-bundle-tracker is enabled and run webpack again")
	// ErrLoaderTimeout is returned when webpack is still compiling after the timeout.
	ErrLoaderTimeout = errors.New("timed out waiting for webpack to compile")
	// ErrUnknownApp is returned for apps without a configured stats file.
	ErrUnknownApp = errors.New("unknown app")
)

// BundleError reports a failed webpack build.
type BundleError struct {
	Err     string
	File    string
	Message string
}

func (e *BundleError) Error() string {
	return fmt.Sprintf("%s in %s\n%s", e.Err, e.File, e.Message)
}
