package log

import "io"

// CloseAndLogError closes the given closer, logging (at debug level) any failure against the given location.
func CloseAndLogError(closer io.Closer, location string) {
	if closer == nil {
		Debugf("no closer provided when attempting to close: %v", location)
		return
	}
	if err := closer.Close(); err != nil {
		Debugf("failed to close %v: %v", location, err)
	}
}
