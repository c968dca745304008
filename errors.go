package ds1302

import "errors"

var (
	// ErrNotConfigured is returned when an operation runs before Configure
	// has bound the driver to its pins.
	ErrNotConfigured = errors.New("ds1302: not configured")

	// ErrNoResponse is returned when a burst read yields the constant level
	// of an undriven line instead of clock data. The chip never signals its
	// absence; this is the closest the bus gets to a timeout.
	ErrNoResponse = errors.New("ds1302: no response from chip")

	// ErrWriteProtected is returned when the write-protect bit still reads
	// back set after the driver tried to clear it.
	ErrWriteProtected = errors.New("ds1302: registers are write-protected")

	// ErrInvalidTime is returned when a record field does not fit the
	// register it would be written to.
	ErrInvalidTime = errors.New("ds1302: time out of range")
)
