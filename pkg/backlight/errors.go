package backlight

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDevicePath indicates the device path is not a directory
	ErrInvalidDevicePath = errors.New("invalid device path")

	// ErrMissingReadingFile indicates a reading file is absent or not a regular file
	ErrMissingReadingFile = errors.New("missing reading file")

	// ErrMalformedReading indicates a reading file does not hold a valid u16
	ErrMalformedReading = errors.New("malformed reading")

	// ErrMalformedInput indicates the requested brightness is not a valid u16
	ErrMalformedInput = errors.New("malformed input")

	// ErrOutOfRange indicates the requested brightness exceeds max_brightness
	ErrOutOfRange = errors.New("brightness out of range")

	// ErrIO indicates a read or write against the device failed
	ErrIO = errors.New("io failure")
)

// DevicePathError is returned by Load when Path is not a directory.
type DevicePathError struct {
	Path string
}

func (e *DevicePathError) Error() string {
	return fmt.Sprintf("sysfs path: '%s' is not a directory or has invalid permissions", e.Path)
}

func (e *DevicePathError) Unwrap() error { return ErrInvalidDevicePath }

// ReadingFileError is returned by Load when a reading file at Path is
// absent or not a regular file.
type ReadingFileError struct {
	Path string
}

func (e *ReadingFileError) Error() string {
	return fmt.Sprintf("sysfs path: '%s' is not a file or has invalid permissions", e.Path)
}

func (e *ReadingFileError) Unwrap() error { return ErrMissingReadingFile }

// ParseError is returned when text read from a device file, or supplied by
// the user, cannot be parsed as a u16. Kind is ErrMalformedReading or
// ErrMalformedInput; Path is empty for user input.
type ParseError struct {
	Kind  error
	Path  string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("while parsing '%s' from %s as a u16 value: %v", e.Input, e.Path, e.Err)
	}
	return fmt.Sprintf("while parsing '%s' as a u16 value: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{e.Kind, e.Err} }

// RangeError is returned by SetBrightness when Requested exceeds Max.
type RangeError struct {
	Requested uint16
	Max       uint16
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("the requested brightness: '%d' is greater than the maximum value: '%d'", e.Requested, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// IOError is returned when reading or writing Path fails. It unwraps to
// both ErrIO and the underlying error.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("while %s %s, an io error occurred: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }
