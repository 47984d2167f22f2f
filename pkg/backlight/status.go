// Package backlight reads and writes the brightness of a single sysfs
// backlight device, e.g. /sys/class/backlight/amdgpu_bl0.
package backlight

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	ActualBrightnessFile = "actual_brightness"
	BrightnessFile       = "brightness"
	MaxBrightnessFile    = "max_brightness"
)

var readingFiles = [...]string{ActualBrightnessFile, BrightnessFile, MaxBrightnessFile}

// ReadingFiles returns the files loaded for a device, in load order.
func ReadingFiles() []string {
	return slices.Clone(readingFiles[:])
}

// IsReadingFile reports whether name is one of the files Load reads.
func IsReadingFile(name string) bool {
	return slices.Contains(readingFiles[:], name)
}

type Status struct {
	// Brightness as reported by the hardware. May differ from Brightness.
	ActualBrightness uint16
	// Brightness stored in the driver, between 0 and MaxBrightness.
	Brightness uint16
	// Upper bound for Brightness.
	MaxBrightness uint16

	path string
	fs   afero.Fs
}

// Load reads the three brightness readings of the device at path.
func Load(fsys afero.Fs, path string) (*Status, error) {
	info, err := fsys.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, &DevicePathError{Path: path}
	}

	actual, err := readU16(fsys, filepath.Join(path, ActualBrightnessFile))
	if err != nil {
		return nil, err
	}
	brightness, err := readU16(fsys, filepath.Join(path, BrightnessFile))
	if err != nil {
		return nil, err
	}
	maxBrightness, err := readU16(fsys, filepath.Join(path, MaxBrightnessFile))
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("path", path).
		Uint16("actual_brightness", actual).
		Uint16("brightness", brightness).
		Uint16("max_brightness", maxBrightness).
		Msg("loaded backlight status")

	return &Status{
		ActualBrightness: actual,
		Brightness:       brightness,
		MaxBrightness:    maxBrightness,
		path:             path,
		fs:               fsys,
	}, nil
}

func readU16(fsys afero.Fs, file string) (uint16, error) {
	info, err := fsys.Stat(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, &ReadingFileError{Path: file}
		}
		return 0, &IOError{Op: "reading", Path: file, Err: err}
	}
	if !info.Mode().IsRegular() {
		return 0, &ReadingFileError{Path: file}
	}

	data, err := afero.ReadFile(fsys, file)
	if err != nil {
		return 0, &IOError{Op: "reading", Path: file, Err: err}
	}

	content := string(data)
	v, err := parseU16(content)
	if err != nil {
		return 0, &ParseError{Kind: ErrMalformedReading, Path: file, Input: content, Err: err}
	}
	return v, nil
}

func parseU16(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

func (s *Status) Path() string {
	return s.path
}

// SetBrightness validates input against MaxBrightness and updates
// Brightness in memory. Nothing is written until Save.
func (s *Status) SetBrightness(input string) error {
	v, err := parseU16(input)
	if err != nil {
		return &ParseError{Kind: ErrMalformedInput, Input: input, Err: err}
	}
	if v > s.MaxBrightness {
		return &RangeError{Requested: v, Max: s.MaxBrightness}
	}

	log.Debug().Str("path", s.path).Uint16("from", s.Brightness).Uint16("to", v).Msg("brightness set")
	s.Brightness = v
	return nil
}

// Save overwrites the device's brightness file with Brightness.
func (s *Status) Save() error {
	file := filepath.Join(s.path, BrightnessFile)
	data := []byte(strconv.FormatUint(uint64(s.Brightness), 10))

	if err := afero.WriteFile(s.fs, file, data, 0644); err != nil {
		return &IOError{Op: "writing", Path: file, Err: err}
	}

	log.Debug().Str("path", file).Uint16("brightness", s.Brightness).Msg("brightness saved")
	return nil
}

// Level returns Brightness as a percentage of MaxBrightness.
func (s *Status) Level() int {
	if s.MaxBrightness == 0 {
		return 0
	}
	percent := int(float64(s.Brightness) / float64(s.MaxBrightness) * 100.0)
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	return percent
}

func (s *Status) String() string {
	return fmt.Sprintf("Sysfs path: %s\nActual brightness: %d\nBrightness: %d\nMax brightness: %d",
		s.path, s.ActualBrightness, s.Brightness, s.MaxBrightness)
}
