// Package operation maps the get and set actions onto the backlight
// load, set and save lifecycle.
package operation

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/hoppxi/shades/pkg/backlight"
)

type Kind int

const (
	// Query loads the device and reports its readings.
	Query Kind = iota
	// Apply loads the device, validates a new brightness and persists it.
	Apply
)

func (k Kind) String() string {
	switch k {
	case Query:
		return "query"
	case Apply:
		return "apply"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

type Operation struct {
	Kind Kind
	Path string
	// Value is the requested brightness as typed by the user. Apply only.
	Value string
}

// NewQuery returns an operation reporting the readings of the device at path.
func NewQuery(path string) Operation {
	return Operation{Kind: Query, Path: path}
}

// NewApply returns an operation setting the device at path to value.
func NewApply(path, value string) Operation {
	return Operation{Kind: Apply, Path: path, Value: value}
}

// Runner executes operations against devices on Fs, writing reports to Out.
type Runner struct {
	Fs        afero.Fs
	Out       io.Writer
	Format    backlight.Format
	Persister Persister
}

// Run loads the device and performs op. Apply writes nothing unless the
// new value is valid.
func (r *Runner) Run(op Operation) error {
	log.Debug().Str("op", op.Kind.String()).Str("path", op.Path).Msg("running operation")

	switch op.Kind {
	case Query:
		status, err := backlight.Load(r.Fs, op.Path)
		if err != nil {
			return err
		}
		return status.Encode(r.Out, r.Format)

	case Apply:
		status, err := backlight.Load(r.Fs, op.Path)
		if err != nil {
			return err
		}
		if err := status.SetBrightness(op.Value); err != nil {
			return err
		}
		persister := r.Persister
		if persister == nil {
			persister = SysfsPersister{}
		}
		return persister.Persist(status)

	default:
		return fmt.Errorf("unsupported operation %s", op.Kind)
	}
}
