package dating

import (
	"time"

	"github.com/curtisnewbie/dating/catalog"
	"github.com/curtisnewbie/dating/zone"
)

// Collaborators consulted on every conversion.
type Env struct {
	Catalog catalog.Catalog  // defaults to catalog.Ambient()
	Zone    zone.Source      // defaults to zone.Ambient()
	Now     func() time.Time // defaults to time.Now, used to anchor time-only values to today
}

type EnvOption func(e *Env)

func WithCatalog(c catalog.Catalog) EnvOption {
	return func(e *Env) {
		e.Catalog = c
	}
}

func WithZone(z zone.Source) EnvOption {
	return func(e *Env) {
		e.Zone = z
	}
}

func WithClock(now func() time.Time) EnvOption {
	return func(e *Env) {
		e.Now = now
	}
}

func NewEnv(opts ...EnvOption) Env {
	var e Env
	for _, op := range opts {
		op(&e)
	}
	if e.Catalog == nil {
		e.Catalog = catalog.Ambient()
	}
	if e.Zone == nil {
		e.Zone = zone.Ambient()
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	return e
}

func (e Env) location() *time.Location {
	if loc := e.Zone.Location(); loc != nil {
		return loc
	}
	return time.UTC
}
