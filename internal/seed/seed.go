// Package seed provides the initial-pattern generators loaded into a grid
// before its first tick.
package seed

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPattern is returned by Lookup for unregistered names.
var ErrUnknownPattern = errors.New("unknown seed pattern")

// Seeder marks live cells on an all-dead buffer of n*n cells and returns it.
type Seeder func(cells []bool, n int) []bool

// Options carries the inputs randomised seeders need.
type Options struct {
	Seed    int64
	Density float64
}

// Factory builds a Seeder for the given options.
type Factory func(opts Options) Seeder

var factories = map[string]Factory{}

// Register adds a seeder factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	factories[name] = f
}

// Lookup returns the seeder registered under name.
func Lookup(name string, opts Options) (Seeder, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return f(opts), nil
}

// Names lists registered patterns in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("glider", func(Options) Seeder { return Glider.Seeder() })
	Register("random-scene", func(Options) Seeder { return RandomScene.Seeder() })
	Register("random", func(o Options) Seeder { return Random(o.Seed, o.Density) })
	Register("noise", func(o Options) Seeder { return Noise(o.Seed, o.Density) })
}
