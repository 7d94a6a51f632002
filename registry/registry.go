// Package registry maps city names to their trip data files.
//
// A Registry is built once at startup and never mutated, so it can be
// shared freely between the selector and the loader.
package registry

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/theoremus-urban-solutions/bikeshare-stats/config"
)

// Source locates one city's trip file
type Source struct {
	City string
	Path string
}

// UnknownCityError is returned when a city is not registered
type UnknownCityError struct {
	City  string
	Known []string
}

func (e *UnknownCityError) Error() string {
	return fmt.Sprintf("unknown city %q (known: %s)", e.City, strings.Join(e.Known, ", "))
}

// Registry is an ordered, immutable city → source mapping
type Registry struct {
	names   []string
	sources map[string]Source
}

// New builds a registry; relative file names are joined with dir.
func New(dir string, cities []config.CityConfig) *Registry {
	r := &Registry{sources: make(map[string]Source, len(cities))}
	for _, c := range cities {
		name := normalize(c.Name)
		if _, dup := r.sources[name]; dup {
			continue
		}
		path := c.File
		if dir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		r.names = append(r.names, name)
		r.sources[name] = Source{City: name, Path: path}
	}
	return r
}

// Default returns the stock three-city registry rooted at dir.
func Default(dir string) *Registry {
	return New(dir, config.DefaultCities())
}

// FromConfig builds the registry described by an application config.
func FromConfig(cfg config.AppConfig) *Registry {
	return New(cfg.Data.Dir, cfg.Cities)
}

// Lookup resolves a city name, ignoring case and surrounding spaces.
func (r *Registry) Lookup(city string) (Source, error) {
	src, ok := r.sources[normalize(city)]
	if !ok {
		return Source{}, &UnknownCityError{City: city, Known: r.Cities()}
	}
	return src, nil
}

// Cities returns the registered names in menu order.
func (r *Registry) Cities() []string {
	return append([]string(nil), r.names...)
}

// Len is the number of registered cities
func (r *Registry) Len() int { return len(r.names) }

// At returns the city at a 1-based menu position.
func (r *Registry) At(n int) (string, bool) {
	if n < 1 || n > len(r.names) {
		return "", false
	}
	return r.names[n-1], true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
