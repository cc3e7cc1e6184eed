package config

import (
	"runtime"
	"slices"
	"strings"
)

// Config is the pre-compilation representation of a gateway's schema and settings.
type Config struct {
	// Server holds server-level settings, including lint settings
	Server Server `yaml:"server,omitempty" json:"server,omitempty"`
	// Upstream holds settings for outbound calls
	Upstream Upstream `yaml:"upstream,omitempty" json:"upstream,omitempty"`
	// Schema names the root operation types
	Schema RootSchema `yaml:"schema,omitempty" json:"schema,omitempty"`
	// Types maps type names to their definitions
	Types map[string]*Type `yaml:"types,omitempty" json:"types,omitempty"`
	// Enums maps enum names to their definitions
	Enums map[string]*Enum `yaml:"enums,omitempty" json:"enums,omitempty"`
}

// Server holds server-level settings.
type Server struct {
	Hostname string `yaml:"hostname,omitempty" json:"hostname,omitempty"`
	Port     int    `yaml:"port,omitempty" json:"port,omitempty"`
	// Workers is the number of worker threads; zero means one per CPU
	Workers int `yaml:"workers,omitempty" json:"workers,omitempty"`
	// Lint enables naming-convention linting when present
	Lint *Lint `yaml:"lint,omitempty" json:"lint,omitempty"`
	// Extensions holds settings gwlint does not interpret
	Extensions map[string]any `yaml:",inline" json:"-"`
}

// GetWorkers returns the configured worker count, or the number of CPUs when unset.
func (s *Server) GetWorkers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return runtime.NumCPU()
}

// Upstream holds settings for outbound calls.
type Upstream struct {
	BaseURL    string         `yaml:"baseURL,omitempty" json:"baseURL,omitempty"`
	Extensions map[string]any `yaml:",inline" json:"-"`
}

// RootSchema names the root operation types.
type RootSchema struct {
	Query        string `yaml:"query,omitempty" json:"query,omitempty"`
	Mutation     string `yaml:"mutation,omitempty" json:"mutation,omitempty"`
	Subscription string `yaml:"subscription,omitempty" json:"subscription,omitempty"`
}

// Type is a named object type.
type Type struct {
	// Fields maps field names to their definitions
	Fields     map[string]*Field `yaml:"fields,omitempty" json:"fields,omitempty"`
	Doc        string            `yaml:"doc,omitempty" json:"doc,omitempty"`
	Implements []string          `yaml:"implements,omitempty" json:"implements,omitempty"`
	Extensions map[string]any    `yaml:",inline" json:"-"`
}

// Field is a single field of a type. Its contents are opaque to linting and
// survive a rename unchanged.
type Field struct {
	Type     string `yaml:"type,omitempty" json:"type,omitempty"`
	List     bool   `yaml:"list,omitempty" json:"list,omitempty"`
	Required bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Doc      string `yaml:"doc,omitempty" json:"doc,omitempty"`
	// Args maps argument names to their definitions
	Args       map[string]*Field `yaml:"args,omitempty" json:"args,omitempty"`
	Extensions map[string]any    `yaml:",inline" json:"-"`
}

// Enum is a named enumeration. Variants have set semantics: a variant is
// identified by its name and the slice is kept sorted by name.
type Enum struct {
	Variants []Variant `yaml:"variants,omitempty" json:"variants,omitempty"`
	Doc      string    `yaml:"doc,omitempty" json:"doc,omitempty"`
}

// Variant is one value of an enum.
type Variant struct {
	Name  string   `yaml:"name" json:"name"`
	Alias []string `yaml:"alias,omitempty" json:"alias,omitempty"`
}

// Variant returns the variant with the given name.
func (e *Enum) Variant(name string) (Variant, bool) {
	i := slices.IndexFunc(e.Variants, func(v Variant) bool { return v.Name == name })
	if i < 0 {
		return Variant{}, false
	}
	return e.Variants[i], true
}

// HasVariant reports whether a variant with the given name exists.
func (e *Enum) HasVariant(name string) bool {
	_, found := e.Variant(name)
	return found
}

// SortVariants restores name order after variants were added or renamed.
func (e *Enum) SortVariants() {
	slices.SortFunc(e.Variants, func(a, b Variant) int {
		return strings.Compare(a.Name, b.Name)
	})
}
