package lint

import (
	"maps"
	"slices"

	"github.com/erraggy/gwlint/config"
	"github.com/erraggy/gwlint/internal/issues"
	"github.com/erraggy/gwlint/internal/naming"
)

// Rename describes one identifier that does not conform to its category's style.
// In autofix mode it is a rename that was applied; in report mode it is the
// rename that would fix the violation.
type Rename struct {
	// Category is the naming domain of the identifier
	Category Category
	// Owner is the enclosing type (fields) or enum (variants); empty otherwise
	Owner string
	// From is the identifier as found
	From string
	// To is the identifier rendered in the category's style
	To string
}

// Path returns the dotted location of the original identifier.
func (r Rename) Path() string {
	switch r.Category {
	case CategoryField:
		return issues.FormatPath("types", r.Owner, "fields", r.From)
	case CategoryType:
		return issues.FormatPath("types", r.From)
	case CategoryEnum:
		return issues.FormatPath("enums", r.From)
	case CategoryEnumValue:
		return issues.FormatPath("enums", r.Owner, "variants", r.From)
	default:
		return r.From
	}
}

// rule scans and rewrites one naming domain. scan lists every non-conforming
// identifier without touching cfg, exists reports whether a name is taken in
// an owner's namespace, and move performs a single rename.
type rule struct {
	category Category
	scan     func(cfg *config.Config, style naming.Style) []Rename
	exists   func(cfg *config.Config, owner, name string) bool
	move     func(cfg *config.Config, r Rename)
}

// rules are run in this order: field names are linted while type names are
// still the ones the operator wrote.
var rules = []rule{fieldRule, typeRule, enumRule, enumValueRule}

// plan returns a Rename for name when it does not conform to style. Names
// with no word characters have no conforming spelling and are left alone.
func plan(c Category, owner, name string, style naming.Style) (Rename, bool) {
	target := naming.Convert(name, style)
	if target == "" || target == name {
		return Rename{}, false
	}
	return Rename{Category: c, Owner: owner, From: name, To: target}, true
}

var fieldRule = rule{
	category: CategoryField,
	scan: func(cfg *config.Config, style naming.Style) []Rename {
		var out []Rename
		for _, typeName := range slices.Sorted(maps.Keys(cfg.Types)) {
			t := cfg.Types[typeName]
			if t == nil {
				continue
			}
			for _, fieldName := range slices.Sorted(maps.Keys(t.Fields)) {
				if r, ok := plan(CategoryField, typeName, fieldName, style); ok {
					out = append(out, r)
				}
			}
		}
		return out
	},
	exists: func(cfg *config.Config, owner, name string) bool {
		_, ok := cfg.Types[owner].Fields[name]
		return ok
	},
	move: func(cfg *config.Config, r Rename) {
		fields := cfg.Types[r.Owner].Fields
		fields[r.To] = fields[r.From]
		delete(fields, r.From)
	},
}

var typeRule = rule{
	category: CategoryType,
	scan: func(cfg *config.Config, style naming.Style) []Rename {
		var out []Rename
		for _, name := range slices.Sorted(maps.Keys(cfg.Types)) {
			if r, ok := plan(CategoryType, "", name, style); ok {
				out = append(out, r)
			}
		}
		return out
	},
	exists: func(cfg *config.Config, _, name string) bool {
		_, ok := cfg.Types[name]
		return ok
	},
	move: func(cfg *config.Config, r Rename) {
		cfg.Types[r.To] = cfg.Types[r.From]
		delete(cfg.Types, r.From)
	},
}

var enumRule = rule{
	category: CategoryEnum,
	scan: func(cfg *config.Config, style naming.Style) []Rename {
		var out []Rename
		for _, name := range slices.Sorted(maps.Keys(cfg.Enums)) {
			if r, ok := plan(CategoryEnum, "", name, style); ok {
				out = append(out, r)
			}
		}
		return out
	},
	exists: func(cfg *config.Config, _, name string) bool {
		_, ok := cfg.Enums[name]
		return ok
	},
	move: func(cfg *config.Config, r Rename) {
		cfg.Enums[r.To] = cfg.Enums[r.From]
		delete(cfg.Enums, r.From)
	},
}

var enumValueRule = rule{
	category: CategoryEnumValue,
	scan: func(cfg *config.Config, style naming.Style) []Rename {
		var out []Rename
		for _, enumName := range slices.Sorted(maps.Keys(cfg.Enums)) {
			e := cfg.Enums[enumName]
			if e == nil {
				continue
			}
			for _, v := range e.Variants {
				if r, ok := plan(CategoryEnumValue, enumName, v.Name, style); ok {
					out = append(out, r)
				}
			}
		}
		return out
	},
	exists: func(cfg *config.Config, owner, name string) bool {
		return cfg.Enums[owner].HasVariant(name)
	},
	move: func(cfg *config.Config, r Rename) {
		e := cfg.Enums[r.Owner]
		i := slices.IndexFunc(e.Variants, func(v config.Variant) bool { return v.Name == r.From })
		if i < 0 {
			return
		}
		e.Variants[i].Name = r.To
		e.SortVariants()
	},
}
