package config

import "maps"

// DeepCopy returns an independent copy of c.
func (c *Config) DeepCopy() *Config {
	if c == nil {
		return nil
	}
	out := &Config{
		Server:   *c.Server.DeepCopy(),
		Upstream: Upstream{BaseURL: c.Upstream.BaseURL, Extensions: copyExtensions(c.Upstream.Extensions)},
		Schema:   c.Schema,
	}
	if c.Types != nil {
		out.Types = make(map[string]*Type, len(c.Types))
		for name, t := range c.Types {
			out.Types[name] = t.DeepCopy()
		}
	}
	if c.Enums != nil {
		out.Enums = make(map[string]*Enum, len(c.Enums))
		for name, e := range c.Enums {
			out.Enums[name] = e.DeepCopy()
		}
	}
	return out
}

// DeepCopy returns an independent copy of s.
func (s *Server) DeepCopy() *Server {
	if s == nil {
		return nil
	}
	out := *s
	out.Lint = s.Lint.DeepCopy()
	out.Extensions = copyExtensions(s.Extensions)
	return &out
}

// DeepCopy returns an independent copy of l.
func (l *Lint) DeepCopy() *Lint {
	if l == nil {
		return nil
	}
	out := *l
	out.Field = copyTextCase(l.Field)
	out.Type = copyTextCase(l.Type)
	out.Enum = copyTextCase(l.Enum)
	out.EnumValue = copyTextCase(l.EnumValue)
	return &out
}

// DeepCopy returns an independent copy of t.
func (t *Type) DeepCopy() *Type {
	if t == nil {
		return nil
	}
	out := &Type{
		Doc:        t.Doc,
		Extensions: copyExtensions(t.Extensions),
	}
	if t.Implements != nil {
		out.Implements = append([]string(nil), t.Implements...)
	}
	if t.Fields != nil {
		out.Fields = make(map[string]*Field, len(t.Fields))
		for name, f := range t.Fields {
			out.Fields[name] = f.DeepCopy()
		}
	}
	return out
}

// DeepCopy returns an independent copy of f.
func (f *Field) DeepCopy() *Field {
	if f == nil {
		return nil
	}
	out := *f
	out.Extensions = copyExtensions(f.Extensions)
	if f.Args != nil {
		out.Args = make(map[string]*Field, len(f.Args))
		for name, a := range f.Args {
			out.Args[name] = a.DeepCopy()
		}
	}
	return &out
}

// DeepCopy returns an independent copy of e.
func (e *Enum) DeepCopy() *Enum {
	if e == nil {
		return nil
	}
	out := &Enum{Doc: e.Doc}
	if e.Variants != nil {
		out.Variants = make([]Variant, len(e.Variants))
		for i, v := range e.Variants {
			out.Variants[i] = v.DeepCopy()
		}
	}
	return out
}

// DeepCopy returns an independent copy of v.
func (v Variant) DeepCopy() Variant {
	out := Variant{Name: v.Name}
	if v.Alias != nil {
		out.Alias = append([]string(nil), v.Alias...)
	}
	return out
}

func copyTextCase(t *TextCase) *TextCase {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// copyExtensions copies decoded YAML/JSON values, recursing into maps and slices.
func copyExtensions(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := maps.Clone(m)
	for k, v := range out {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return copyExtensions(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}
