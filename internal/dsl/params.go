package dsl

import "strings"

// Param is a named build parameter. Values may reference other parameters as %name%.
type Param struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// Params is an ordered, name-unique parameter list.
type Params []Param

// Param sets name to value, replacing an existing entry in place.
func (ps *Params) Param(name, value string) {
	for i := range *ps {
		if (*ps)[i].Name == name {
			(*ps)[i].Value = value
			return
		}
	}
	*ps = append(*ps, Param{Name: name, Value: value})
}

// Get returns the value of name.
func (ps Params) Get(name string) (string, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Expand substitutes %name% references in value, consulting ps first and then
// fallback (which may be nil). Unresolved references are left verbatim and "%%"
// yields a literal '%'. Substituted values are not expanded again.
func (ps Params) Expand(value string, fallback func(name string) (string, bool)) string {
	if !strings.Contains(value, "%") {
		return value
	}
	var b strings.Builder
	rest := value
	for {
		start := strings.IndexByte(rest, '%')
		if start < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:start])
		end := strings.IndexByte(rest[start+1:], '%')
		if end < 0 {
			b.WriteString(rest[start:])
			break
		}
		name := rest[start+1 : start+1+end]
		rest = rest[start+end+2:]
		if name == "" {
			b.WriteByte('%')
			continue
		}
		if v, ok := ps.lookup(name, fallback); ok {
			b.WriteString(v)
		} else {
			b.WriteString("%" + name + "%")
		}
	}
	return b.String()
}

func (ps Params) lookup(name string, fallback func(string) (string, bool)) (string, bool) {
	if v, ok := ps.Get(name); ok {
		return v, true
	}
	if fallback != nil {
		return fallback(name)
	}
	return "", false
}
