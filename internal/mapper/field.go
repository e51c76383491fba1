package mapper

import (
	"reflect"
	"strings"
	"sync"
)

// Field describes a struct field that maps to a keyed child.
type Field struct {
	Name      string
	Index     []int
	Required  bool
	OmitEmpty bool
}

// fieldCache caches a map of field names to their properties for a given struct type.
var fieldCache sync.Map

// Fields returns the mapped fields of the struct type t keyed by the
// child key they receive. The name comes from the "dyml" tag, falling back
// to the Go field name. Unexported fields and fields tagged "-" are skipped.
// Embedded structs without a tag contribute their own fields.
func Fields(t reflect.Type) map[string]Field {
	if f, ok := fieldCache.Load(t); ok {
		return f.(map[string]Field)
	}

	fields := make(map[string]Field)
	collect(t, nil, fields)

	f, _ := fieldCache.LoadOrStore(t, fields)
	return f.(map[string]Field)
}

func collect(t reflect.Type, index []int, fields map[string]Field) {
	for i := range t.NumField() {
		sf := t.Field(i)
		tag := sf.Tag.Get("dyml")
		if tag == "-" {
			continue
		}
		idx := append(append([]int(nil), index...), i)

		if sf.Anonymous && tag == "" && sf.Type.Kind() == reflect.Struct {
			collect(sf.Type, idx, fields)
			continue
		}
		if !sf.IsExported() {
			continue
		}

		f := Field{Index: idx}
		name, opts, _ := strings.Cut(tag, ",")
		if name != "" {
			f.Name = name
		} else {
			f.Name = sf.Name
		}

		for opts != "" {
			var opt string
			opt, opts, _ = strings.Cut(opts, ",")
			switch opt {
			case "required":
				f.Required = true
			case "omitempty":
				f.OmitEmpty = true
			}
		}
		// Outer fields shadow fields promoted from embedded structs.
		if prev, ok := fields[f.Name]; ok && len(prev.Index) < len(f.Index) {
			continue
		}
		fields[f.Name] = f
	}
}
