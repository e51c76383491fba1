package dyml

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/KimNorgaard/go-dyml/internal/mapper"
	"github.com/KimNorgaard/go-dyml/scalar"
)

var scalarType = reflect.TypeFor[scalar.Scalar]()

// Decode stores the node in the value pointed to by v.
//
// Nodes map onto Go values as follows:
//   - a type implementing scalar.Scalar (through a pointer receiver) parses
//     the node's value text itself;
//   - strings receive the value with surrounding quotes removed;
//   - integers, floats and booleans are parsed with strconv;
//   - structs receive keyed children by field name or `dyml:"name"` tag;
//     the first child with a given key wins, and fields tagged
//     `dyml:"name,required"` must be present;
//   - maps with string keys receive every keyed child;
//   - slices and arrays receive the children in order, or the elements of
//     an inline "[a, b, c]" value when the node has no children;
//   - an empty interface receives a string, a []any or a map[string]any.
//
// Decode on the zero Node leaves v unchanged.
func (n Node) Decode(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("dyml: Decode(non-pointer %T or nil)", v)
	}
	if !n.Valid() {
		return nil
	}
	ds := &decodeState{depth: n.doc.opts.maxDepth}
	return ds.decode(n, rv.Elem())
}

type decodeState struct {
	depth int
}

func (ds *decodeState) decode(n Node, rv reflect.Value) error { //nolint:gocyclo
	ds.depth--
	if ds.depth <= 0 {
		return fmt.Errorf("dyml: reached max recursion depth")
	}
	defer func() { ds.depth++ }()

	if rv.CanAddr() && rv.Addr().Type().Implements(scalarType) {
		if n.Children() > 0 && !n.HasValue() {
			return typeError(n, rv, nil)
		}
		if err := scalar.Value(n, rv.Addr().Interface().(scalar.Scalar)); err != nil {
			return typeError(n, rv, err)
		}
		return nil
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return ds.decode(n, rv.Elem())
	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return typeError(n, rv, nil)
		}
		g, err := ds.generic(n)
		if err != nil {
			return err
		}
		if g == nil {
			rv.Set(reflect.Zero(rv.Type()))
		} else {
			rv.Set(reflect.ValueOf(g))
		}
		return nil
	case reflect.Struct:
		return ds.decodeStruct(n, children(n), rv)
	case reflect.Map:
		return ds.decodeMap(n, children(n), rv)
	case reflect.Slice, reflect.Array:
		return ds.decodeList(n, rv)
	}

	if !n.HasValue() {
		if n.Children() > 0 {
			return typeError(n, rv, nil)
		}
		return nil
	}
	if err := setText(n.Value(), rv); err != nil {
		return typeError(n, rv, err)
	}
	return nil
}

func (ds *decodeState) decodeStruct(n Node, kids []Node, rv reflect.Value) error {
	fields := mapper.Fields(rv.Type())
	seen := make(map[string]bool, len(fields))
	for _, c := range kids {
		if !c.HasKey() {
			continue
		}
		key := c.Key()
		f, ok := fields[key]
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		if err := ds.decode(c, rv.FieldByIndex(f.Index)); err != nil {
			return err
		}
	}
	for name, f := range fields {
		if f.Required && !seen[name] {
			return fmt.Errorf("dyml: missing required key %q for Go value of type %s (line %d)", name, rv.Type(), n.Line())
		}
	}
	return nil
}

func (ds *decodeState) decodeMap(n Node, kids []Node, rv reflect.Value) error {
	t := rv.Type()
	if t.Key().Kind() != reflect.String {
		return typeError(n, rv, nil)
	}
	if rv.IsNil() {
		rv.Set(reflect.MakeMapWithSize(t, len(kids)))
	}
	for _, c := range kids {
		if !c.HasKey() {
			return typeError(n, rv, fmt.Errorf("line %d: sequence item in mapping", c.Line()))
		}
		key := reflect.ValueOf(c.Key()).Convert(t.Key())
		if rv.MapIndex(key).IsValid() {
			continue
		}
		ev := reflect.New(t.Elem()).Elem()
		if err := ds.decode(c, ev); err != nil {
			return err
		}
		rv.SetMapIndex(key, ev)
	}
	return nil
}

func (ds *decodeState) decodeList(n Node, rv reflect.Value) error {
	if n.Children() == 0 && n.HasValue() {
		return ds.decodeInlineList(n, rv)
	}
	groups := entries(n)
	if rv.Kind() == reflect.Array {
		if len(groups) > rv.Len() {
			return typeError(n, rv, fmt.Errorf("%d elements do not fit", len(groups)))
		}
	} else {
		rv.Set(reflect.MakeSlice(rv.Type(), len(groups), len(groups)))
	}
	for i, g := range groups {
		if err := ds.decodeEntry(n, g, rv.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

// decodeEntry decodes one sequence entry. A single child decodes on its
// own; the lines of a compact item decode like the children of a mapping.
func (ds *decodeState) decodeEntry(n Node, group []Node, rv reflect.Value) error {
	if len(group) == 1 && !(group[0].IsItem() && group[0].HasKey()) {
		return ds.decode(group[0], rv)
	}
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		return ds.decodeStruct(group[0], group, rv)
	case reflect.Map:
		return ds.decodeMap(group[0], group, rv)
	case reflect.Interface:
		if rv.NumMethod() == 0 {
			m, err := ds.genericMap(group)
			if err != nil {
				return err
			}
			rv.Set(reflect.ValueOf(m))
			return nil
		}
	}
	return typeError(n, rv, fmt.Errorf("line %d: compact item", group[0].Line()))
}

func (ds *decodeState) decodeInlineList(n Node, rv reflect.Value) error {
	parts, err := scalar.SplitList(n.Value())
	if err != nil {
		return typeError(n, rv, nil)
	}
	if rv.Kind() == reflect.Array {
		if len(parts) > rv.Len() {
			return typeError(n, rv, fmt.Errorf("%d elements do not fit", len(parts)))
		}
	} else {
		rv.Set(reflect.MakeSlice(rv.Type(), len(parts), len(parts)))
	}
	for i, p := range parts {
		ev := rv.Index(i)
		if ev.CanAddr() && ev.Addr().Type().Implements(scalarType) {
			if err := ev.Addr().Interface().(scalar.Scalar).ParseScalar(p); err != nil {
				return typeError(n, rv, err)
			}
			continue
		}
		if ev.Kind() == reflect.Interface && ev.NumMethod() == 0 {
			ev.Set(reflect.ValueOf(scalar.Unquote(p)))
			continue
		}
		if err := setText(p, ev); err != nil {
			return typeError(n, rv, err)
		}
	}
	return nil
}

// generic builds the empty-interface form of n: nil, a string, a []any for
// keyless children or a map[string]any for keyed children.
func (ds *decodeState) generic(n Node) (any, error) {
	if n.Children() == 0 {
		if !n.HasValue() {
			return nil, nil
		}
		return scalar.Unquote(n.Value()), nil
	}
	if n.At(0).IsItem() || !n.At(0).HasKey() {
		groups := entries(n)
		out := make([]any, len(groups))
		for i, g := range groups {
			if err := ds.decodeEntry(n, g, reflect.ValueOf(&out[i]).Elem()); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
	return ds.genericMap(children(n))
}

func (ds *decodeState) genericMap(kids []Node) (map[string]any, error) {
	out := make(map[string]any, len(kids))
	for _, c := range kids {
		if _, dup := out[c.Key()]; dup {
			continue
		}
		var v any
		if err := ds.decode(c, reflect.ValueOf(&v).Elem()); err != nil {
			return nil, err
		}
		out[c.Key()] = v
	}
	return out, nil
}

func children(n Node) []Node {
	kids := make([]Node, 0, n.Children())
	for _, c := range n.All() {
		kids = append(kids, c)
	}
	return kids
}

// entries splits n's children into sequence entries. Each child is an entry
// of its own, except that a compact item ("- key: value") starts an entry
// holding every following child up to the next item.
func entries(n Node) [][]Node {
	compact := false
	for _, c := range n.All() {
		if c.IsItem() && c.HasKey() {
			compact = true
			break
		}
	}
	var out [][]Node
	for _, c := range n.All() {
		if !compact || c.IsItem() || len(out) == 0 {
			out = append(out, nil)
		}
		out[len(out)-1] = append(out[len(out)-1], c)
	}
	return out
}

// setText parses text into a basic Go value.
func setText(text string, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(scalar.Unquote(text))
	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return err
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(text, 10, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(text, 10, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetFloat(f)
	default:
		return fmt.Errorf("unsupported kind %s", rv.Kind())
	}
	return nil
}

func typeError(n Node, rv reflect.Value, err error) error {
	what := "value"
	switch {
	case n.Children() > 0 && n.At(0).HasKey():
		what = "mapping"
	case n.Children() > 0:
		what = "sequence"
	}
	return &UnmarshalTypeError{Value: what, Line: n.Line(), Type: rv.Type().String(), Err: err}
}
