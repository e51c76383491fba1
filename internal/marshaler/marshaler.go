package marshaler

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-dyml/internal/formatter"
	"github.com/KimNorgaard/go-dyml/internal/mapper"
	"github.com/KimNorgaard/go-dyml/scalar"
)

// Config controls how values are spelled.
type Config struct {
	// Marker is the sequence item marker. Sequences cannot be encoded
	// without one.
	Marker string
	// Compact writes struct and map elements of a sequence as compact
	// "- key: value" items instead of a bare marker followed by children.
	Compact bool
	// MaxDepth bounds the nesting of composite values.
	MaxDepth int
}

var formatterType = reflect.TypeFor[scalar.Formatter]()

var errNoMarker = errors.New("dyml: cannot encode a sequence without a sequence marker")

// Marshal converts a Go value into the rows that spell it. The top-level
// value must be a struct, a map with string keys or a sequence; a nil value
// produces no rows.
func Marshal(v any, cfg Config) ([]formatter.Line, error) {
	m := &marshaler{cfg: cfg, depth: cfg.MaxDepth}
	if m.depth <= 0 {
		m.depth = 1000
	}
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return nil, nil
	}
	if _, isScalar, err := m.scalarText(rv); err != nil {
		return nil, err
	} else if isScalar {
		return nil, fmt.Errorf("dyml: cannot encode %s as a document", rv.Type())
	}
	if err := m.descend(rv, 0); err != nil {
		return nil, err
	}
	return m.lines, nil
}

type marshaler struct {
	cfg   Config
	depth int
	lines []formatter.Line
	item  bool // the next line starts a compact item
}

func (m *marshaler) emit(ln formatter.Line) {
	if m.item {
		ln.Item = true
		m.item = false
	}
	m.lines = append(m.lines, ln)
}

func (m *marshaler) descend(v reflect.Value, level int) error {
	m.depth--
	defer func() { m.depth++ }()
	if m.depth <= 0 {
		return fmt.Errorf("dyml: reached max recursion depth")
	}

	switch v.Kind() {
	case reflect.Struct:
		return m.structFields(v, level)
	case reflect.Map:
		return m.mapEntries(v, level)
	case reflect.Slice, reflect.Array:
		return m.items(v, level)
	}
	return fmt.Errorf("dyml: unsupported type for encoding: %s", v.Type())
}

func (m *marshaler) structFields(v reflect.Value, level int) error {
	fields := slices.SortedFunc(maps.Values(mapper.Fields(v.Type())), func(a, b mapper.Field) int {
		return slices.Compare(a.Index, b.Index)
	})
	for _, f := range fields {
		fv := v.FieldByIndex(f.Index)
		if f.OmitEmpty && isEmptyValue(fv) {
			continue
		}
		if err := m.field(f.Name, fv, level); err != nil {
			return err
		}
	}
	return nil
}

func (m *marshaler) mapEntries(v reflect.Value, level int) error {
	if v.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("dyml: map key type must be a string, got %s", v.Type().Key())
	}
	keys := v.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return strings.Compare(a.String(), b.String())
	})
	for _, k := range keys {
		if err := m.field(k.String(), v.MapIndex(k), level); err != nil {
			return err
		}
	}
	return nil
}

func (m *marshaler) items(v reflect.Value, level int) error {
	if m.cfg.Marker == "" {
		return errNoMarker
	}
	for i := range v.Len() {
		e, ok := indirect(v.Index(i))
		if !ok {
			m.emit(formatter.Line{Level: level, Item: true})
			continue
		}
		text, isScalar, err := m.scalarText(e)
		if err != nil {
			return err
		}
		switch {
		case isScalar:
			m.emit(formatter.Line{Level: level, Item: true, Value: text})
		case isEmptyList(e):
			m.emit(formatter.Line{Level: level, Item: true, Value: "[]"})
		case m.cfg.Compact && (e.Kind() == reflect.Struct || e.Kind() == reflect.Map):
			m.item = true
			if err := m.descend(e, level); err != nil {
				return err
			}
			if m.item {
				m.emit(formatter.Line{Level: level})
			}
		default:
			m.emit(formatter.Line{Level: level, Item: true})
			if err := m.descend(e, level+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// field writes one keyed line and, for composite values, its children.
func (m *marshaler) field(key string, v reflect.Value, level int) error {
	if err := m.checkKey(key); err != nil {
		return err
	}
	e, ok := indirect(v)
	if !ok {
		m.emit(formatter.Line{Level: level, Key: key})
		return nil
	}
	text, isScalar, err := m.scalarText(e)
	if err != nil {
		return err
	}
	switch {
	case isScalar:
		m.emit(formatter.Line{Level: level, Key: key, Value: text})
		return nil
	case isEmptyList(e):
		m.emit(formatter.Line{Level: level, Key: key, Value: "[]"})
		return nil
	}
	m.emit(formatter.Line{Level: level, Key: key})
	return m.descend(e, level+1)
}

// scalarText returns the value text of v, or false when v is a composite.
func (m *marshaler) scalarText(v reflect.Value) (string, bool, error) {
	if f, ok := asFormatter(v); ok {
		return f.FormatScalar(), true, nil
	}
	switch v.Kind() {
	case reflect.String:
		return m.quote(v.String()), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10), true, nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, v.Type().Bits()), true, nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true, nil
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		return "", false, nil
	}
	return "", false, fmt.Errorf("dyml: unsupported type for encoding: %s", v.Type())
}

// quote double quotes s when it would not read back verbatim as value text.
func (m *marshaler) quote(s string) string {
	if m.cfg.Marker != "" && (s == m.cfg.Marker || strings.HasPrefix(s, m.cfg.Marker+" ")) {
		return strconv.Quote(s)
	}
	return scalar.Quote(s)
}

func (m *marshaler) checkKey(key string) error {
	switch {
	case key == "",
		key != strings.TrimSpace(key),
		strings.ContainsAny(key, "#\\\n\r\t"),
		strings.Contains(key, ": "),
		strings.HasSuffix(key, ":"),
		strings.ContainsRune(`"'[`, rune(key[0])),
		m.cfg.Marker != "" && (key == m.cfg.Marker || strings.HasPrefix(key, m.cfg.Marker+" ")):
		return fmt.Errorf("dyml: cannot encode key %q", key)
	}
	return nil
}

func asFormatter(v reflect.Value) (scalar.Formatter, bool) {
	if !v.CanInterface() {
		return nil, false
	}
	if v.Type().Implements(formatterType) {
		return v.Interface().(scalar.Formatter), true
	}
	if v.CanAddr() && v.Addr().Type().Implements(formatterType) {
		return v.Addr().Interface().(scalar.Formatter), true
	}
	return nil, false
}

// indirect follows pointers and interfaces. It reports false for nil
// values, including nil maps and slices.
func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Invalid:
		return v, false
	case reflect.Map, reflect.Slice:
		if v.IsNil() {
			return v, false
		}
	}
	return v, true
}

func isEmptyList(v reflect.Value) bool {
	return (v.Kind() == reflect.Slice || v.Kind() == reflect.Array) && v.Len() == 0
}

// isEmptyValue reports whether the value v is empty.
// It is equivalent to the `encoding/json` definition of empty:
// false, 0, a nil pointer, a nil interface value, and any empty array,
// slice, map, or string.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
