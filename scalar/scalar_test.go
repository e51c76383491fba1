package scalar_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-dyml/scalar"
)

type text string

func (t text) Value() string  { return string(t) }
func (t text) HasValue() bool { return t != "" }

func TestRead(t *testing.T) {
	f, err := scalar.Read[scalar.Float](text("65.5"))
	require.NoError(t, err)
	require.Equal(t, scalar.Float(65.5), f)

	i, err := scalar.Read[scalar.Int](text(" -42 "))
	require.NoError(t, err)
	require.Equal(t, scalar.Int(-42), i)

	b, err := scalar.Read[scalar.Bool](text("true"))
	require.NoError(t, err)
	require.True(t, bool(b))

	v, err := scalar.Read[scalar.Vec3](text("[0.1, -2,3e1]"))
	require.NoError(t, err)
	require.Equal(t, scalar.Vec3{X: 0.1, Y: -2, Z: 30}, v)
	require.Equal(t, "[0.1, -2, 30]", v.String())

	s, err := scalar.Read[scalar.Text](text(`"a\tb"`))
	require.NoError(t, err)
	require.Equal(t, scalar.Text("a\tb"), s)
}

func TestValue(t *testing.T) {
	var f scalar.Float
	require.NoError(t, scalar.Value(text("1.25"), &f))
	require.Equal(t, scalar.Float(1.25), f)

	require.ErrorIs(t, scalar.Value(text(""), &f), scalar.ErrNoValue)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		target scalar.Scalar
		input  string
		msg    string
	}{
		{"int from float", new(scalar.Int), "1.5", `dyml: cannot parse "1.5" as integer: invalid syntax`},
		{"float garbage", new(scalar.Float), "abc", `dyml: cannot parse "abc" as float: invalid syntax`},
		{"bool", new(scalar.Bool), "maybe", `dyml: cannot parse "maybe" as boolean: invalid syntax`},
		{"vector brackets", new(scalar.Vec3), "1,2,3", `dyml: cannot parse "1,2,3" as vector: missing brackets`},
		{"vector arity", new(scalar.Vec3), "[1,2]", `dyml: cannot parse "[1,2]" as vector: want 3 components, got 2`},
		{"vector component", new(scalar.Vec3), "[1,x,2]", `dyml: cannot parse "[1,x,2]" as vector: invalid syntax`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.target.ParseScalar(tc.input)
			require.EqualError(t, err, tc.msg)
			var serr *scalar.Error
			require.ErrorAs(t, err, &serr)
		})
	}

	err := new(scalar.Int).ParseScalar("99999999999999999999")
	require.ErrorIs(t, err, strconv.ErrRange)
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{`"hello"`, "hello"},
		{`"a\"b"`, `a"b`},
		{`'it''s'`, "it's"},
		{`plain`, "plain"},
		{`"`, `"`},
		{`"bad \q"`, `bad \q`},
		{`#ff0000`, `#ff0000`},
	}
	for _, tt := range tests {
		require.Equal(t, tt.out, scalar.Unquote(tt.in), tt.in)
	}
}

func TestFormatScalar(t *testing.T) {
	tests := []struct {
		name string
		in   scalar.Formatter
		out  string
		dst  scalar.Scalar
	}{
		{"text", scalar.Text("hello"), "hello", new(scalar.Text)},
		{"text comment", scalar.Text("#00ff00"), `"#00ff00"`, new(scalar.Text)},
		{"text leading space", scalar.Text(" lead"), `" lead"`, new(scalar.Text)},
		{"text empty", scalar.Text(""), `""`, new(scalar.Text)},
		{"text separator", scalar.Text("a: b"), `"a: b"`, new(scalar.Text)},
		{"int", scalar.Int(-7), "-7", new(scalar.Int)},
		{"float", scalar.Float(65.5), "65.5", new(scalar.Float)},
		{"bool", scalar.Bool(true), "true", new(scalar.Bool)},
		{"vector", scalar.Vec3{X: 1.5, Y: 0, Z: -2}, "[1.5, 0, -2]", new(scalar.Vec3)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.in.FormatScalar()
			require.Equal(t, tc.out, s)
			require.NoError(t, tc.dst.ParseScalar(s))
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []string{"plain", "#00ff00", " lead", "trail ", "", "a: b", "ends:", `"q"`, "'q'", "[1, 2]", `C:\dir`, "two\nlines", "http://host:80/x"}
	for _, in := range tests {
		require.Equal(t, in, scalar.Unquote(scalar.Quote(in)), in)
	}
	require.Equal(t, "http://host:80/x", scalar.Quote("http://host:80/x"))
	require.Equal(t, `"#00ff00"`, scalar.Quote("#00ff00"))
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  []string
	}{
		{"plain", "[a, b,c]", []string{"a", "b", "c"}},
		{"quoted comma", `["a,b", c]`, []string{`"a,b"`, "c"}},
		{"single quoted", `['x, y', "z"]`, []string{`'x, y'`, `"z"`}},
		{"escaped quote", `["a\",b", c]`, []string{`"a\",b"`, "c"}},
		{"empty", "[ ]", nil},
		{"surrounding space", " [1,2] ", []string{"1", "2"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parts, err := scalar.SplitList(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.out, parts)
		})
	}

	_, err := scalar.SplitList("a, b")
	require.EqualError(t, err, "missing brackets")
}
