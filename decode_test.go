package dyml_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-dyml"
	"github.com/KimNorgaard/go-dyml/internal/testutil"
	"github.com/KimNorgaard/go-dyml/scalar"
)

type generalSettings struct {
	FieldOfView   float32
	PivotPosition scalar.Vec3
	MagazineSize  int
	Colors        []string
}

type camForce struct {
	Delay        float32
	Force        scalar.Vec3
	Distribution scalar.Float
}

type rifle struct {
	Name            string
	GeneralSettings generalSettings
	CamForces       struct {
		EmptyReloadLoop []camForce
	}
}

func TestUnmarshal(t *testing.T) {
	t.Run("Struct", func(t *testing.T) {
		data, err := testutil.ReadTestData("rifle.yaml")
		require.NoError(t, err)

		var r rifle
		require.NoError(t, dyml.Unmarshal(data, &r))

		require.Equal(t, "Assault Rifle", r.Name)
		require.Equal(t, generalSettings{
			FieldOfView:   65.5,
			PivotPosition: scalar.Vec3{X: 0.12, Y: -0.3, Z: 0.45},
			MagazineSize:  30,
			Colors:        []string{"red", "#00ff00", "blue"},
		}, r.GeneralSettings)
		require.Equal(t, []camForce{
			{Delay: 0.1, Force: scalar.Vec3{X: 1.5, Y: 0, Z: -2}, Distribution: 0.75},
			{Delay: 0.35, Force: scalar.Vec3{X: 0, Y: 2.25, Z: 0}, Distribution: 1},
		}, r.CamForces.EmptyReloadLoop)
	})

	t.Run("Generic", func(t *testing.T) {
		data, err := testutil.ReadTestData("yaml.yaml")
		require.NoError(t, err)

		var v any
		require.NoError(t, dyml.Unmarshal(data, &v))
		require.Equal(t, map[string]any{
			"server": map[string]any{
				"host": "localhost",
				"port": "8080",
				"tls": map[string]any{
					"enabled": "true",
					"cert":    "/etc/ssl/cert.pem",
				},
				"routes": []any{
					map[string]any{"path": "/api", "backend": "http://127.0.0.1:9000"},
					map[string]any{"path": "/static", "backend": "file:///var/www"},
				},
			},
			"users": []any{"alice", "bob"},
			"limits": map[string]any{
				"rps":   "100",
				"burst": "250",
			},
		}, v)
	})

	t.Run("Scalars", func(t *testing.T) {
		data, err := testutil.ReadTestData("var.yaml")
		require.NoError(t, err)

		var v struct {
			Int      int         `dyml:"int"`
			Negative *int64      `dyml:"negative"`
			Float    float64     `dyml:"float"`
			Text     string      `dyml:"text"`
			Quoted   scalar.Text `dyml:"quoted"`
			Empty    any         `dyml:"empty"`
			Vector   [3]uint     `dyml:"vector"`
			Ignored  string      `dyml:"-"`
		}
		v.Empty = "preset"
		require.NoError(t, dyml.Unmarshal(data, &v))

		require.Equal(t, 42, v.Int)
		require.NotNil(t, v.Negative)
		require.Equal(t, int64(-7), *v.Negative)
		require.Equal(t, 3.25, v.Float)
		require.Equal(t, "hello world", v.Text)
		require.Equal(t, scalar.Text("a: b"), v.Quoted)
		require.Nil(t, v.Empty)
		require.Equal(t, [3]uint{1, 2, 3}, v.Vector)
	})

	t.Run("Inline arrays", func(t *testing.T) {
		var v struct {
			Ints   []int
			Floats []scalar.Float
			Any    []any
			Empty  []string
		}
		src := "Ints: [1, 2, 3]\nFloats: [0.5,1.5]\nAny: [a, \"b c\"]\nEmpty: []\n"
		require.NoError(t, dyml.Unmarshal([]byte(src), &v))
		require.Equal(t, []int{1, 2, 3}, v.Ints)
		require.Equal(t, []scalar.Float{0.5, 1.5}, v.Floats)
		require.Equal(t, []any{"a", "b c"}, v.Any)
		require.Empty(t, v.Empty)
		require.NotNil(t, v.Empty)
	})

	t.Run("Inline arrays with quoted commas", func(t *testing.T) {
		src := []byte("L: [\"a,b\", c, 'd, e']\n")
		for _, opts := range [][]dyml.Option{nil, {dyml.InlineArrays()}} {
			var v struct{ L []string }
			require.NoError(t, dyml.Unmarshal(src, &v, opts...))
			require.Equal(t, []string{"a,b", "c", "d, e"}, v.L)
		}
	})

	t.Run("Inline array into scalar", func(t *testing.T) {
		src := []byte("F: [1, 2]\nV: [1, 2, 3]\n")
		for _, opts := range [][]dyml.Option{nil, {dyml.InlineArrays()}} {
			var v struct {
				F string
				V scalar.Vec3
			}
			require.NoError(t, dyml.Unmarshal(src, &v, opts...))
			require.Equal(t, "[1, 2]", v.F)
			require.Equal(t, scalar.Vec3{X: 1, Y: 2, Z: 3}, v.V)
		}
	})

	t.Run("Maps", func(t *testing.T) {
		var m map[string]int
		require.NoError(t, dyml.Unmarshal([]byte("a: 1\nb: 2\na: 3\n"), &m))
		require.Equal(t, map[string]int{"a": 1, "b": 2}, m)

		var compact []map[string]string
		require.NoError(t, dyml.Unmarshal([]byte("- k: v\n  j: w\n- k: x\n"), &compact))
		require.Equal(t, []map[string]string{{"k": "v", "j": "w"}, {"k": "x"}}, compact)
	})

	t.Run("First key wins", func(t *testing.T) {
		var v struct{ A string }
		require.NoError(t, dyml.Unmarshal([]byte("A: first\nA: second\nB: unknown\n"), &v))
		require.Equal(t, "first", v.A)
	})

	t.Run("Nested sequences", func(t *testing.T) {
		var v [][]int
		require.NoError(t, dyml.Unmarshal([]byte("-\n  - 1\n  - 2\n- [3]\n"), &v))
		require.Equal(t, [][]int{{1, 2}, {3}}, v)
	})

	t.Run("Zero node", func(t *testing.T) {
		doc, err := dyml.ParseString("a: 1\n")
		require.NoError(t, err)
		i := 7
		require.NoError(t, doc.Root().Get("missing").Decode(&i))
		require.Equal(t, 7, i)
	})
}

func TestUnmarshal_Errors(t *testing.T) {
	t.Run("Non-pointer", func(t *testing.T) {
		var i int
		err := dyml.Unmarshal([]byte("a: 1\n"), i)
		require.EqualError(t, err, "dyml: Decode(non-pointer int or nil)")
	})

	t.Run("Parse error", func(t *testing.T) {
		var v any
		err := dyml.Unmarshal([]byte("a:\n    b: 1\n"), &v)
		require.ErrorIs(t, err, dyml.ErrMalformedIndent)
	})

	t.Run("Value type", func(t *testing.T) {
		var v struct {
			Text int `dyml:"text"`
		}
		data, err := testutil.ReadTestData("var.yaml")
		require.NoError(t, err)

		err = dyml.Unmarshal(data, &v)
		var terr *dyml.UnmarshalTypeError
		require.ErrorAs(t, err, &terr)
		require.Equal(t, "value", terr.Value)
		require.Equal(t, 4, terr.Line)
		require.Equal(t, "int", terr.Type)
		require.ErrorIs(t, err, strconv.ErrSyntax)
	})

	t.Run("Mapping into scalar", func(t *testing.T) {
		var v struct{ A int }
		err := dyml.Unmarshal([]byte("A:\n  b: 1\n"), &v)
		require.EqualError(t, err, "dyml: cannot unmarshal mapping into Go value of type int (line 1)")
	})

	t.Run("Sequence into map", func(t *testing.T) {
		var v map[string]string
		err := dyml.Unmarshal([]byte("- a\n- b\n"), &v)
		var terr *dyml.UnmarshalTypeError
		require.ErrorAs(t, err, &terr)
		require.Equal(t, "sequence", terr.Value)
	})

	t.Run("Scalar adapter", func(t *testing.T) {
		var v struct{ V scalar.Vec3 }
		err := dyml.Unmarshal([]byte("V: [1, 2]\n"), &v)
		var serr *scalar.Error
		require.ErrorAs(t, err, &serr)
		require.Equal(t, "vector", serr.Kind)
	})

	t.Run("Array too short", func(t *testing.T) {
		var v struct{ A [2]int }
		err := dyml.Unmarshal([]byte("A: [1, 2, 3]\n"), &v)
		require.ErrorContains(t, err, "3 elements do not fit")
	})

	t.Run("Required", func(t *testing.T) {
		var v struct {
			Name string `dyml:"name,required"`
		}
		err := dyml.Unmarshal([]byte("other: 1\n"), &v)
		require.ErrorContains(t, err, `missing required key "name"`)
	})

	t.Run("Max depth", func(t *testing.T) {
		var v any
		src := []byte("a:\n  b:\n    c: 1\n")
		require.NoError(t, dyml.Unmarshal(src, &v))

		err := dyml.Unmarshal(src, &v, dyml.MaxDepth(2))
		require.EqualError(t, err, "dyml: reached max recursion depth")
	})
}
