package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-dyml"
	"github.com/KimNorgaard/go-dyml/internal/testutil"
)

func loadString(t *testing.T, cfg *MainConfig, src string) *dyml.Document {
	t.Helper()
	doc, err := cfg.load(strings.NewReader(src), "-")
	require.NoError(t, err)
	return doc
}

func TestPrintRows(t *testing.T) {
	doc := loadString(t, &MainConfig{}, "a: 1\nb:\n  c: 2\n")

	var buf bytes.Buffer
	require.NoError(t, printRows(&buf, doc, 3, newPalette(false)))
	require.Equal(t, ""+
		"   #0 lv= 0   a | 1\n"+
		"   #1 lv= 0   b |  \n"+
		"   #2 lv= 1   c | 2\n", buf.String())
}

func TestPrintTree(t *testing.T) {
	doc := loadString(t, &MainConfig{}, "a: 1\nb:\n  - x\n  - y\n  c:\n    d: 2\n")

	var buf bytes.Buffer
	require.NoError(t, printTree(&buf, doc.Root(), 0, newPalette(false)))
	require.Equal(t, "a: 1\nb:\n  x\n  y\n  c:\n    d: 2\n", buf.String())
}

func TestResolve(t *testing.T) {
	data, err := testutil.ReadTestData("rifle.yaml")
	require.NoError(t, err)
	doc, err := dyml.Parse(data)
	require.NoError(t, err)

	n, err := resolve(doc.Root(), "GeneralSettings.Colors.1")
	require.NoError(t, err)
	require.Equal(t, `"#00ff00"`, n.Value())

	n, err = resolve(doc.Root(), "CamForces.EmptyReloadLoop.4")
	require.NoError(t, err)
	require.Equal(t, "Force", n.Key())

	_, err = resolve(doc.Root(), "GeneralSettings.Nope")
	require.ErrorIs(t, err, dyml.ErrKeyNotFound)

	_, err = resolve(doc.Root(), "GeneralSettings.Colors.9")
	require.ErrorIs(t, err, dyml.ErrIndexOutOfRange)

	var buf bytes.Buffer
	n, err = resolve(doc.Root(), "GeneralSettings.MagazineSize")
	require.NoError(t, err)
	require.NoError(t, printNode(&buf, n, newPalette(false)))
	require.Equal(t, "30\n", buf.String())
}

func TestWriteDiff(t *testing.T) {
	var buf bytes.Buffer
	differs, err := writeDiff(&buf, "a: 1\nb: 2\n", "a: 1\nb: 3\n", newPalette(false))
	require.NoError(t, err)
	require.True(t, differs)
	require.Equal(t, " a: 1\n-b: 2\n+b: 3\n", buf.String())

	buf.Reset()
	differs, err = writeDiff(&buf, "a: 1\n", "a: 1\n", newPalette(false))
	require.NoError(t, err)
	require.False(t, differs)
	require.Equal(t, " a: 1\n", buf.String())
}

func TestPalette(t *testing.T) {
	cfg := &MainConfig{}
	require.Equal(t, "x", cfg.palette(&bytes.Buffer{}).Key("%s", "x"))

	cfg.Color = true
	require.Contains(t, cfg.palette(&bytes.Buffer{}).Key("%s", "x"), "\x1b[")
}

func TestParseOpts(t *testing.T) {
	cfg := &MainConfig{Managed: true, Indent: 4, Flat: true}
	doc := loadString(t, cfg, "a:\n    - k: v\n    j: w\n")
	require.True(t, doc.Managed())
	require.Equal(t, 2, doc.Root().Get("a").Children())

	_, err := cfg.load(strings.NewReader("a:\n  b: 1\n"), "-")
	require.ErrorIs(t, err, dyml.ErrMalformedIndent)
}
