package dyml_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-dyml"
	"github.com/KimNorgaard/go-dyml/internal/testutil"
)

func TestFormat(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		opts     []dyml.Option
		expected string
	}{
		{
			name:     "comments and spacing",
			input:    "# header\nlist:\n  - x\n  -   y   # trailing\n\nmap:\n  k:    v\n",
			expected: "list:\n  - x\n  - y\nmap:\n  k: v\n",
		},
		{
			name:     "wide indent",
			input:    "a:\n    b:   # note\n        c: 1\n",
			opts:     []dyml.Option{dyml.IndentWidth(4)},
			expected: "a:\n    b:\n        c: 1\n",
		},
		{
			name:     "compact items",
			input:    "loop:\n  - delay: 1\n    force: [1, 2, 3]\n  - delay: 2\n",
			expected: "loop:\n  - delay: 1\n    force: [1, 2, 3]\n  - delay: 2\n",
		},
		{
			name:     "inline arrays are written once",
			input:    "v: [1, 2]\n",
			opts:     []dyml.Option{dyml.InlineArrays()},
			expected: "v: [1, 2]\n",
		},
		{
			name:     "empty key",
			input:    ": a: b\n",
			expected: ": a: b\n",
		},
		{
			name:     "crlf",
			input:    "a: 1\r\nb: 2\r\n",
			expected: "a: 1\nb: 2\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := dyml.Format([]byte(tc.input), tc.opts...)
			require.NoError(t, err)
			require.Equal(t, tc.expected, string(out))
		})
	}
}

func TestFormat_Errors(t *testing.T) {
	_, err := dyml.Format([]byte("a:\n   b: 1\n"))
	require.ErrorIs(t, err, dyml.ErrMalformedIndent)

	_, err = dyml.Format(nil)
	require.ErrorIs(t, err, dyml.ErrEmptyInput)
}

func TestFormat_RoundTrip(t *testing.T) {
	names, err := testutil.Names()
	require.NoError(t, err)

	configs := map[string][]dyml.Option{
		"default":       nil,
		"inline arrays": {dyml.InlineArrays()},
		"flat":          {dyml.CompactSequences(false)},
	}

	for _, name := range names {
		for cfgName, opts := range configs {
			t.Run(name+"/"+cfgName, func(t *testing.T) {
				data, err := testutil.ReadTestData(name)
				require.NoError(t, err)

				doc, err := dyml.Parse(data, opts...)
				require.NoError(t, err)

				var buf bytes.Buffer
				n, err := doc.WriteTo(&buf)
				require.NoError(t, err)
				require.Equal(t, int64(buf.Len()), n)

				again, err := dyml.Parse(buf.Bytes(), opts...)
				require.NoError(t, err)
				if diff := cmp.Diff(doc.Rows(), again.Rows()); diff != "" {
					t.Errorf("rows changed after formatting (-before +after):\n%s", diff)
				}

				// Formatting is idempotent.
				twice, err := dyml.Format(buf.Bytes(), opts...)
				require.NoError(t, err)
				require.Equal(t, buf.String(), string(twice))
			})
		}
	}
}
