package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oahshtsua/lab/bst/algos/bst"
)

func buildTree(keys ...int) *bst.Node {
	root := bst.New(keys[0])
	for _, key := range keys[1:] {
		root.Insert(key)
	}
	return root
}

func TestTreeASCII(t *testing.T) {
	root := buildTree(5, 3, 8, 1)

	var buf bytes.Buffer
	require.NoError(t, Tree(&buf, root, StyleASCII))

	expected := "" +
		"└── 5\n" +
		"   ├── 8\n" +
		"   └── 3\n" +
		"      ├── nil\n" +
		"      └── 1\n"
	assert.Equal(t, expected, buf.String())
}

func TestTreeEmpty(t *testing.T) {
	for _, style := range []Style{StyleASCII, StyleRounded, StyleList} {
		var buf bytes.Buffer
		require.NoError(t, Tree(&buf, nil, style))
		assert.Equal(t, "<empty>\n", buf.String())
	}
}

func TestTreeList(t *testing.T) {
	root := buildTree(5, 3, 8, 9)

	var buf bytes.Buffer
	require.NoError(t, Tree(&buf, root, StyleRounded))

	out := buf.String()
	assert.Contains(t, out, "5")
	assert.Contains(t, out, "L: 3")
	assert.Contains(t, out, "R: 8")
	assert.Contains(t, out, "L: nil")
	assert.Contains(t, out, "R: 9")
}

func TestTreeUnknownStyle(t *testing.T) {
	var buf bytes.Buffer
	err := Tree(&buf, bst.New(1), Style("fancy"))
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestParseStyle(t *testing.T) {
	testCases := []struct {
		input    string
		expected Style
		fails    bool
	}{
		{"", StyleASCII, false},
		{"ascii", StyleASCII, false},
		{"ROUNDED", StyleRounded, false},
		{"list", StyleList, false},
		{"fancy", "", true},
	}
	for _, tc := range testCases {
		style, err := ParseStyle(tc.input)
		if tc.fails {
			assert.ErrorIs(t, err, ErrUnknownStyle)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tc.expected, style)
	}
}

func TestStats(t *testing.T) {
	var buf bytes.Buffer
	Stats(&buf, buildTree(5, 3, 8, 1, 4, 7, 9), false)

	out := buf.String()
	assert.Contains(t, out, "count")
	assert.Contains(t, out, "7")
	assert.Contains(t, out, "[1 3 4 5 7 8 9]")

	buf.Reset()
	Stats(&buf, nil, false)
	assert.Contains(t, buf.String(), "-")
}
