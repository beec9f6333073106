package fixture

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdjacencies_DataLines(t *testing.T) {
	for _, line := range []string{
		"dir0.fileObj0, fileRes0",
		" dir0.fileObj0, fileRes0 ",
		"dir0.fileObj0,fileRes0",
	} {
		got, err := ParseAdjacencies(strings.NewReader(line))
		require.NoError(t, err, line)
		assert.Equal(t, []Adjacency{{TreePath: "dir0.fileObj0", FileResource: "fileRes0"}}, got, line)
	}
}

func TestParseAdjacencies_CommentLines(t *testing.T) {
	for _, line := range []string{
		"# comment",
		"## comment",
		"# comment, comment, comment",
		" # # # # comment, comment  ",
		"",
		"   ",
	} {
		got, err := ParseAdjacencies(strings.NewReader(line))
		require.NoError(t, err, line)
		assert.Empty(t, got, line)
	}
}

func TestParseAdjacencies_Malformed(t *testing.T) {
	for _, line := range []string{
		"too, many, rows",
		"too few rows",
	} {
		_, err := ParseAdjacencies(strings.NewReader(line))
		assert.ErrorIs(t, err, ErrMalformedLine, line)
	}
}

func TestParseTreeObjects(t *testing.T) {
	csv := `ROOT, ""
FILE, "fileObj0"
dir, "dir0"
# Available objects: dir0.fileObj3, fileObj4
FILE, "dir0.fileObj1"

file,fileObj2
`
	got, err := ParseTreeObjects(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, []TreeObject{
		{Type: ObjectTypeRoot, Path: ""},
		{Type: ObjectTypeFile, Path: "fileObj0"},
		{Type: ObjectTypeDir, Path: "dir0"},
		{Type: ObjectTypeFile, Path: "dir0.fileObj1"},
		{Type: ObjectTypeFile, Path: "fileObj2"},
	}, got)
}

func TestParseTreeObjects_UnknownType(t *testing.T) {
	_, err := ParseTreeObjects(strings.NewReader(`LINK, "fileObj0"`))
	assert.ErrorIs(t, err, ErrUnknownObjectType)
}

func TestParseTreeObjects_BadQuoting(t *testing.T) {
	_, err := ParseTreeObjects(strings.NewReader(`FILE, "fileObj0`))
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestParse_RoundTripsFormatters(t *testing.T) {
	graph, err := NewEdgeGenerator(seeded(21)).Generate(64)
	require.NoError(t, err)

	objects, err := ParseTreeObjects(strings.NewReader(strings.Join(FormatObjects(graph.NumObjects), "")))
	require.NoError(t, err)
	require.Len(t, objects, graph.NumObjects+1)
	assert.Equal(t, TreeObject{Type: ObjectTypeRoot, Path: RootPath}, objects[0])

	adjacencies, err := ParseAdjacencies(strings.NewReader(strings.Join(FormatEdges(graph.Edges), "")))
	require.NoError(t, err)
	require.Len(t, adjacencies, len(graph.Edges))
	assert.Equal(t, Adjacency{TreePath: "fileObj0", FileResource: "fileRes0"}, adjacencies[0])
}
