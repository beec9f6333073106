// Package fixture generates the random tree-object/file-resource fixtures used to
// seed the document tree test database, and reads them back for verification.
package fixture

import "strconv"

const (
	TreeObjectPrefix   = "fileObj"
	FileResourcePrefix = "fileRes"

	TreeObjectsSuffix   = "_edge_tree_objects.csv"
	FileResourcesSuffix = "_edge_file_resources.csv"

	// RootPath is the path of the single ROOT record.
	RootPath = ""
)

// ObjectType tags a row of the tree-object listing
type ObjectType string

const (
	ObjectTypeRoot ObjectType = "ROOT"
	ObjectTypeDir  ObjectType = "DIR"
	ObjectTypeFile ObjectType = "FILE"
)

// Edge associates one tree object with one file resource
type Edge struct {
	Object   int
	Resource int
}

// Graph is the result of a generation run
type Graph struct {
	NumObjects   int
	NumResources int
	Edges        []Edge // sorted by (Object, Resource)
}

// TreeObject is one row of the tree-object listing
type TreeObject struct {
	Type ObjectType
	Path string
}

// Adjacency is one row of the file-resource listing
type Adjacency struct {
	TreePath     string
	FileResource string
}

// TreeObjectName returns the name of the object at index i
func TreeObjectName(i int) string {
	return TreeObjectPrefix + strconv.Itoa(i)
}

// FileResourceName returns the name of the resource at index i
func FileResourceName(i int) string {
	return FileResourcePrefix + strconv.Itoa(i)
}

// TreeObjectsFilename returns the tree-object listing filename for n edges
func TreeObjectsFilename(n int) string {
	return strconv.Itoa(n) + TreeObjectsSuffix
}

// FileResourcesFilename returns the edge listing filename for n edges
func FileResourcesFilename(n int) string {
	return strconv.Itoa(n) + FileResourcesSuffix
}
