package fixture

// FormatObjects renders the tree-object listing: the ROOT row followed by one
// FILE row per object index, in index order.
func FormatObjects(numObjects int) []string {
	lines := make([]string, numObjects+1)
	lines[0] = objectLine(ObjectTypeRoot, RootPath)
	for i := 1; i < len(lines); i++ {
		lines[i] = objectLine(ObjectTypeFile, TreeObjectName(i-1))
	}
	return lines
}

// FormatEdges renders one fileObj{i},fileRes{j} row per edge, keeping input order
func FormatEdges(edges []Edge) []string {
	lines := make([]string, len(edges))
	for i, e := range edges {
		lines[i] = TreeObjectName(e.Object) + "," + FileResourceName(e.Resource) + "\n"
	}
	return lines
}

// Paths are always quoted, including the empty ROOT path.
func objectLine(t ObjectType, path string) string {
	return string(t) + `,"` + path + "\"\n"
}
