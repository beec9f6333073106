package fixture

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Stats summarizes a verified fixture pair
type Stats struct {
	NumObjects        int
	NumResources      int
	NumEdges          int
	MaxObjectDegree   int
	MaxResourceDegree int
}

// Verify checks a parsed fixture pair against the generator's guarantees:
// the listing is ROOT followed by fileObj0..fileObj{n-1}, edges are unique and
// sorted by (object, resource), and every object and resource has degree >= 1.
func Verify(objects []TreeObject, adjacencies []Adjacency) (*Stats, error) {
	if len(objects) == 0 {
		return nil, fmt.Errorf("%w: tree object listing is empty", ErrInvariantViolated)
	}
	if objects[0] != (TreeObject{Type: ObjectTypeRoot, Path: RootPath}) {
		return nil, fmt.Errorf("%w: first tree object is %s %q, want ROOT", ErrInvariantViolated, objects[0].Type, objects[0].Path)
	}
	for k := 1; k < len(objects); k++ {
		want := TreeObject{Type: ObjectTypeFile, Path: TreeObjectName(k - 1)}
		if objects[k] != want {
			return nil, fmt.Errorf("%w: tree object %d is %s %q, want %s %q",
				ErrInvariantViolated, k, objects[k].Type, objects[k].Path, want.Type, want.Path)
		}
	}

	stats := &Stats{NumObjects: len(objects) - 1, NumEdges: len(adjacencies)}
	objDegree := make([]int, stats.NumObjects)
	resDegree := make(map[int]int)

	var prev Edge
	for i, adj := range adjacencies {
		obj, ok := parseIndex(adj.TreePath, TreeObjectPrefix)
		if !ok || obj >= stats.NumObjects {
			return nil, fmt.Errorf("%w: edge %d references unknown tree object %q", ErrInvariantViolated, i, adj.TreePath)
		}
		res, ok := parseIndex(adj.FileResource, FileResourcePrefix)
		if !ok {
			return nil, fmt.Errorf("%w: edge %d references invalid file resource %q", ErrInvariantViolated, i, adj.FileResource)
		}

		e := Edge{Object: obj, Resource: res}
		if i > 0 {
			switch c := CompareEdges(prev, e); {
			case c == 0:
				return nil, fmt.Errorf("%w: duplicate edge %s,%s", ErrInvariantViolated, adj.TreePath, adj.FileResource)
			case c > 0:
				return nil, fmt.Errorf("%w: edge %d (%s,%s) out of order", ErrInvariantViolated, i, adj.TreePath, adj.FileResource)
			}
		}
		prev = e

		objDegree[obj]++
		resDegree[res]++
		stats.NumResources = max(stats.NumResources, res+1)
	}

	for i, d := range objDegree {
		if d == 0 {
			return nil, fmt.Errorf("%w: tree object %s has no edges", ErrInvariantViolated, TreeObjectName(i))
		}
		stats.MaxObjectDegree = max(stats.MaxObjectDegree, d)
	}
	for i := 0; i < stats.NumResources; i++ {
		d := resDegree[i]
		if d == 0 {
			return nil, fmt.Errorf("%w: file resource %s has no edges", ErrInvariantViolated, FileResourceName(i))
		}
		stats.MaxResourceDegree = max(stats.MaxResourceDegree, d)
	}

	return stats, nil
}

// VerifyDir reads and verifies the fixture pair written for edgeCount edges in dir
func VerifyDir(dir string, edgeCount int) (*Stats, error) {
	objects, err := readFile(filepath.Join(dir, TreeObjectsFilename(edgeCount)), ParseTreeObjects)
	if err != nil {
		return nil, err
	}
	adjacencies, err := readFile(filepath.Join(dir, FileResourcesFilename(edgeCount)), ParseAdjacencies)
	if err != nil {
		return nil, err
	}

	stats, err := Verify(objects, adjacencies)
	if err != nil {
		return nil, err
	}
	if stats.NumEdges != edgeCount {
		return nil, fmt.Errorf("%w: found %d edges, want %d", ErrInvariantViolated, stats.NumEdges, edgeCount)
	}
	return stats, nil
}

func readFile[T any](path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	records, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// parseIndex extracts i from prefix+i, rejecting signs and leading zeros
func parseIndex(name, prefix string) (int, bool) {
	digits, ok := strings.CutPrefix(name, prefix)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(digits)
	if err != nil || i < 0 || strconv.Itoa(i) != digits {
		return 0, false
	}
	return i, true
}
