package fixture

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
)

// Options configures a single fixture run
type Options struct {
	EdgeCount int
	OutputDir string

	// Progress is passed through to the EdgeGenerator
	Progress func(accepted int)
}

// Result describes the files written by Create
type Result struct {
	TreeObjectsPath   string
	FileResourcesPath string
	NumObjects        int
	NumResources      int
	NumEdges          int
}

// Create generates opts.EdgeCount edges from r and writes the file-resource and
// tree-object listings into opts.OutputDir. Any failure aborts the run; a file
// written before the failure is not removed.
func Create(opts Options, r *rand.Rand) (*Result, error) {
	gen := NewEdgeGenerator(r)
	gen.Progress = opts.Progress

	graph, err := gen.Generate(opts.EdgeCount)
	if err != nil {
		return nil, err
	}

	objectLines := FormatObjects(graph.NumObjects)
	edgeLines := FormatEdges(graph.Edges)

	res := &Result{
		TreeObjectsPath:   filepath.Join(opts.OutputDir, TreeObjectsFilename(opts.EdgeCount)),
		FileResourcesPath: filepath.Join(opts.OutputDir, FileResourcesFilename(opts.EdgeCount)),
		NumObjects:        graph.NumObjects,
		NumResources:      graph.NumResources,
		NumEdges:          len(graph.Edges),
	}

	if err := WriteLines(res.FileResourcesPath, edgeLines); err != nil {
		return nil, fmt.Errorf("write file resources: %w", err)
	}
	if err := WriteLines(res.TreeObjectsPath, objectLines); err != nil {
		return nil, fmt.Errorf("write tree objects: %w", err)
	}

	return res, nil
}
