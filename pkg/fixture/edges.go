package fixture

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
)

// DefaultEdgeCount is the size the database fixtures are normally produced at
const DefaultEdgeCount = 50_000

// EdgeGenerator produces a random bipartite edge list between tree objects and
// file resources. No edge repeats and every object and resource it creates has
// degree >= 1.
//
// Each draw ranges over [0, bound] on both sides, where bound is one past the
// largest index accepted so far. Low indices stay selectable for every draw, so
// their degrees are much larger than those of high indices. The skew is
// intentional and must not be normalized.
type EdgeGenerator struct {
	rand *rand.Rand

	// Progress, if set, is called after every accepted edge with the number
	// of edges accepted so far.
	Progress func(accepted int)
}

// NewEdgeGenerator returns a generator drawing from r
func NewEdgeGenerator(r *rand.Rand) *EdgeGenerator {
	g := &EdgeGenerator{}
	g.Init(r)
	return g
}

// Init sets the random source. Pass a seeded source for reproducible output.
func (g *EdgeGenerator) Init(r *rand.Rand) {
	g.rand = r
}

func (g *EdgeGenerator) Description() string {
	return "Tree object / file resource adjacencies: fileObj{i},fileRes{j}"
}

func (g *EdgeGenerator) DefaultCount() int64 {
	return DefaultEdgeCount
}

// Generate draws exactly n unique edges and returns them sorted by
// (object, resource).
func (g *EdgeGenerator) Generate(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeEdgeCount, n)
	}
	if g.rand == nil {
		return nil, fmt.Errorf("edge generator: random source not initialized")
	}

	edges := make([]Edge, 0, n)
	seen := make(map[Edge]struct{}, n)
	numObj, numRes := 0, 0

	for len(edges) < n {
		e := Edge{
			Object:   g.rand.IntN(numObj + 1),
			Resource: g.rand.IntN(numRes + 1),
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		edges = append(edges, e)
		numObj = max(numObj, e.Object+1)
		numRes = max(numRes, e.Resource+1)

		if g.Progress != nil {
			g.Progress(len(edges))
		}
	}

	slices.SortFunc(edges, CompareEdges)

	return &Graph{
		NumObjects:   numObj,
		NumResources: numRes,
		Edges:        edges,
	}, nil
}

// CompareEdges orders edges by object index, then resource index
func CompareEdges(a, b Edge) int {
	return cmp.Or(
		cmp.Compare(a.Object, b.Object),
		cmp.Compare(a.Resource, b.Resource),
	)
}
