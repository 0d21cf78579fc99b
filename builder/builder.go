// Package builder: the Build orchestrator and the topology constructors.
package builder

import (
	"errors"
	"fmt"

	"github.com/nivral/induct/graph"
)

// Sentinel errors for fixture construction.
var (
	// ErrTooFewNodes indicates a constructor was given a node count below
	// its topological minimum.
	ErrTooFewNodes = errors.New("builder: too few nodes for topology")

	// ErrNilConstructor indicates Build received a nil Constructor.
	ErrNilConstructor = errors.New("builder: nil constructor")
)

// Fixture is the concrete graph shape this package produces: undirected,
// node values carry the node's own id, labels carry a unit weight.
type Fixture = graph.Graph[graph.Undirected, int64, int64]

// Constructor applies one deterministic topology to a fixture and returns
// the grown fixture. Constructors validate their parameters and return
// sentinel errors; they never panic. Applying constructors with
// overlapping id ranges follows InsertNode's replace-wholesale contract.
type Constructor func(Fixture) (Fixture, error)

// Build creates an empty fixture and applies all constructors in order.
// Any constructor error is wrapped and returned immediately.
// Determinism: the same constructor sequence always yields an identical
// fixture.
func Build(cons ...Constructor) (Fixture, error) {
	g := graph.NewUndirected[int64, int64]()
	for i, fn := range cons {
		if fn == nil {
			return g, fmt.Errorf("build: constructor %d: %w", i, ErrNilConstructor)
		}
		var err error
		if g, err = fn(g); err != nil {
			return g, fmt.Errorf("build: %w", err)
		}
	}
	return g, nil
}

// addNodes inserts ids [0, n) with their id as value.
func addNodes(g Fixture, n int) Fixture {
	for id := int64(0); id < int64(n); id++ {
		g = g.InsertNode(id, id)
	}
	return g
}

// Path returns a constructor for the path 0–1–…–(n-1). Requires n ≥ 2.
func Path(n int) Constructor {
	return func(g Fixture) (Fixture, error) {
		if n < 2 {
			return g, fmt.Errorf("%w: path needs at least 2, got %d", ErrTooFewNodes, n)
		}
		g = addNodes(g, n)
		for id := int64(0); id+1 < int64(n); id++ {
			g = graph.InsertUndirectedEdge(g, id, id+1, 1)
		}
		return g, nil
	}
}

// Cycle returns a constructor for the cycle 0–1–…–(n-1)–0. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(g Fixture) (Fixture, error) {
		if n < 3 {
			return g, fmt.Errorf("%w: cycle needs at least 3, got %d", ErrTooFewNodes, n)
		}
		g = addNodes(g, n)
		for id := int64(0); id < int64(n); id++ {
			g = graph.InsertUndirectedEdge(g, id, (id+1)%int64(n), 1)
		}
		return g, nil
	}
}

// Complete returns a constructor for the clique on nodes [0, n).
// Requires n ≥ 1.
func Complete(n int) Constructor {
	return func(g Fixture) (Fixture, error) {
		if n < 1 {
			return g, fmt.Errorf("%w: clique needs at least 1, got %d", ErrTooFewNodes, n)
		}
		g = addNodes(g, n)
		for a := int64(0); a < int64(n); a++ {
			for b := a + 1; b < int64(n); b++ {
				g = graph.InsertUndirectedEdge(g, a, b, 1)
			}
		}
		return g, nil
	}
}

// Star returns a constructor for a star with center 0 and the given
// number of leaves 1…leaves. Requires leaves ≥ 1.
func Star(leaves int) Constructor {
	return func(g Fixture) (Fixture, error) {
		if leaves < 1 {
			return g, fmt.Errorf("%w: star needs at least 1 leaf, got %d", ErrTooFewNodes, leaves)
		}
		g = addNodes(g, leaves+1)
		for id := int64(1); id <= int64(leaves); id++ {
			g = graph.InsertUndirectedEdge(g, 0, id, 1)
		}
		return g, nil
	}
}
