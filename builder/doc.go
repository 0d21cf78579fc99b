// Package builder assembles deterministic undirected graph fixtures for
// tests, benchmarks, and examples.
//
// One orchestrator, Build(cons...), starts from an empty fixture and
// applies constructors in order; each Constructor is a pure function from
// fixture to fixture, so partially applied pipelines can be kept and
// reused like any other value.
//
// Constructors:
//
//	Path(n)      — 0–1–…–(n-1)            n ≥ 2
//	Cycle(n)     — ring over [0, n)        n ≥ 3
//	Complete(n)  — clique over [0, n)      n ≥ 1
//	Star(leaves) — center 0, leaves 1…n    leaves ≥ 1
//
// Node values carry the node's own id; edge labels carry a unit weight.
// Same constructor sequence, same fixture — always.
//
// Errors:
//
//	ErrTooFewNodes    – node count below the topology's minimum
//	ErrNilConstructor – Build received a nil Constructor
package builder
