// Package converters provides adapters from core.Graph to external graph
// tooling:
//   - gonum/graph: ToGonum builds a simple.WeightedUndirectedGraph with a
//     stable name ↔ int64 ID mapping (IDs follow vertex insertion order).
//   - Graphviz: WriteDOT renders the map as a DOT document with city
//     positions and route distances, ready for `neato -n`.
//
// Conversion is one-way; the core graph stays the source of truth.
package converters
