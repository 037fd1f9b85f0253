// Package graph serializes resource dependency graphs as JSON.
//
// The JSON format mirrors the declared resources one to one: each
// resource becomes a node carrying its kind, effective file name and
// remote URL, and each dependency becomes a directed edge from the
// dependent to its dependency. Dependency names with no matching
// declaration are emitted as placeholder nodes flagged as missing, so
// a graph export works even when resolution would fail.
//
// Output is deterministic: nodes sort by ID and edges by endpoint
// pair, independent of declaration order.
package graph
