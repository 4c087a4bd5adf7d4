// Package diagnostic provides structured problem reports for the binding
// layer: prop collisions, unmappable fields, and invalid action creators.
//
// Key capabilities:
//   - Collision reports naming both contributing prop sources
//   - Shape mismatch reports for the default reflective merge
//   - Aggregation of several problems into a single error
package diagnostic
