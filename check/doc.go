// Package check derives the checked and indeterminate state of a checkbox
// tree from an explicit set of checked keys.
//
// Two steps cooperate:
//  1. Expansion turns the explicit keys into every key they imply. Checking
//     a node checks each enabled descendant; a disabled node is a barrier
//     that is never checked by an ancestor and stops propagation below it.
//     A disabled node listed explicitly stays checked.
//  2. Aggregation walks the levels from the deepest to the root and
//     classifies every enabled non-leaf node as checked (all enabled
//     children checked), indeterminate (some checked) or neither.
//
// Keys unknown to the index are ignored. All operations are pure reads of
// the index and safe to call concurrently on an index nobody mutates.
package check
