// Package node defines the checkbox tree data model: nodes, the lookup index
// over them, and a depth-first walk that a visitor can prune.
//
// Trees are assembled with NewLeaf and NewBranch, which link parent
// back-references, and indexed with NewIndex. The index may also be built
// by other code; Validate reports where such an index breaks the structural
// invariants the check package relies on.
package node
