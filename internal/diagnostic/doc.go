// Package diagnostic provides structured warnings and errors found while
// checking a tree index against its structural invariants.
//
// Diagnostics are collected rather than returned on the first problem, so a
// caller can see every defect of a malformed index at once.
package diagnostic
