// Package statement defines statement sets: named bundles of tree-building
// operations that share one scope stack during a session.
//
// A set is bound to the session's stack when the session begins. Every
// "begin" operation of a set must register exactly one close-action through
// its binding, and End on the binding closes the innermost open compound of
// whichever set opened it.
package statement
