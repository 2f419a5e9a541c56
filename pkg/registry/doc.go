// Package registry holds named items for the engine and the applications
// built on it.
//
// Registry is a small generic, thread-safe name → item store. Statements
// builds on it to scope statement sets per rendering context: a set
// registered globally is visible in every context, a context-scoped set only
// when that context is active and it shadows a global set of the same name.
package registry
