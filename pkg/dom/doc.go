// Package dom holds the live tree the DOM backend reconciles into.
//
// Nodes are golang.org/x/net/html nodes. Event subscriptions cannot live on
// those nodes, so they are kept in an Events registry keyed by node; the
// registry dispatches with bubbling from the target up to the root.
package dom
