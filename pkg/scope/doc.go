// Package scope implements the stack of pending close-actions shared by every
// statement set active in a session.
//
// Each compound construct (an element, a style rule, the session itself)
// pushes one Action when it opens. End pops the innermost action and hands it
// back to the statement set that pushed it, so the stack depth always mirrors
// the nesting depth of begin/end calls. The base of the stack is a sentinel
// that can never be popped.
package scope
