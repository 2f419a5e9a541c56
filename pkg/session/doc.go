// Package session runs one begin/end execution against a statement registry.
//
// BeginExec selects every set visible in the requested context, binds each
// one to a fresh scope stack and resets its session-local state. Application
// code then pulls typed sets out of the session and drives them:
//
//	sess, err := session.BeginExec(reg, statement.StrGen)
//	html, err := session.Get[backend.HTML](sess, "html")
//	...
//	err = sess.End() // closes the session
//
// Only one session may be live at a time against sets that share backend
// state. That is not checked.
package session
