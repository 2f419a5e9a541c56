// Package attrs turns element attributes into the three forms backends
// understand: valued attributes, bare boolean attributes and event
// subscriptions. It also carries the static caching markers.
//
// Attribute values are emitted verbatim. Escaping them is the caller's job.
package attrs
