// Package export writes rendered pages to disk as a static site.
//
// The files are planned first (a flat list of relative paths and contents)
// and then executed as one synthfs pipeline on an OS filesystem:
//
//	dist/
//	  index.html      list of apps
//	  counter.html    page linking counter.css
//	  counter.css
//	  ...
//
// Dry runs only log what would be written. Existing files are refused
// unless Force is set.
package export
