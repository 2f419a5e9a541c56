// Package cssval provides CSS lengths and colors with the arithmetic style
// sheets need. Values format themselves with String, so they can be passed
// straight to a css statement set as property values.
package cssval
