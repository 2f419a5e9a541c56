// Package style renders grugui's terminal output.
//
// Styles have semantic names (Title, Error, Tag, ...) and are defined in the
// embedded styles.yaml with adaptive colors. Text can carry inline markup:
//
//	[Name]counter[/Name] [Muted]a tiny demo[/Muted]
//
// In plain mode (pipes, NO_COLOR, ASCII terminals) the markup is stripped
// and nothing is styled.
package style
