package attrs

const (
	// StaticName marks an element whose subtree is built once and cached
	StaticName = "static"
	// StaticKeyName names the cache entry of a static element
	StaticKeyName = "staticKey"
	// EventPrefix starts the name of an event subscription attribute
	EventPrefix = "on"
)

// Attr is one attribute as passed by application code
type Attr struct {
	Name  string
	Value interface{}
}

// Attrs keeps attributes in declaration order
type Attrs []Attr

// Of builds attributes from name/value pairs. A trailing name without a value
// is dropped.
func Of(pairs ...interface{}) Attrs {
	as := make(Attrs, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		name, _ := pairs[i].(string)
		as = append(as, Attr{Name: name, Value: pairs[i+1]})
	}
	return as
}

// Str is a valued attribute
func Str(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// Bool is a boolean attribute
func Bool(name string, on bool) Attr {
	return Attr{Name: name, Value: on}
}

// On subscribes fn to event, "click" becoming the "onclick" attribute
func On(event string, fn interface{}) Attr {
	return Attr{Name: EventPrefix + event, Value: fn}
}

// Static marks the element as a static subtree
func Static() Attr {
	return Attr{Name: StaticName, Value: true}
}

// StaticKey gives a static subtree an explicit cache key
func StaticKey(key string) Attr {
	return Attr{Name: StaticKeyName, Value: key}
}

// Get returns the last value set for name
func (as Attrs) Get(name string) (interface{}, bool) {
	for i := len(as) - 1; i >= 0; i-- {
		if as[i].Name == name {
			return as[i].Value, true
		}
	}
	return nil, false
}

// With returns a copy of as with extra appended
func (as Attrs) With(extra ...Attr) Attrs {
	out := make(Attrs, 0, len(as)+len(extra))
	out = append(out, as...)
	return append(out, extra...)
}
