package whatis

// Tagger is implemented by values that report their own class token, for example
// "global" or "HTMLDivElement".
type Tagger interface {
	TypeTag() string
}

// ArrayLike is implemented by sequence types that are not slices or arrays.
type ArrayLike interface {
	Len() int
	Index(i int) any
}

// Enumerable is implemented by property bags that visit their own properties in key order.
type Enumerable interface {
	Range(f func(key string, value any) bool)
}

// Extensible, Sealer and Freezer let extendable values report their mutability.
type (
	Extensible interface {
		Extensible() bool
	}
	Sealer interface {
		Sealed() bool
	}
	Freezer interface {
		Frozen() bool
	}
)

// Property is an enumerable own property.
type Property struct {
	Key   string
	Value any
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

func (undefined) Truthy() bool { return false }

// Undefined marks an absent value, as opposed to an explicit nil.
var Undefined any = undefined{}
