// Package content defines the closed parsed-value variant the inference
// engine pattern-matches on. Values are produced once at the data-parsing
// boundary (the file browser) so the core never performs runtime type tests
// against decoder-specific representations.
package content

// Kind discriminates the Value variant.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindBool
	KindNumber
	KindObject
	KindArray
)

// Member is one key/value entry of an object Value. Objects keep their
// members in encounter order so inferred fields mirror the source document.
type Member struct {
	Key   string
	Value Value
}

// Value is a parsed document node: a scalar, an ordered object, or an array.
// The zero Value is null.
type Value struct {
	kind    Kind
	str     string
	num     float64
	isInt   bool
	boolean bool
	members []Member
	items   []Value
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is the null variant.
func (v Value) IsNull() bool { return v.kind == KindNull }

// String returns the string payload. Valid only for KindString.
func (v Value) String() string { return v.str }

// Bool returns the boolean payload. Valid only for KindBool.
func (v Value) Bool() bool { return v.boolean }

// Number returns the numeric payload. Valid only for KindNumber.
func (v Value) Number() float64 { return v.num }

// IsInt reports whether a number value was integral in the source syntax.
func (v Value) IsInt() bool { return v.isInt }

// Members returns the ordered object entries. Valid only for KindObject.
func (v Value) Members() []Member { return v.members }

// Items returns the array elements. Valid only for KindArray.
func (v Value) Items() []Value { return v.items }

// Null returns the null value.
func Null() Value { return Value{} }

// StringValue wraps a string scalar.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// BoolValue wraps a boolean scalar.
func BoolValue(b bool) Value { return Value{kind: KindBool, boolean: b} }

// IntValue wraps an integral number.
func IntValue(n int64) Value { return Value{kind: KindNumber, num: float64(n), isInt: true} }

// FloatValue wraps a floating-point number.
func FloatValue(f float64) Value { return Value{kind: KindNumber, num: f} }

// ObjectValue wraps ordered object members.
func ObjectValue(members ...Member) Value { return Value{kind: KindObject, members: members} }

// ArrayValue wraps array elements.
func ArrayValue(items ...Value) Value { return Value{kind: KindArray, items: items} }
