package ccli

import (
	"fmt"
	"strconv"

	"github.com/cmdtree/ccli/pkg/atoi"
)

// Kind identifies the type of value an [Option] holds.
type Kind int

const (
	// KindBool options take no value token; matching the option name sets them.
	KindBool Kind = iota
	// KindInt options consume the next token and read it leniently as a decimal integer.
	KindInt
	// KindString options consume the next token verbatim.
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= KindBool && k <= KindString
}

// Value is the value held by an [Option]. Its dynamic type is always one of [BoolValue],
// [IntValue] or [StringValue], matching the option's [Kind].
type Value interface {
	Kind() Kind
	String() string

	value()
}

// BoolValue is the value of a [KindBool] option.
type BoolValue bool

// IntValue is the value of a [KindInt] option.
type IntValue int

// StringValue is the value of a [KindString] option.
type StringValue string

func (BoolValue) Kind() Kind   { return KindBool }
func (IntValue) Kind() Kind    { return KindInt }
func (StringValue) Kind() Kind { return KindString }

func (v BoolValue) String() string   { return strconv.FormatBool(bool(v)) }
func (v IntValue) String() string    { return strconv.Itoa(int(v)) }
func (v StringValue) String() string { return string(v) }

func (BoolValue) value()   {}
func (IntValue) value()    {}
func (StringValue) value() {}

func zeroValue(k Kind) Value {
	switch k {
	case KindInt:
		return IntValue(0)
	case KindString:
		return StringValue("")
	default:
		return BoolValue(false)
	}
}

// Option is a typed, named value scoped to a single [Command]. Options are only changed by
// [Parse] and [Command.Reset].
type Option struct {
	name  string
	kind  Kind
	value Value
	set   bool
}

// NewOption returns an unset option of the given kind. It fails if kind is not a defined [Kind].
func NewOption(kind Kind, name string) (*Option, error) {
	if !kind.Valid() {
		return nil, NewError(ErrPrecondition, fmt.Errorf("option %q: invalid kind %s", name, kind))
	}
	return newOption(kind, name), nil
}

// NewBoolOption returns an unset [KindBool] option.
func NewBoolOption(name string) *Option { return newOption(KindBool, name) }

// NewIntOption returns an unset [KindInt] option.
func NewIntOption(name string) *Option { return newOption(KindInt, name) }

// NewStringOption returns an unset [KindString] option.
func NewStringOption(name string) *Option { return newOption(KindString, name) }

func newOption(kind Kind, name string) *Option {
	return &Option{
		name:  name,
		kind:  kind,
		value: zeroValue(kind),
	}
}

// Name returns the token that selects this option.
func (o *Option) Name() string { return o.name }

// Kind returns the option kind.
func (o *Option) Kind() Kind { return o.kind }

// Value returns the current value. Before the option is set it is the zero value of its kind.
func (o *Option) Value() Value { return o.value }

// IsSet reports whether a parse has assigned this option.
func (o *Option) IsSet() bool { return o.set }

// Bool returns the value of a [KindBool] option. ok is false for other kinds.
func (o *Option) Bool() (v bool, ok bool) {
	b, ok := o.value.(BoolValue)
	return bool(b), ok
}

// Int returns the value of a [KindInt] option. ok is false for other kinds.
func (o *Option) Int() (v int, ok bool) {
	i, ok := o.value.(IntValue)
	return int(i), ok
}

// Str returns the value of a [KindString] option. ok is false for other kinds.
func (o *Option) Str() (v string, ok bool) {
	s, ok := o.value.(StringValue)
	return string(s), ok
}

func (o *Option) String() string {
	return fmt.Sprintf("%s(%s)=%s", o.name, o.kind, o.value)
}

// takesValue reports whether the option consumes the token that follows it.
func (o *Option) takesValue() bool {
	return o.kind != KindBool
}

// markSet sets a boolean option.
func (o *Option) markSet() {
	o.value = BoolValue(true)
	o.set = true
}

// assign stores a value token for an int or string option.
func (o *Option) assign(token string) {
	switch o.kind {
	case KindInt:
		o.value = IntValue(atoi.Parse(token))
	case KindString:
		o.value = StringValue(token)
	}
	o.set = true
}

func (o *Option) reset() {
	o.value = zeroValue(o.kind)
	o.set = false
}
