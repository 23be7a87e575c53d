// Package types defines the canonical type representation the typechecker
// assigns to every expression.
package types

import (
	"fmt"
	"slices"
	"strings"
)

// Modifier is one reference/pointer/array marker, applied outside-in. The
// type written `&mut *[]i32` carries the stack [MutRef, Ptr, Array] over the
// base i32.
type Modifier uint8

const (
	Ref Modifier = iota
	MutRef
	Ptr
	MutPtr
	Array
)

// Base is the kind of a type once all modifiers are peeled off. Implied is
// first so the zero Data value reads as "not yet typed".
type Base uint8

const (
	BaseImplied Base = iota
	BaseBool
	BaseSignedInt
	BaseUnsignedInt
	BaseFloat
	BaseUserDefined
	BaseVoid
	BaseError
)

// Data is a canonical type value: a modifier stack over a base, with the
// base's payload (bit width for numerics, name for user-defined types).
// Implied, void and error carry neither payload nor modifiers.
type Data struct {
	Modifiers []Modifier
	Base      Base
	Width     int
	Name      string
}

// Bool returns the boolean type. Width is 1.
func Bool() Data {
	return Data{Base: BaseBool, Width: 1}
}

// SignedInt returns the signed integer type of the given width.
func SignedInt(width int) Data {
	return Data{Base: BaseSignedInt, Width: width}
}

// UnsignedInt returns the unsigned integer type of the given width.
func UnsignedInt(width int) Data {
	return Data{Base: BaseUnsignedInt, Width: width}
}

// Float returns the floating-point type of the given width.
func Float(width int) Data {
	return Data{Base: BaseFloat, Width: width}
}

// UserDefined returns the named user type. Names compare byte-wise.
func UserDefined(name string) Data {
	return Data{Base: BaseUserDefined, Name: name}
}

// Implied returns the marker for an annotation the user left out.
func Implied() Data {
	return Data{Base: BaseImplied}
}

// Void returns the type of things that have no value.
func Void() Data {
	return Data{Base: BaseVoid}
}

// ErrorType returns the propagating error type. It compares equal to every
// type so a single reported error never cascades.
func ErrorType() Data {
	return Data{Base: BaseError}
}

// Is reports whether the base is base.
func (d Data) Is(base Base) bool {
	return d.Base == base
}

// IsNot reports whether the base is anything but base.
func (d Data) IsNot(base Base) bool {
	return d.Base != base
}

// IsError reports whether d is the error type.
func (d Data) IsError() bool {
	return d.Base == BaseError
}

// IsImplied reports whether d is the implied marker.
func (d Data) IsImplied() bool {
	return d.Base == BaseImplied
}

// IsNumeric reports whether d is an unmodified numeric type.
func (d Data) IsNumeric() bool {
	if len(d.Modifiers) != 0 {
		return false
	}

	return d.Base == BaseSignedInt || d.Base == BaseUnsignedInt || d.Base == BaseFloat
}

// IsPointer reports whether the outermost modifier is a pointer.
func (d Data) IsPointer() bool {
	if len(d.Modifiers) == 0 {
		return false
	}

	return d.Modifiers[0] == Ptr || d.Modifiers[0] == MutPtr
}

// WithPrefix returns d with mod pushed onto the outside of the modifier
// stack. The receiver is not mutated.
func (d Data) WithPrefix(mod Modifier) Data {
	mods := make([]Modifier, 0, len(d.Modifiers)+1)
	mods = append(mods, mod)
	mods = append(mods, d.Modifiers...)

	out := d
	out.Modifiers = mods
	return out
}

// StripOutermost returns d without its outermost modifier.
func (d Data) StripOutermost() Data {
	out := d
	out.Modifiers = slices.Clone(d.Modifiers[1:])
	return out
}

// Equal compares two types. The error type is a top: it compares equal to
// everything, which keeps one reported error from spawning more. Otherwise
// equality is memberwise over modifiers, base and payload.
func (d Data) Equal(other Data) bool {
	if d.IsError() || other.IsError() {
		return true
	}

	return d.Base == other.Base &&
		d.Width == other.Width &&
		d.Name == other.Name &&
		slices.Equal(d.Modifiers, other.Modifiers)
}

// String renders the type the way it is written in source, e.g. `&mut *[]i32`.
func (d Data) String() string {
	var b strings.Builder

	for _, mod := range d.Modifiers {
		switch mod {
		case Ref:
			b.WriteString("&")
		case MutRef:
			b.WriteString("&mut ")
		case Ptr:
			b.WriteString("*")
		case MutPtr:
			b.WriteString("*mut ")
		case Array:
			b.WriteString("[]")
		}
	}

	switch d.Base {
	case BaseBool:
		b.WriteString("bool")
	case BaseSignedInt:
		fmt.Fprintf(&b, "i%d", d.Width)
	case BaseUnsignedInt:
		fmt.Fprintf(&b, "u%d", d.Width)
	case BaseFloat:
		fmt.Fprintf(&b, "f%d", d.Width)
	case BaseUserDefined:
		b.WriteString(d.Name)
	case BaseImplied:
		b.WriteString("<implied>")
	case BaseVoid:
		b.WriteString("void")
	case BaseError:
		b.WriteString("<error-type>")
	}

	return b.String()
}
