package types

// Promotable reports whether from widens to to. Promotion only exists
// between unmodified numerics of the same base when it does not lose
// precision: i8 → i16 → i32 → i64, the same for unsigned, and f32 → f64.
// Every type promotes to itself.
func Promotable(from, to Data) bool {
	if from.Equal(to) {
		return true
	}

	if !from.IsNumeric() || !to.IsNumeric() {
		return false
	}

	if from.Base != to.Base {
		return false
	}

	return from.Width <= to.Width
}

// BinaryConvert finds the common type of two operands: whichever of a, b the
// other promotes to. The second result is false when neither direction
// works; the caller reports mismatched types and carries on with the error
// type.
func BinaryConvert(a, b Data) (Data, bool) {
	// An operand that already errored absorbs the other silently.
	if a.IsError() {
		return b, true
	}

	if b.IsError() {
		return a, true
	}

	if Promotable(a, b) {
		return b, true
	}

	if Promotable(b, a) {
		return a, true
	}

	return ErrorType(), false
}
