package arith

import "github.com/dmitrymomot/langkit/pkg/convert"

// CheckedAdd returns a+b and true, or zero and false when the sum overflows T.
func CheckedAdd[T convert.Integer](a, b T) (T, bool) {
	r := a + b
	if convert.IsSigned[T]() {
		if (b > 0 && r < a) || (b < 0 && r > a) {
			return 0, false
		}
		return r, true
	}
	if r < a {
		return 0, false
	}
	return r, true
}

// CheckedSub returns a-b and true, or zero and false when the difference overflows T.
func CheckedSub[T convert.Integer](a, b T) (T, bool) {
	r := a - b
	if convert.IsSigned[T]() {
		if (b > 0 && r > a) || (b < 0 && r < a) {
			return 0, false
		}
		return r, true
	}
	if b > a {
		return 0, false
	}
	return r, true
}

// CheckedMul returns a*b and true, or zero and false when the product overflows T.
func CheckedMul[T convert.Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if convert.IsSigned[T]() {
		// MIN * -1 wraps back to MIN, which the division check below cannot see.
		if isMinByMinusOne(a, b) || isMinByMinusOne(b, a) {
			return 0, false
		}
	}
	r := a * b
	if r/b != a {
		return 0, false
	}
	return r, true
}

// CheckedDiv returns a/b and true. It returns false when b is zero or when
// the quotient of MIN / -1 is not representable.
func CheckedDiv[T convert.Integer](a, b T) (T, bool) {
	if b == 0 || isMinByMinusOne(a, b) {
		return 0, false
	}
	return a / b, true
}

// CheckedRem returns a%b and true. It fails under the same conditions as CheckedDiv.
func CheckedRem[T convert.Integer](a, b T) (T, bool) {
	if b == 0 || isMinByMinusOne(a, b) {
		return 0, false
	}
	return a % b, true
}

// CheckedNeg returns -a and true. Negating MIN fails, as does negating any
// non-zero unsigned value.
func CheckedNeg[T convert.Integer](a T) (T, bool) {
	if convert.IsSigned[T]() {
		if a == convert.MinOf[T]() {
			return 0, false
		}
		return -a, true
	}
	if a != 0 {
		return 0, false
	}
	return 0, true
}

func isMinByMinusOne[T convert.Integer](a, b T) bool {
	if !convert.IsSigned[T]() {
		return false
	}
	var zero T
	// ^zero is -1 for signed types.
	return b == ^zero && a == convert.MinOf[T]()
}

// Add returns a+b or ErrOverflow.
func Add[T convert.Integer](a, b T) (T, error) {
	r, ok := CheckedAdd(a, b)
	if !ok {
		return 0, ErrOverflow
	}
	return r, nil
}

// Sub returns a-b or ErrOverflow.
func Sub[T convert.Integer](a, b T) (T, error) {
	r, ok := CheckedSub(a, b)
	if !ok {
		return 0, ErrOverflow
	}
	return r, nil
}

// Mul returns a*b or ErrOverflow.
func Mul[T convert.Integer](a, b T) (T, error) {
	r, ok := CheckedMul(a, b)
	if !ok {
		return 0, ErrOverflow
	}
	return r, nil
}

// Div returns a/b, ErrDivisionByZero when b is zero, or ErrOverflow for MIN / -1.
func Div[T convert.Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	r, ok := CheckedDiv(a, b)
	if !ok {
		return 0, ErrOverflow
	}
	return r, nil
}

// AddTwo returns a + 2.
func AddTwo(a int32) int32 {
	return a + 2
}
