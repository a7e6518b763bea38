package main

import (
	"fmt"
	"strconv"
)

// Value is a tagged HL runtime value: either IntegerValue or DoubleValue.
// Mixing the two in arithmetic promotes the result to DoubleValue;
// narrowing back to integer never happens implicitly.
type Value interface {
	fmt.Stringer
}

type IntegerValue int64

func (i IntegerValue) String() string {
	return strconv.FormatInt(int64(i), 10)
}

type DoubleValue float64

// String prints the shortest decimal that round-trips, so doubles keep
// their full fractional precision and never pick up trailing zeros.
func (d DoubleValue) String() string {
	return strconv.FormatFloat(float64(d), 'f', -1, 64)
}

func asDouble(v Value) DoubleValue {
	switch v := v.(type) {
	case IntegerValue:
		return DoubleValue(v)
	case DoubleValue:
		return v
	default:
		panic(fmt.Sprintf("unexpected value type: %T", v))
	}
}

func addValues(left, right Value) Value {
	if l, ok := left.(IntegerValue); ok {
		if r, ok := right.(IntegerValue); ok {
			return l + r
		}
	}
	return asDouble(left) + asDouble(right)
}

func subtractValues(left, right Value) Value {
	if l, ok := left.(IntegerValue); ok {
		if r, ok := right.(IntegerValue); ok {
			return l - r
		}
	}
	return asDouble(left) - asDouble(right)
}

func compareValues(operator TokenType, left, right Value) bool {
	if l, ok := left.(IntegerValue); ok {
		if r, ok := right.(IntegerValue); ok {
			return compareOrdered(operator, l, r)
		}
	}
	return compareOrdered(operator, asDouble(left), asDouble(right))
}

func compareOrdered[T IntegerValue | DoubleValue](operator TokenType, left, right T) bool {
	switch operator {
	case TokenLess:
		return left < right
	case TokenGreater:
		return left > right
	case TokenEqualEqual:
		return left == right
	case TokenBangEqual:
		return left != right
	default:
		panic(fmt.Sprintf("unexpected comparison operator: %v", operator))
	}
}
