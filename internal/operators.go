package internal

type operatorApply func(left, right value) (value, error)

var operators = map[TokenType]operatorApply{
	PLUS:    add,
	MINUS:   applyOpToIntegers(func(x, y int64) (int64, error) { return x - y, nil }),
	STAR:    applyOpToIntegers(func(x, y int64) (int64, error) { return x * y, nil }),
	SLASH:   applyOpToIntegers(floorDiv),
	PERCENT: applyOpToIntegers(floorMod),
	EQUAL_EQUAL: func(left, right value) (value, error) {
		return boolValue(left == right), nil
	},
	BANG_EQUAL: func(left, right value) (value, error) {
		return boolValue(left != right), nil
	},
	LESS: applyComparison(
		func(x, y int64) bool { return x < y },
		func(x, y string) bool { return x < y },
	),
	LESS_EQUAL: applyComparison(
		func(x, y int64) bool { return x <= y },
		func(x, y string) bool { return x <= y },
	),
	GREATER: applyComparison(
		func(x, y int64) bool { return x > y },
		func(x, y string) bool { return x > y },
	),
	GREATER_EQUAL: applyComparison(
		func(x, y int64) bool { return x >= y },
		func(x, y string) bool { return x >= y },
	),
}

// add concatenates textual forms as soon as one side is text
func add(left, right value) (value, error) {
	_, leftText := left.(textValue)
	_, rightText := right.(textValue)
	if leftText || rightText {
		return textValue(left.String() + right.String()), nil
	}
	return applyOpToIntegers(func(x, y int64) (int64, error) { return x + y, nil })(left, right)
}

func applyOpToIntegers(op func(x, y int64) (int64, error)) operatorApply {
	return func(left, right value) (value, error) {
		x, ok := left.(intValue)
		if !ok {
			return nil, errOnlyIntegers
		}
		y, ok := right.(intValue)
		if !ok {
			return nil, errOnlyIntegers
		}
		result, err := op(int64(x), int64(y))
		if err != nil {
			return nil, err
		}
		return intValue(result), nil
	}
}

func applyComparison(intOp func(x, y int64) bool, textOp func(x, y string) bool) operatorApply {
	return func(left, right value) (value, error) {
		switch x := left.(type) {
		case intValue:
			if y, ok := right.(intValue); ok {
				return boolValue(intOp(int64(x), int64(y))), nil
			}
		case textValue:
			if y, ok := right.(textValue); ok {
				return boolValue(textOp(string(x), string(y))), nil
			}
		}
		return nil, errMixedComparison
	}
}

// floorDiv rounds toward negative infinity: -7 / 2 is -4
func floorDiv(x, y int64) (int64, error) {
	if y == 0 {
		return 0, errDivisionByZero
	}
	q := x / y
	if x%y != 0 && (x < 0) != (y < 0) {
		q--
	}
	return q, nil
}

// floorMod takes the sign of the divisor: -7 % 2 is 1
func floorMod(x, y int64) (int64, error) {
	if y == 0 {
		return 0, errDivisionByZero
	}
	r := x % y
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r, nil
}
