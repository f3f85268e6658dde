package internal

import "strconv"

// value is a runtime value. The only implementations are intValue and
// textValue; comparisons produce intValue 1 or 0.
type value interface {
	String() string
	runtimeValue()
}

type intValue int64

type textValue string

func (n intValue) String() string {
	return strconv.FormatInt(int64(n), 10)
}

func (n intValue) runtimeValue() {}

func (s textValue) String() string {
	return string(s)
}

func (s textValue) runtimeValue() {}

func boolValue(b bool) intValue {
	if b {
		return 1
	}
	return 0
}
