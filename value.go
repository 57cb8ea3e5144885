package extractly

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

//Kind represents a converted value kind
type Kind int

const (
	//KindText represents a raw text value
	KindText Kind = iota
	//KindInt represents a signed 64-bit integer value
	KindInt
	//KindFloat represents a 64-bit floating point value
	KindFloat
	//KindTime represents a timestamp value
	KindTime
)

//String returns kind name
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindTime:
		return "time"
	}
	return "text"
}

//Value represents a converted field value, a closed variant over
//text, integer, float and timestamp shapes with checked accessors
type Value struct {
	kind Kind
	text string
	i    int64
	f    float64
	t    time.Time
}

//TextValue creates a text value
func TextValue(v string) Value {
	return Value{kind: KindText, text: v}
}

//IntValue creates an integer value
func IntValue(v int64) Value {
	return Value{kind: KindInt, i: v}
}

//FloatValue creates a float value
func FloatValue(v float64) Value {
	return Value{kind: KindFloat, f: v}
}

//TimeValue creates a timestamp value
func TimeValue(v time.Time) Value {
	return Value{kind: KindTime, t: v}
}

//Kind returns value kind
func (v Value) Kind() Kind {
	return v.kind
}

//Text returns a text value or an error on kind mismatch
func (v Value) Text() (string, error) {
	if v.kind != KindText {
		return "", fmt.Errorf("expected text value, had %v", v.kind)
	}
	return v.text, nil
}

//Int returns an integer value or an error on kind mismatch
func (v Value) Int() (int64, error) {
	if v.kind != KindInt {
		return 0, fmt.Errorf("expected int value, had %v", v.kind)
	}
	return v.i, nil
}

//Float64 returns a float value or an error on kind mismatch
func (v Value) Float64() (float64, error) {
	if v.kind != KindFloat {
		return 0, fmt.Errorf("expected float value, had %v", v.kind)
	}
	return v.f, nil
}

//Time returns a timestamp value or an error on kind mismatch
func (v Value) Time() (time.Time, error) {
	if v.kind != KindTime {
		return time.Time{}, fmt.Errorf("expected time value, had %v", v.kind)
	}
	return v.t, nil
}

//Interface returns the underlying value
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindTime:
		return v.t
	}
	return v.text
}

//String returns value text representation
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindTime:
		return v.t.Format(time.RFC3339)
	}
	return v.text
}

var timeType = reflect.TypeOf(time.Time{})
