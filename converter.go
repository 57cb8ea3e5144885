package extractly

import (
	"fmt"
	"strconv"
)

type (
	//Converter converts captured text into a typed value; Pattern returns
	//the matching sub-pattern, empty pattern falls back to the generic
	//non-greedy any-text sub-pattern
	Converter interface {
		Pattern() string
		Convert(text string) (Value, error)
	}

	//ConvertFunc adapts a function into a conversion
	ConvertFunc func(text string) (Value, error)

	//Converters represents a caller-owned conversion key to converter table
	Converters map[string]Converter
)

//Lookup returns a converter for the supplied key, consulting this table
//first and the built-in table next, or nil when the key matches neither
func (c Converters) Lookup(key string) Converter {
	if converter, ok := c[key]; ok {
		return converter
	}
	return builtins[key]
}

type customConverter struct {
	pattern string
	convert ConvertFunc
}

func (c *customConverter) Pattern() string {
	return c.pattern
}

func (c *customConverter) Convert(text string) (Value, error) {
	return c.convert(text)
}

//NewConverter creates a converter with the supplied matching sub-pattern
//and conversion func; the sub-pattern must not contain capturing groups
func NewConverter(pattern string, convert ConvertFunc) Converter {
	return &customConverter{pattern: pattern, convert: convert}
}

type intConverter struct{}

func (c intConverter) Pattern() string {
	return `[-+]?\d+`
}

func (c intConverter) Convert(text string) (Value, error) {
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: integer %q", ErrTypeConversion, text)
	}
	return IntValue(value), nil
}

type floatConverter struct{}

func (c floatConverter) Pattern() string {
	return `[-+]?\d*\.?\d+(?:[eE][-+]?\d+)?`
}

func (c floatConverter) Convert(text string) (Value, error) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: float %q", ErrTypeConversion, text)
	}
	return FloatValue(value), nil
}

type wordConverter struct{}

func (c wordConverter) Pattern() string {
	return `\w+`
}

func (c wordConverter) Convert(text string) (Value, error) {
	return TextValue(text), nil
}

//anyConverter backs fields with no conversion key
type anyConverter struct{}

func (c anyConverter) Pattern() string {
	return ""
}

func (c anyConverter) Convert(text string) (Value, error) {
	return TextValue(text), nil
}

//builtins is the process-wide conversion table; initialized once,
//never mutated, callers override entries with their own Converters table
var builtins = Converters{
	KeyInteger: intConverter{},
	"d":        intConverter{},
	KeyFloat:   floatConverter{},
	"f":        floatConverter{},
	KeyWord:    wordConverter{},
	"w":        wordConverter{},

	KeyGeneric:  genericTime,
	"tg":        genericTime,
	KeyAmerican: americanTime,
	"ta":        americanTime,
	KeyEmail:    emailTime,
	"te":        emailTime,
	KeyHTTPLog:  httpLogTime,
	"th":        httpLogTime,
	KeySyslog:   syslogTime,
	"ts":        syslogTime,
	KeyISO8601:  iso8601Time,
	"ti":        iso8601Time,
}

//Built-in conversion keys; each long key has a single letter legacy alias
const (
	KeyInteger  = "integer"
	KeyFloat    = "float"
	KeyWord     = "word"
	KeyGeneric  = "generic"
	KeyAmerican = "american"
	KeyEmail    = "email"
	KeyHTTPLog  = "http-log"
	KeySyslog   = "syslog"
	KeyISO8601  = "iso8601"
)
