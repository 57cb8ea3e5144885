package extractly

import "errors"

var (
	//ErrInvalidFormat is returned when a format template fails to compile
	ErrInvalidFormat = errors.New("invalid format")

	//ErrNoMatch is returned when a compiled template does not match the subject text
	ErrNoMatch = errors.New("no match found")

	//ErrTypeConversion is returned when captured text fails semantic conversion
	ErrTypeConversion = errors.New("type conversion failed")

	//ErrNoSuchField is returned when a result is accessed with an unknown field name or index
	ErrNoSuchField = errors.New("no such field")
)
