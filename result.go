package extractly

import "fmt"

//Result represents one successful match; immutable, all captured text is
//copied out of the subject string
type Result struct {
	fields []*Field
	index  map[string]int
	raw    []string
	values []Value
}

//Len returns the field count
func (r *Result) Len() int {
	return len(r.raw)
}

//Raw returns the i-th field captured text by appearance order
func (r *Result) Raw(index int) (string, error) {
	if index < 0 || index >= len(r.raw) {
		return "", fmt.Errorf("%w: index %v, fields: %v", ErrNoSuchField, index, len(r.raw))
	}
	return r.raw[index], nil
}

//Value returns the i-th field converted value by appearance order
func (r *Result) Value(index int) (Value, error) {
	if index < 0 || index >= len(r.values) {
		return Value{}, fmt.Errorf("%w: index %v, fields: %v", ErrNoSuchField, index, len(r.values))
	}
	return r.values[index], nil
}

//Named returns a field converted value by identifier; the identifier is
//normalized first, so both user.name and user__name address the same field
func (r *Result) Named(name string) (Value, error) {
	index, ok := r.index[normalizePath(name)]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrNoSuchField, name)
	}
	return r.values[index], nil
}

//NamedRaw returns a field captured text by identifier
func (r *Result) NamedRaw(name string) (string, error) {
	index, ok := r.index[normalizePath(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoSuchField, name)
	}
	return r.raw[index], nil
}

//Positional returns captured text of all fields in appearance order
func (r *Result) Positional() []string {
	result := make([]string, len(r.raw))
	copy(result, r.raw)
	return result
}

//NamedValues returns captured text keyed by normalized identifier
func (r *Result) NamedValues() map[string]string {
	result := make(map[string]string, len(r.index))
	for name, index := range r.index {
		result[name] = r.raw[index]
	}
	return result
}

//Converted returns converted values keyed by field key: the normalized
//identifier, or the stringified positional index for anonymous fields
func (r *Result) Converted() map[string]Value {
	result := make(map[string]Value, len(r.fields))
	for i, field := range r.fields {
		result[field.key()] = r.values[i]
	}
	return result
}
