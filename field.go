package extractly

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

//Field represents one template field slot in appearance order
type Field struct {
	Index int    //appearance position among all fields, starting at 0
	Path  string //identifier as written, e.g. user.name or items[0]
	Name  string //normalized capture label, empty for positional fields
	Key   string //conversion key, empty when absent
	conv  Converter
}

//key returns the converted-value key: the normalized name, or the
//stringified positional index for anonymous fields
func (f *Field) key() string {
	if f.Name != "" {
		return f.Name
	}
	return strconv.Itoa(f.Index)
}

//pattern returns the field matching sub-pattern
func (f *Field) pattern() string {
	if sub := f.conv.Pattern(); sub != "" {
		return sub
	}
	return `.*?`
}

var identifierMatch = regexp.MustCompile(`^[A-Za-z_]\w*(?:\.\w+|\[\w+\])*$`)

var pathNormalizer = strings.NewReplacer(".", "__", "[", "__", "]", "")

//normalizePath rewrites a dotted or indexed identifier into a flat
//capture-safe label, e.g. user.name -> user__name, items[0] -> items__0
func normalizePath(identifier string) string {
	if !strings.ContainsAny(identifier, ".[") {
		return identifier
	}
	return pathNormalizer.Replace(identifier)
}

//parseField parses the content of one {...} slot: [identifier][:key]
func parseField(slot string, index int, converters Converters) (*Field, error) {
	identifier, key, hasKey := strings.Cut(slot, ":")
	field := &Field{Index: index, Path: identifier, conv: anyConverter{}}
	if hasKey {
		if key == "" {
			return nil, fmt.Errorf("%w: empty conversion key in {%v}", ErrInvalidFormat, slot)
		}
		converter := converters.Lookup(key)
		if converter == nil {
			return nil, fmt.Errorf("%w: unknown conversion key %q", ErrInvalidFormat, key)
		}
		field.Key = key
		field.conv = converter
	}
	if identifier != "" {
		if !identifierMatch.MatchString(identifier) {
			return nil, fmt.Errorf("%w: invalid field identifier %q", ErrInvalidFormat, identifier)
		}
		field.Name = normalizePath(identifier)
	}
	return field, nil
}
