package extractly

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unsafe"

	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

//TagName defines the struct tag overriding bound field names
const TagName = "extract"

//Bind populates dest struct fields with this result's named field values.
//Dotted identifiers navigate nested structs, indexed identifiers assign
//slice items; a struct field matches by extract tag, exact name, folded
//case or case-format converted name. Untyped captures are coerced into
//numeric and bool destinations.
func (r *Result) Bind(dest interface{}) error {
	rType := reflect.TypeOf(dest)
	if rType == nil || rType.Kind() != reflect.Ptr || rType.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("expected struct pointer, had %T", dest)
	}
	ptr := xunsafe.AsPointer(dest)
	for i, field := range r.fields {
		if field.Name == "" {
			continue
		}
		if err := bindValue(rType.Elem(), ptr, field.Path, r.values[i], r.raw[i]); err != nil {
			return fmt.Errorf("failed to bind %v: %w", field.Path, err)
		}
	}
	return nil
}

func bindValue(owner reflect.Type, ptr unsafe.Pointer, path string, value Value, raw string) error {
	segments := strings.Split(path, ".")
	for i, segment := range segments {
		name, index, hasIndex := splitIndex(segment)
		xField := lookupField(owner, name)
		if xField == nil {
			return fmt.Errorf("%w: %v", ErrNoSuchField, name)
		}
		leaf := i == len(segments)-1
		if hasIndex {
			if xField.Type.Kind() != reflect.Slice {
				return fmt.Errorf("expected slice at %v, had %v", name, xField.Type)
			}
			slicePtr := xField.Pointer(ptr)
			xSlice := xunsafe.NewSlice(xField.Type)
			if length := xSlice.Len(slicePtr); index < 0 || index >= length {
				return fmt.Errorf("index out of range: %v, len: %v", index, length)
			}
			if leaf {
				item, err := coerce(xField.Type.Elem(), value, raw)
				if err != nil {
					return err
				}
				xSlice.SetValueAt(slicePtr, index, item)
				return nil
			}
			owner = xField.Type.Elem()
			ptr = xSlice.PointerAt(slicePtr, uintptr(index))
		} else {
			if leaf {
				item, err := coerce(xField.Type, value, raw)
				if err != nil {
					return err
				}
				xField.SetValue(ptr, item)
				return nil
			}
			owner = xField.Type
			ptr = xField.Pointer(ptr)
		}
		if owner.Kind() == reflect.Ptr {
			owner = owner.Elem()
			ptr = xunsafe.DerefPointer(ptr)
		}
		if ptr == nil {
			return fmt.Errorf("nil holder at %v", segment)
		}
		if owner.Kind() != reflect.Struct {
			return fmt.Errorf("unsupported path segment %v on %v", segment, owner)
		}
	}
	return nil
}

//splitIndex splits an indexed segment, e.g. items[0] -> items, 0
func splitIndex(segment string) (string, int, bool) {
	begin := strings.IndexByte(segment, '[')
	if begin == -1 || !strings.HasSuffix(segment, "]") {
		return segment, 0, false
	}
	index, err := strconv.Atoi(segment[begin+1 : len(segment)-1])
	if err != nil {
		return segment, 0, false
	}
	return segment[:begin], index, true
}

func lookupField(owner reflect.Type, name string) *xunsafe.Field {
	xStruct := xunsafe.NewStruct(owner)
	for i := range xStruct.Fields {
		candidate := &xStruct.Fields[i]
		if tag := candidate.Tag.Get(TagName); tag != "" {
			if tag == "-" {
				continue
			}
			if tag == name {
				return candidate
			}
		}
		if candidate.Name == name || strings.EqualFold(candidate.Name, name) {
			return candidate
		}
	}
	if caseFormat := text.DetectCaseFormat(name); caseFormat.IsDefined() {
		camel := caseFormat.Format(name, text.CaseFormatUpperCamel)
		for i := range xStruct.Fields {
			if xStruct.Fields[i].Name == camel {
				return &xStruct.Fields[i]
			}
		}
	}
	return nil
}

//coerce adjusts a converted value to the destination type
func coerce(dest reflect.Type, value Value, raw string) (interface{}, error) {
	switch dest.Kind() {
	case reflect.String:
		return reflect.ValueOf(value.String()).Convert(dest).Interface(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := coerceInt(value, raw)
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(i).Convert(dest).Interface(), nil
	case reflect.Float32, reflect.Float64:
		f, err := coerceFloat(value, raw)
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(f).Convert(dest).Interface(), nil
	case reflect.Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: bool %q", ErrTypeConversion, raw)
		}
		return b, nil
	case reflect.Struct:
		if dest == timeType {
			ts, err := value.Time()
			if err != nil {
				return nil, err
			}
			return ts, nil
		}
	}
	return nil, fmt.Errorf("unsupported destination type %v", dest)
}

func coerceInt(value Value, raw string) (int64, error) {
	switch value.Kind() {
	case KindInt:
		return value.i, nil
	case KindFloat:
		return int64(value.f), nil
	}
	i, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: integer %q", ErrTypeConversion, raw)
	}
	return i, nil
}

func coerceFloat(value Value, raw string) (float64, error) {
	switch value.Kind() {
	case KindInt:
		return float64(value.i), nil
	case KindFloat:
		return value.f, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: float %q", ErrTypeConversion, raw)
	}
	return f, nil
}
