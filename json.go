package extractly

import (
	"time"

	"github.com/francoispqt/gojay"
)

//MarshalJSONObject encodes converted values keyed by field key
func (r *Result) MarshalJSONObject(enc *gojay.Encoder) {
	for i, field := range r.fields {
		key := field.key()
		value := r.values[i]
		switch value.Kind() {
		case KindInt:
			enc.AddIntKey(key, int(value.i))
		case KindFloat:
			enc.AddFloatKey(key, value.f)
		case KindTime:
			enc.AddStringKey(key, value.t.Format(time.RFC3339))
		default:
			enc.AddStringKey(key, value.text)
		}
	}
}

//IsNil returns true if result is nil
func (r *Result) IsNil() bool {
	return r == nil
}

//MarshalJSON returns JSON representation of converted values
func (r *Result) MarshalJSON() ([]byte, error) {
	return gojay.MarshalJSONObject(r)
}

//Results represents successive matches
type Results []*Result

//MarshalJSONArray encodes matches in order
func (s Results) MarshalJSONArray(enc *gojay.Encoder) {
	for _, result := range s {
		enc.AddObject(result)
	}
}

//IsNil returns true if results are empty
func (s Results) IsNil() bool {
	return len(s) == 0
}

//MarshalJSON returns JSON representation of all matches
func (s Results) MarshalJSON() ([]byte, error) {
	return gojay.MarshalJSONArray(s)
}
