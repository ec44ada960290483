package value

import (
	"encoding/json"
	"io"
)

// ToJSON projects v onto the JSON data model. A top level value without a JSON
// form, such as a function, becomes nil.
func ToJSON(v Value) (any, error) {
	nv, ok, err := v.NativeValue()
	if err != nil || !ok {
		return nil, err
	}
	return nv, nil
}

// WriteJSON writes v as a single JSON document followed by a newline.
func WriteJSON(w io.Writer, v Value, pretty bool) error {
	nv, err := ToJSON(v)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(nv)
}
