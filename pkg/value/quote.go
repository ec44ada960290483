package value

import (
	"encoding/json"
	"strconv"
)

func Escape(s string) string {
	s = strconv.Quote(s)
	return s[1 : len(s)-1]
}

// Unquote decodes the body of a string literal (the text between the double
// quotes) using JSON escaping rules.
func Unquote(s string) (string, error) {
	var result string
	if err := json.Unmarshal([]byte(`"`+s+`"`), &result); err != nil {
		return "", err
	}
	return result, nil
}

// ParseNumber decodes a numeric literal using the JSON number grammar.
func ParseNumber(s string) (float64, error) {
	var result float64
	if err := json.Unmarshal([]byte(s), &result); err != nil {
		return 0, err
	}
	return result, nil
}
