package comparison

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/apperr"
)

// DataType enumerates the value types a comparison attribute can declare.
type DataType string

const (
	TypeText    DataType = "TEXT"
	TypeNumber  DataType = "NUMBER"
	TypeBoolean DataType = "BOOLEAN"
	TypeURL     DataType = "URL"
)

// ParseDataType validates a data type string.
func ParseDataType(s string) (DataType, error) {
	switch DataType(s) {
	case TypeText, TypeNumber, TypeBoolean, TypeURL:
		return DataType(s), nil
	}
	return "", apperr.InvalidDataType(s)
}

// Value is a decoded attribute value tagged by its data type.
// Exactly one of the payload fields is meaningful, selected by Type.
type Value struct {
	Type   DataType
	Text   string
	Number float64
	Bool   bool
}

// JSONValue returns the natural JSON representation of the value.
func (v Value) JSONValue() interface{} {
	switch v.Type {
	case TypeNumber:
		return v.Number
	case TypeBoolean:
		return v.Bool
	default:
		return v.Text
	}
}

// String renders the value the way exports print it.
func (v Value) String() string {
	switch v.Type {
	case TypeNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case TypeBoolean:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Text
	}
}

func TextValue(s string) Value    { return Value{Type: TypeText, Text: s} }
func NumberValue(f float64) Value { return Value{Type: TypeNumber, Number: f} }
func BoolValue(b bool) Value      { return Value{Type: TypeBoolean, Bool: b} }
func URLValue(s string) Value     { return Value{Type: TypeURL, Text: s} }

// Encode validates rawValue against dataType and returns the canonical
// string stored in the database. Rules:
//   - TEXT: stored as-is, empty string is legal.
//   - NUMBER: must parse as a finite decimal; stored normalized so that
//     Decode(Encode(v)) == v.
//   - BOOLEAN: strict parsing (true/false/1/0/t/f, any case). JS-style
//     truthiness from the old implementation is deliberately not kept:
//     "false" means false here.
//   - URL: must be absolute (scheme and host present).
func Encode(dataType DataType, rawValue string) (string, error) {
	switch dataType {
	case TypeText:
		return rawValue, nil
	case TypeNumber:
		f, err := strconv.ParseFloat(strings.TrimSpace(rawValue), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return "", apperr.InvalidValueFormat(string(dataType), rawValue)
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	case TypeBoolean:
		b, err := strconv.ParseBool(strings.TrimSpace(rawValue))
		if err != nil {
			return "", apperr.InvalidValueFormat(string(dataType), rawValue)
		}
		return strconv.FormatBool(b), nil
	case TypeURL:
		u, err := url.Parse(strings.TrimSpace(rawValue))
		if err != nil || u.Scheme == "" || u.Host == "" {
			return "", apperr.InvalidValueFormat(string(dataType), rawValue)
		}
		return u.String(), nil
	}
	return "", apperr.InvalidDataType(string(dataType))
}

// Decode turns a stored string back into a typed value. Values written
// through Encode always decode; anything else is a data error.
func Decode(dataType DataType, storedValue string) (Value, error) {
	switch dataType {
	case TypeText:
		return TextValue(storedValue), nil
	case TypeNumber:
		f, err := strconv.ParseFloat(storedValue, 64)
		if err != nil {
			return Value{}, apperr.InvalidValueFormat(string(dataType), storedValue)
		}
		return NumberValue(f), nil
	case TypeBoolean:
		b, err := strconv.ParseBool(storedValue)
		if err != nil {
			return Value{}, apperr.InvalidValueFormat(string(dataType), storedValue)
		}
		return BoolValue(b), nil
	case TypeURL:
		return URLValue(storedValue), nil
	}
	return Value{}, apperr.InvalidDataType(string(dataType))
}
