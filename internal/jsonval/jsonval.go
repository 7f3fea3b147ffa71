// Package jsonval provides shape checks over untyped decoded-JSON values.
// RPC results are untrusted input: every field is validated here before any
// conversion happens, and every failure names the offending field and the
// expected vs. actual kind.
package jsonval

import "fmt"

// KindOf names the JSON kind of a decoded value for error messages. The
// kinds form a closed set because encoding/json decodes into exactly these
// Go types.
func KindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Object narrows v to a JSON object. Arrays and null are rejected even
// though a looser runtime check would class them as objects.
func Object(v any) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected object, got %s", KindOf(v))
	}
	return obj, nil
}

// String narrows v to a JSON string.
func String(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %s", KindOf(v))
	}
	return s, nil
}

// Array narrows v to a JSON array.
func Array(v any) ([]any, error) {
	a, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected array, got %s", KindOf(v))
	}
	return a, nil
}

// Property returns obj[name], failing when the property is absent. A
// property explicitly set to null is present and returned as nil.
func Property(obj map[string]any, name string) (any, error) {
	v, ok := obj[name]
	if !ok {
		return nil, fmt.Errorf("missing property %q", name)
	}
	return v, nil
}

// StringProperty returns obj[name] narrowed to a string.
func StringProperty(obj map[string]any, name string) (string, error) {
	v, err := Property(obj, name)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("property %q: expected string, got %s", name, KindOf(v))
	}
	return s, nil
}

// ArrayProperty returns obj[name] narrowed to an array.
func ArrayProperty(obj map[string]any, name string) ([]any, error) {
	v, err := Property(obj, name)
	if err != nil {
		return nil, err
	}
	a, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("property %q: expected array, got %s", name, KindOf(v))
	}
	return a, nil
}
