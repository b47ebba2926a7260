package i18n

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Kind identifies the type held by a Value.
type Kind uint8

const (
	// KindUndefined is the kind of the zero Value, returned by failed lookups.
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "undefined"
	}
}

// Value is an immutable node of a parsed namespace document.
// The zero Value is undefined.
type Value struct {
	obj  map[string]Value
	str  string
	num  json.Number
	arr  []Value
	kind Kind
	b    bool
}

// StringValue returns a string Value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// ObjectValue returns an object Value holding the given members.
func ObjectValue(members map[string]Value) Value {
	if members == nil {
		members = map[string]Value{}
	}
	return Value{kind: KindObject, obj: members}
}

// ValueOf converts decoded Go data (as produced by encoding/json or yaml.v3
// decoding into an interface) into a Value. Unknown scalar types are
// stored as their fmt.Sprint representation.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{kind: KindNull}
	case Value:
		return t
	case bool:
		return Value{kind: KindBool, b: t}
	case string:
		return StringValue(t)
	case json.Number:
		return Value{kind: KindNumber, num: t}
	case int:
		return Value{kind: KindNumber, num: json.Number(strconv.Itoa(t))}
	case int64:
		return Value{kind: KindNumber, num: json.Number(strconv.FormatInt(t, 10))}
	case uint64:
		return Value{kind: KindNumber, num: json.Number(strconv.FormatUint(t, 10))}
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return StringValue(strconv.FormatFloat(t, 'g', -1, 64))
		}
		return Value{kind: KindNumber, num: json.Number(strconv.FormatFloat(t, 'g', -1, 64))}
	case []any:
		arr := make([]Value, len(t))
		for i, item := range t {
			arr[i] = ValueOf(item)
		}
		return Value{kind: KindArray, arr: arr}
	case map[string]any:
		obj := make(map[string]Value, len(t))
		for k, item := range t {
			obj[k] = ValueOf(item)
		}
		return Value{kind: KindObject, obj: obj}
	case map[any]any:
		obj := make(map[string]Value, len(t))
		for k, item := range t {
			obj[fmt.Sprint(k)] = ValueOf(item)
		}
		return Value{kind: KindObject, obj: obj}
	default:
		return StringValue(fmt.Sprint(t))
	}
}

// Kind reports the type of the value.
func (v Value) Kind() Kind { return v.kind }

// IsDefined reports whether the value was produced by a successful lookup.
func (v Value) IsDefined() bool { return v.kind != KindUndefined }

// AsString returns the string content of a string value.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsBool returns the content of a bool value.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsNumber returns the textual form of a number value.
func (v Value) AsNumber() (json.Number, bool) {
	return v.num, v.kind == KindNumber
}

// Len returns the number of members of an object or elements of an array.
func (v Value) Len() int {
	switch v.kind {
	case KindObject:
		return len(v.obj)
	case KindArray:
		return len(v.arr)
	default:
		return 0
	}
}

// Keys returns the sorted member names of an object value.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Get resolves one path segment: a member name for objects or a
// non-negative decimal index for arrays. Scalars never resolve.
func (v Value) Get(key string) (Value, bool) {
	switch v.kind {
	case KindObject:
		child, ok := v.obj[key]
		return child, ok
	case KindArray:
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(v.arr) || strconv.Itoa(idx) != key {
			return Value{}, false
		}
		return v.arr[idx], true
	default:
		return Value{}, false
	}
}

// Lookup walks the given segments from v, one Get per segment.
func (v Value) Lookup(segments ...string) (Value, bool) {
	current := v
	for _, seg := range segments {
		next, ok := current.Get(seg)
		if !ok {
			return Value{}, false
		}
		current = next
	}
	return current, current.IsDefined()
}

// Interface converts the value back into plain Go data.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindArray:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, item := range v.obj {
			out[k] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// String returns string content verbatim and the JSON encoding of
// every other kind. The undefined value renders as an empty string.
func (v Value) String() string {
	switch v.kind {
	case KindUndefined:
		return ""
	case KindString:
		return v.str
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// MarshalJSON implements json.Marshaler. Undefined encodes as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindUndefined, KindNull:
		return []byte("null"), nil
	case KindNumber:
		return []byte(v.num), nil
	default:
		return json.Marshal(v.Interface())
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := decodeJSON(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

var utf8BOM = []byte("\xef\xbb\xbf")

func decodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, errors.New("unexpected data after top-level value")
	}
	return ValueOf(raw), nil
}

func decodeYAML(data []byte) (Value, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Value{}, err
	}
	return ValueOf(raw), nil
}

func decodeDocument(format FileFormat, data []byte) (Value, error) {
	if format == FormatYAML {
		return decodeYAML(data)
	}
	return decodeJSON(data)
}
