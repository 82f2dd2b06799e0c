package subject

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
)

type ValueType int

const (
	NullType ValueType = iota
	BoolType
	NumberType
	StringType
	ArrayType
	ObjectType
)

func (t ValueType) String() string {
	switch t {
	case BoolType:
		return "bool"
	case NumberType:
		return "number"
	case StringType:
		return "string"
	case ArrayType:
		return "array"
	case ObjectType:
		return "object"
	default:
		return "null"
	}
}

// Value is an immutable JSON-like value: null, boolean, number, string, array or object.
//
// Arrays and objects are copied when a Value is created and again whenever their contents are
// handed out, so a Value can be shared freely between goroutines.
// The zero Value is null.
type Value struct {
	valueType   ValueType
	boolValue   bool
	numberValue float64
	stringValue string
	arrayValue  []Value
	objectValue map[string]Value
}

func Null() Value {
	return Value{}
}

func Bool(b bool) Value {
	return Value{valueType: BoolType, boolValue: b}
}

func Int(n int) Value {
	return Value{valueType: NumberType, numberValue: float64(n)}
}

// Float64 creates a number Value. NaN and infinities have no JSON form and become null.
func Float64(n float64) Value {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Null()
	}
	return Value{valueType: NumberType, numberValue: n}
}

func String(s string) Value {
	return Value{valueType: StringType, stringValue: s}
}

// ArrayOf creates an array Value. The items are copied.
func ArrayOf(items ...Value) Value {
	arr := make([]Value, len(items))
	copy(arr, items)
	return Value{valueType: ArrayType, arrayValue: arr}
}

// ObjectOf creates an object Value. The map is copied; a nil map yields an empty object.
func ObjectOf(m map[string]Value) Value {
	obj := make(map[string]Value, len(m))
	for k, v := range m {
		obj[k] = v
	}
	return Value{valueType: ObjectType, objectValue: obj}
}

// CopyArbitraryValue converts a plain Go value, such as the output of json.Unmarshal into an
// interface{}, into a Value. Unsupported types become null.
func CopyArbitraryValue(v interface{}) Value {
	switch val := v.(type) {
	case nil:
		return Null()
	case Value:
		return val
	case bool:
		return Bool(val)
	case string:
		return String(val)
	case float64:
		return Float64(val)
	case float32:
		return Float64(float64(val))
	case int:
		return Int(val)
	case int8:
		return Float64(float64(val))
	case int16:
		return Float64(float64(val))
	case int32:
		return Float64(float64(val))
	case int64:
		return Float64(float64(val))
	case uint:
		return Float64(float64(val))
	case uint8:
		return Float64(float64(val))
	case uint16:
		return Float64(float64(val))
	case uint32:
		return Float64(float64(val))
	case uint64:
		return Float64(float64(val))
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return Float64(f)
		}
		return String(val.String())
	case []Value:
		return ArrayOf(val...)
	case map[string]Value:
		return ObjectOf(val)
	case []interface{}:
		arr := make([]Value, len(val))
		for i, item := range val {
			arr[i] = CopyArbitraryValue(item)
		}
		return Value{valueType: ArrayType, arrayValue: arr}
	case map[string]interface{}:
		obj := make(map[string]Value, len(val))
		for k, item := range val {
			obj[k] = CopyArbitraryValue(item)
		}
		return Value{valueType: ObjectType, objectValue: obj}
	}
	return copyReflectedValue(v)
}

// Typed slices and maps ([]string, map[string]int, ...) go through reflection.
func copyReflectedValue(v interface{}) Value {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		arr := make([]Value, rv.Len())
		for i := range arr {
			arr[i] = CopyArbitraryValue(rv.Index(i).Interface())
		}
		return Value{valueType: ArrayType, arrayValue: arr}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		obj := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			obj[iter.Key().String()] = CopyArbitraryValue(iter.Value().Interface())
		}
		return Value{valueType: ObjectType, objectValue: obj}
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Float64(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Float64(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Float64(rv.Float())
	}
	global.Logger().Debug(fmt.Sprintf("unsupported value of type %T converted to null", v))
	return Null()
}

func (v Value) Type() ValueType {
	return v.valueType
}

func (v Value) IsNull() bool {
	return v.valueType == NullType
}

func (v Value) IsNumber() bool {
	return v.valueType == NumberType
}

// IsInt reports whether the value is a number with no fractional part.
func (v Value) IsInt() bool {
	return v.valueType == NumberType && v.numberValue == math.Trunc(v.numberValue)
}

// BoolValue returns false for anything that is not a boolean.
func (v Value) BoolValue() bool {
	return v.valueType == BoolType && v.boolValue
}

// Float64Value returns zero for anything that is not a number.
func (v Value) Float64Value() float64 {
	if v.valueType != NumberType {
		return 0
	}
	return v.numberValue
}

// IntValue truncates toward zero; non-numbers and numbers outside the int range return zero.
func (v Value) IntValue() int {
	if v.valueType != NumberType {
		return 0
	}
	n := math.Trunc(v.numberValue)
	if n < math.MinInt || n >= math.MaxInt {
		return 0
	}
	return int(n)
}

// StringValue returns "" for anything that is not a string. Use String() for a printable form.
func (v Value) StringValue() string {
	if v.valueType != StringType {
		return ""
	}
	return v.stringValue
}

// Count is the number of array elements or object properties, zero otherwise.
func (v Value) Count() int {
	switch v.valueType {
	case ArrayType:
		return len(v.arrayValue)
	case ObjectType:
		return len(v.objectValue)
	}
	return 0
}

func (v Value) GetByIndex(i int) (Value, bool) {
	if v.valueType != ArrayType || i < 0 || i >= len(v.arrayValue) {
		return Null(), false
	}
	return v.arrayValue[i], true
}

func (v Value) GetByKey(key string) (Value, bool) {
	if v.valueType != ObjectType {
		return Null(), false
	}
	item, ok := v.objectValue[key]
	return item, ok
}

// Keys returns the sorted property names of an object, or nil.
func (v Value) Keys() []string {
	if v.valueType != ObjectType {
		return nil
	}
	keys := make([]string, 0, len(v.objectValue))
	for k := range v.objectValue {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AsArbitraryValue returns a deep copy in the shapes encoding/json uses:
// nil, bool, float64, string, []interface{} and map[string]interface{}.
func (v Value) AsArbitraryValue() interface{} {
	switch v.valueType {
	case BoolType:
		return v.boolValue
	case NumberType:
		return v.numberValue
	case StringType:
		return v.stringValue
	case ArrayType:
		arr := make([]interface{}, len(v.arrayValue))
		for i, item := range v.arrayValue {
			arr[i] = item.AsArbitraryValue()
		}
		return arr
	case ObjectType:
		obj := make(map[string]interface{}, len(v.objectValue))
		for k, item := range v.objectValue {
			obj[k] = item.AsArbitraryValue()
		}
		return obj
	}
	return nil
}

// Equal is deep equality. Numbers compare by value, so Int(1) equals Float64(1).
func (v Value) Equal(other Value) bool {
	if v.valueType != other.valueType {
		return false
	}
	switch v.valueType {
	case BoolType:
		return v.boolValue == other.boolValue
	case NumberType:
		return v.numberValue == other.numberValue
	case StringType:
		return v.stringValue == other.stringValue
	case ArrayType:
		if len(v.arrayValue) != len(other.arrayValue) {
			return false
		}
		for i := range v.arrayValue {
			if !v.arrayValue[i].Equal(other.arrayValue[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(v.objectValue) != len(other.objectValue) {
			return false
		}
		for k, item := range v.objectValue {
			otherItem, ok := other.objectValue[k]
			if !ok || !item.Equal(otherItem) {
				return false
			}
		}
		return true
	}
	return true
}

// String returns the JSON representation, except that a string value is returned without quotes.
func (v Value) String() string {
	switch v.valueType {
	case NullType:
		return "null"
	case BoolType:
		return strconv.FormatBool(v.boolValue)
	case NumberType:
		return strconv.FormatFloat(v.numberValue, 'f', -1, 64)
	case StringType:
		return v.stringValue
	}
	bytes, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v.AsArbitraryValue())
	}
	return string(bytes)
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.valueType {
	case BoolType:
		return json.Marshal(v.boolValue)
	case NumberType:
		return json.Marshal(v.numberValue)
	case StringType:
		return json.Marshal(v.stringValue)
	case ArrayType:
		return json.Marshal(v.arrayValue)
	case ObjectType:
		return json.Marshal(v.objectValue)
	}
	return []byte("null"), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = CopyArbitraryValue(raw)
	return nil
}
