package treediff

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Kind enumerates the value types treediff can encounter while walking a
// document tree
type Kind uint8

const (
	// KindUnknown is a type outside our universe, should never be encountered
	KindUnknown Kind = iota
	// KindNull is the null value
	KindNull
	// KindBool is a boolean
	KindBool
	// KindNumber covers all numeric values, regardless of the go type they
	// were decoded into
	KindNumber
	// KindString is a string of text
	KindString
	// KindArray is an ordered sequence of values
	KindArray
	// KindObject is a dictionary of key / value pairs
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// KindOf reports the Kind of a decoded value. Values outside the supported
// type universe report KindUnknown
func KindOf(v interface{}) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, json.Number:
		return KindNumber
	case string:
		return KindString
	case []interface{}:
		return KindArray
	case map[string]interface{}:
		return KindObject
	default:
		return KindUnknown
	}
}

// toFloat folds every supported numeric type into float64, the canonical
// representation all numeric comparison happens in
func toFloat(v interface{}) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			panic(fmt.Sprintf("malformed number: %q", string(x)))
		}
		return f
	default:
		panic(fmt.Sprintf("unexpected type: %T", v))
	}
}

// scalarEqual compares two leaf values of the same Kind
func scalarEqual(k Kind, a, b interface{}) bool {
	switch k {
	case KindNull:
		return true
	case KindBool:
		return a.(bool) == b.(bool)
	case KindNumber:
		return toFloat(a) == toFloat(b)
	case KindString:
		return a.(string) == b.(string)
	default:
		panic(fmt.Sprintf("not a scalar kind: %s", k))
	}
}

// sortedKeys returns object keys in sorted order. go randomizes map
// iteration, sorting is what keeps diff output deterministic across runs
func sortedKeys(obj map[string]interface{}) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// joinKey appends an object key segment to a path. the root path is the
// empty string, so the first segment is appended bare
func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// joinIndex appends an array index segment to a path
func joinIndex(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

// countNodes walks a tree counting every value in it, compound values
// included
func countNodes(v interface{}) int {
	switch x := v.(type) {
	case []interface{}:
		n := 1
		for _, el := range x {
			n += countNodes(el)
		}
		return n
	case map[string]interface{}:
		n := 1
		for _, el := range x {
			n += countNodes(el)
		}
		return n
	default:
		return 1
	}
}
