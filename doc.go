// Package treediff computes the complete set of differences between two
// tree-shaped dynamic values, the kind produced by unmarshaling JSON into
// empty interfaces.
//
// Instead of operating on JSON text directly, treediff operates on document
// trees consisting of the go types created by unmarshaling from JSON, which
// are two compound types:
//
//	map[string]interface{}
//	[]interface{}
//
// and the scalar types:
//
//	string, bool, float64, nil
//
// integer types and json.Number are accepted as well and are folded into
// float64 before comparison, so a document decoded with UseNumber compares
// equal to the same document decoded without it. By operating on native go
// types treediff can compare documents decoded from different encodings, for
// example CBOR or YAML, so long as the decoder produces the types above.
//
// Diff walks both trees in lock-step, depth-first, reporting one Difference
// for every point where they diverge. Unlike edit-script differs, treediff
// makes no attempt to match moved or reordered subtrees: arrays are compared
// strictly by position, which keeps the output a simple, stable function of
// the two inputs. Every Difference carries the path where it was found,
// rendered with dotted object keys and bracketed array indices:
//
//	users[2].address.city
//
// The root path is the empty string. A path that exists in only one of the
// two trees is reported with the Absent marker on the missing side, which is
// distinct from a present null value.
//
// Diff is a pure function over its inputs and never fails on well-formed
// trees. Stack depth tracks the depth of the deeper input; callers diffing
// untrusted, arbitrarily deep documents should bound depth before calling.
package treediff
