package treediff

import (
	"encoding/json"
)

// Operation classifies what a Difference describes, derived from which sides
// of the comparison hold a value
type Operation string

const (
	// OpChange means a value is present in both trees and differs
	OpChange = Operation("~")
	// OpAdd means the path exists only in the second tree
	OpAdd = Operation("+")
	// OpRemove means the path exists only in the first tree
	OpRemove = Operation("-")
)

// Absent marks the missing side of a Difference whose path exists in only
// one of the two trees. It is deliberately distinct from nil: a key holding
// a null value is present, a key that isn't there is absent
var Absent = absent{}

type absent struct{}

func (absent) String() string { return "<absent>" }

// Difference records a single point of divergence between two trees
type Difference struct {
	// Path locates the divergence, rendered with dotted object keys and
	// bracketed array indices, eg: "items[2].name". the root is ""
	Path string `json:"path"`
	// Before is the value at Path in the first tree, or Absent
	Before interface{} `json:"before"`
	// After is the value at Path in the second tree, or Absent
	After interface{} `json:"after"`
}

// Operation reports the kind of change this Difference describes
func (d *Difference) Operation() Operation {
	switch {
	case d.Before == Absent:
		return OpAdd
	case d.After == Absent:
		return OpRemove
	default:
		return OpChange
	}
}

// InFirst reports whether the path exists in the first tree
func (d *Difference) InFirst() bool { return d.Before != Absent }

// InSecond reports whether the path exists in the second tree
func (d *Difference) InSecond() bool { return d.After != Absent }

// MarshalJSON implements a custom compact JSON marshaller. Differences
// marshal as arrays led by their operation marker, with absent sides
// dropped entirely:
//
//	["~", "a.b", 1, 2]   value changed
//	["+", "a.c", true]   path only in the second tree
//	["-", "a.d", null]   path only in the first tree
func (d *Difference) MarshalJSON() ([]byte, error) {
	v := []interface{}{d.Operation(), d.Path}
	switch d.Operation() {
	case OpAdd:
		v = append(v, d.After)
	case OpRemove:
		v = append(v, d.Before)
	default:
		v = append(v, d.Before, d.After)
	}
	return json.Marshal(v)
}

// Differences is an ordered sequence of Difference records, in the order the
// depth-first walk encountered them
type Differences []*Difference
