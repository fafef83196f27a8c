package treediff

import (
	"fmt"
)

// Diff computes the complete list of differences between two decoded value
// trees. It walks both trees in lock-step, depth-first, emitting one
// Difference per point of divergence in traversal order: a node's own
// mismatch is reported before its children are considered, and a kind
// mismatch subsumes everything beneath it.
//
// Diff is pure: it never mutates its inputs, and two calls with the same
// inputs produce the same output. It returns an empty list exactly when the
// two trees are structurally and value equal. Values outside the supported
// type universe (see KindOf) panic, they indicate a caller handing in
// something other than a decoded document.
func Diff(a, b interface{}, opts ...DiffOption) Differences {
	cfg := &DiffConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	d := &differ{cfg: cfg}
	d.walk(a, b, "")

	if st := cfg.Stats; st != nil {
		st.LeftNodes = countNodes(a)
		st.RightNodes = countNodes(b)
		for _, df := range d.diffs {
			switch df.Operation() {
			case OpAdd:
				st.Additions++
			case OpRemove:
				st.Removals++
			default:
				st.Changes++
			}
		}
	}
	return d.diffs
}

// DiffConfig are the possible configuration parameters for calculating diffs
type DiffConfig struct {
	// Provide a non-nil stats pointer & Diff will populate it with data from
	// the diff process
	Stats *Stats
}

// DiffOption is a function that adjusts a config, zero or more DiffOptions
// can be passed to the Diff function
type DiffOption func(cfg *DiffConfig)

// OptionSetStats will set the passed-in stats pointer when Diff is called
func OptionSetStats(st *Stats) DiffOption {
	return func(cfg *DiffConfig) {
		cfg.Stats = st
	}
}

// differ accumulates differences for a single Diff invocation. each call
// owns its own accumulator, concurrent calls on independent inputs share
// nothing
type differ struct {
	cfg   *DiffConfig
	diffs Differences
}

func (d *differ) emit(path string, before, after interface{}) {
	d.diffs = append(d.diffs, &Difference{Path: path, Before: before, After: after})
}

func (d *differ) walk(a, b interface{}, path string) {
	ka, kb := KindOf(a), KindOf(b)
	if ka == KindUnknown {
		panic(fmt.Sprintf("unexpected type: %T", a))
	}
	if kb == KindUnknown {
		panic(fmt.Sprintf("unexpected type: %T", b))
	}

	if ka != kb {
		d.emit(path, a, b)
		return
	}

	switch ka {
	case KindNull:
		// null only ever equals null
	case KindBool, KindNumber, KindString:
		if !scalarEqual(ka, a, b) {
			d.emit(path, a, b)
		}
	case KindArray:
		av := a.([]interface{})
		bv := b.([]interface{})
		n := len(av)
		if len(bv) > n {
			n = len(bv)
		}
		// strictly positional: no element matching or reorder detection
		for i := 0; i < n; i++ {
			ipath := joinIndex(path, i)
			switch {
			case i >= len(av):
				d.emit(ipath, Absent, bv[i])
			case i >= len(bv):
				d.emit(ipath, av[i], Absent)
			default:
				d.walk(av[i], bv[i], ipath)
			}
		}
	case KindObject:
		ao := a.(map[string]interface{})
		bo := b.(map[string]interface{})
		// keys of the first tree, then keys unique to the second, each set
		// in sorted order so output doesn't shift with map iteration
		for _, k := range sortedKeys(ao) {
			kpath := joinKey(path, k)
			if bval, ok := bo[k]; ok {
				d.walk(ao[k], bval, kpath)
			} else {
				d.emit(kpath, ao[k], Absent)
			}
		}
		for _, k := range sortedKeys(bo) {
			if _, ok := ao[k]; !ok {
				d.emit(joinKey(path, k), Absent, bo[k])
			}
		}
	}
}
