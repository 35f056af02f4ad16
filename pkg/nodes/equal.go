package nodes

import "reflect"

// Equal reports deep structural equality: the kinds must match, then every
// declared attribute and child field compares recursively. Nodes of
// different kinds are never equal, regardless of field values.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.Kind() != b.Kind() {
		return false
	}

	if a == Empty {
		return true
	}

	aAttrs, bAttrs := a.Attrs(), b.Attrs()
	if len(aAttrs) != len(bAttrs) {
		return false
	}

	for i := range aAttrs {
		if aAttrs[i].Name != bAttrs[i].Name {
			return false
		}

		if !reflect.DeepEqual(aAttrs[i].Value, bAttrs[i].Value) {
			return false
		}
	}

	return fieldsEqual(a.ChildFields(), b.ChildFields())
}

func fieldsEqual(af, bf []Field) bool {
	if len(af) != len(bf) {
		return false
	}

	for i := range af {
		av, bv := af[i].Value, bf[i].Value
		if av.IsSeq() != bv.IsSeq() {
			return false
		}

		if av.IsSeq() {
			if len(av.List) != len(bv.List) {
				return false
			}

			for j := range av.List {
				if !Equal(av.List[j], bv.List[j]) {
					return false
				}
			}

			continue
		}

		if !Equal(av.Node, bv.Node) {
			return false
		}
	}

	return true
}
