package operation

import "barberdesk/models"

// Ref addresses one operation inside a user's operations array. Clients send
// either an array index or an identity descriptor (name + price); some
// confirmation endpoints send both, in which case identity is tried first and
// the index is the fallback for entries recorded before identity fields were
// filled in.
type Ref struct {
	index    *int
	name     string
	price    *float64
	hasIdent bool
}

// ByIndex addresses an operation by its array position.
func ByIndex(i int) Ref {
	return Ref{index: &i}
}

// ByIdentity addresses an operation by its name and price.
func ByIdentity(name string, price float64) Ref {
	return Ref{name: name, price: &price, hasIdent: true}
}

// WithIndexFallback attaches an array index to try when identity matching
// finds nothing.
func (r Ref) WithIndexFallback(i int) Ref {
	r.index = &i
	return r
}

// Resolve locates the operation a Ref addresses and returns its index.
// Identity matching compares name and price only and takes the first match in
// array order; duplicates beyond the first are unreachable by identity until
// the first advances.
func Resolve(ops []models.Operation, ref Ref) (int, bool) {
	if ref.hasIdent {
		for i, op := range ops {
			if op.Name == ref.name && op.Price == *ref.price {
				return i, true
			}
		}
	}
	if ref.index != nil {
		i := *ref.index
		if i >= 0 && i < len(ops) {
			return i, true
		}
	}
	return 0, false
}
