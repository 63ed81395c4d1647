package domain

// Index is a user-facing, 1-based position.
type Index struct {
	zeroBased int
}

// NewIndex builds an Index from a 1-based position.
func NewIndex(oneBased int) (Index, error) {
	if oneBased < 1 {
		return Index{}, constraint(FieldIndex, IndexConstraints)
	}
	return Index{zeroBased: oneBased - 1}, nil
}

// MustIndex is NewIndex for positions known to be valid, such as literals in
// tests. It panics on anything below 1.
func MustIndex(oneBased int) Index {
	idx, err := NewIndex(oneBased)
	if err != nil {
		panic(err)
	}
	return idx
}

func (i Index) OneBased() int  { return i.zeroBased + 1 }
func (i Index) ZeroBased() int { return i.zeroBased }
