package rectpack

// Packer holds the tunables of the packing engine. The zero value is not
// usable; create one with NewPacker or DefaultPacker.
//
// A Packer keeps no state between calls and may be shared.
type Packer struct {
	// order defines the sequence in which rectangles are placed. Equal keys
	// always fall back to input order.
	//
	// Default: SortHeight
	order SortFunc

	// heuristic scores free regions against the next rectangle.
	//
	// Default: BestAreaFit
	heuristic Heuristic

	// merge joins free regions that share an edge after every placement.
	//
	// Default: true
	merge bool
}

// Option configures a Packer.
type Option func(*Packer)

// WithOrder sets the placement order.
func WithOrder(order SortFunc) Option {
	return func(p *Packer) {
		if order != nil {
			p.order = order
		}
	}
}

// WithHeuristic sets the free region scoring heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(p *Packer) {
		p.heuristic = h
	}
}

// WithMerge enables or disables merging of adjacent free regions.
func WithMerge(enabled bool) Option {
	return func(p *Packer) {
		p.merge = enabled
	}
}

// NewPacker creates a packer with the default configuration changed by opts.
func NewPacker(opts ...Option) *Packer {
	p := &Packer{
		order:     SortHeight,
		heuristic: BestAreaFit,
		merge:     true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// DefaultPacker returns a packer using height order and best area fit.
func DefaultPacker() *Packer {
	return NewPacker()
}

// Pack places every rectangle of set into a bin maxWidth wide. A maxWidth of
// zero derives the width as twice the widest rectangle. The bin height is the
// smallest height containing all placements.
//
// Pack fails with an *InvalidInputError for bad sizes, duplicate ids or a
// negative maxWidth, and with an *UnpackableError when a rectangle is wider
// than maxWidth. Both are reported before anything is placed.
func (p *Packer) Pack(set RectangleSet, maxWidth int) (*Result, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}
	if maxWidth < 0 {
		return nil, invalid("", "max width %d must not be negative", maxWidth)
	}
	if maxWidth == 0 {
		maxWidth = DeriveWidth(set)
	}
	for _, r := range set {
		if r.Width > maxWidth {
			return nil, &UnpackableError{ID: r.ID, Width: r.Width, MaxWidth: maxWidth}
		}
	}

	result := &Result{Placements: make([]Placement, len(set))}
	if len(set) == 0 {
		return result, nil
	}

	free := newFreeList(maxWidth, p.merge)
	score := p.heuristic.score()
	for _, i := range placementOrder(set, p.order) {
		r := set[i]
		result.Placements[i] = Placement{ID: r.ID, Rect: free.insert(r.Size(), score)}
	}

	result.Bin.Width = maxWidth
	for _, pl := range result.Placements {
		result.Bin.Height = max(result.Bin.Height, pl.Bottom())
	}
	return result, nil
}

// Pack packs set with the default packer.
func Pack(set RectangleSet, maxWidth int) (*Result, error) {
	return DefaultPacker().Pack(set, maxWidth)
}

// DeriveWidth returns the bin width used when none is given: twice the
// widest rectangle.
func DeriveWidth(set RectangleSet) int {
	return 2 * set.MaxWidth()
}
