package rectpack

// Arrange wraps externally supplied placements in a Result without making
// any packing decision. The bin encloses every placement.
//
// Sizes must be positive and origins non-negative. When checkOverlap is set,
// overlapping placements are rejected; otherwise they are kept as given and a
// composer pastes them in order, so the later one wins.
func Arrange(placements []Placement, checkOverlap bool) (*Result, error) {
	result := &Result{Placements: make([]Placement, len(placements))}
	for i, p := range placements {
		if p.ID == "" {
			return nil, invalid("", "placement #%d has an empty id", i)
		}
		if p.IsEmpty() {
			return nil, invalid(p.ID, "size %s must be positive", p.Size)
		}
		if p.X < 0 || p.Y < 0 {
			return nil, invalid(p.ID, "origin %s must not be negative", p.Point)
		}
		result.Placements[i] = p
		result.Bin.Width = max(result.Bin.Width, p.Right())
		result.Bin.Height = max(result.Bin.Height, p.Bottom())
	}
	if checkOverlap {
		if err := result.Validate(); err != nil {
			return nil, err
		}
	}
	return result, nil
}
