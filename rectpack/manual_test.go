package rectpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrange(t *testing.T) {
	placements := []Placement{
		NewPlacement("first", 0, 0, 384, 128),
		NewPlacement("second", 384, 0, 384, 128),
		NewPlacement("third", 10, 200, 5, 5),
	}

	result, err := Arrange(placements, true)
	require.NoError(t, err)
	assert.Equal(t, placements, result.Placements)
	assert.Equal(t, NewSize(768, 205), result.Bin)

	placements[0].X = 99
	assert.Equal(t, 0, result.Placements[0].X, "result must not alias the input")
}

func TestArrange_Overlap(t *testing.T) {
	placements := []Placement{
		NewPlacement("x", 0, 0, 10, 10),
		NewPlacement("y", 5, 5, 10, 10),
	}

	result, err := Arrange(placements, false)
	require.NoError(t, err, "overlap is allowed unless checked")
	assert.Equal(t, NewSize(15, 15), result.Bin)
	assert.Equal(t, [][2]int{{0, 1}}, result.Overlaps())

	_, err = Arrange(placements, true)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), `"x"`)
	assert.Contains(t, err.Error(), `"y"`)
}

func TestArrange_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		placement Placement
	}{
		{"zero width", NewPlacement("a", 0, 0, 0, 4)},
		{"zero height", NewPlacement("a", 0, 0, 4, 0)},
		{"negative x", NewPlacement("a", -1, 0, 4, 4)},
		{"negative y", NewPlacement("a", 0, -3, 4, 4)},
		{"empty id", NewPlacement("", 0, 0, 4, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Arrange([]Placement{tt.placement}, false)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestArrange_Empty(t *testing.T) {
	result, err := Arrange(nil, true)
	require.NoError(t, err)
	assert.Empty(t, result.Placements)
	assert.Equal(t, Size{}, result.Bin)
}

func TestResult_Validate(t *testing.T) {
	result := &Result{
		Placements: []Placement{
			NewPlacement("a", 0, 0, 10, 10),
			NewPlacement("b", 10, 0, 10, 10),
		},
		Bin: NewSize(20, 10),
	}
	require.NoError(t, result.Validate(), "touching edges are not overlap")
	assert.InDelta(t, 1.0, result.Used(), 1e-9)

	result.Bin = NewSize(19, 10)
	assert.ErrorIs(t, result.Validate(), ErrInvalidInput)

	result.Bin = NewSize(20, 10)
	result.Placements[1].X = 9
	assert.ErrorIs(t, result.Validate(), ErrInvalidInput)
}

func TestRect(t *testing.T) {
	r := NewRect(2, 3, 10, 20)
	assert.Equal(t, 12, r.Right())
	assert.Equal(t, 23, r.Bottom())
	assert.Equal(t, 200, r.Area())
	assert.Equal(t, "[2, 3, 10, 20]", r.String())
	assert.True(t, r.ContainsRect(NewRect(2, 3, 10, 20)))
	assert.False(t, r.ContainsRect(NewRect(1, 3, 10, 20)))
	assert.Equal(t, NewRect(0, 0, 12, 23), r.Union(NewRect(0, 0, 1, 1)))
	assert.True(t, NewRect(0, 0, 0, 5).IsEmpty())
	assert.Equal(t, NewRect(1, 2, 3, 4), NewRectLTRB(1, 2, 4, 6))
}
