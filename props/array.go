package props

// Array is a dense numeric property table with a fixed row width.
// Row i holds the value for the entity with local id i; vector-valued
// rows that are exactly all-zero mean "not yet computed", not a real
// value at the origin.
type Array struct {
	width int
	data  []float64
}

// NewArray allocates a zero-filled array of rows×width values.
// Panics if width < 1 or rows < 0 (programmer error, not input data).
func NewArray(rows, width int) *Array {
	if width < 1 {
		panic("props: array width must be at least 1")
	}
	if rows < 0 {
		panic("props: array row count must be non-negative")
	}

	return &Array{width: width, data: make([]float64, rows*width)}
}

// NewVectorArray allocates a zero-filled rows×3 array, the shape used by
// coordinates and centroids.
func NewVectorArray(rows int) *Array {
	return NewArray(rows, 3)
}

// FromSlice wraps a flat value slice as an array of the given row width.
// The slice is copied. Returns ErrRowWidth if len(data) is not a multiple
// of width.
func FromSlice(width int, data []float64) (*Array, error) {
	if width < 1 {
		panic("props: array width must be at least 1")
	}
	if len(data)%width != 0 {
		return nil, ErrRowWidth
	}
	cp := make([]float64, len(data))
	copy(cp, data)

	return &Array{width: width, data: cp}, nil
}

// Rows returns the number of entity rows.
func (a *Array) Rows() int { return len(a.data) / a.width }

// Width returns the fixed per-row value count.
func (a *Array) Width() int { return a.width }

// Row returns the i-th row as a slice sharing the array's backing storage:
// writes through it are visible to later reads. Panics if i is out of range.
func (a *Array) Row(i int) []float64 {
	return a.data[i*a.width : (i+1)*a.width]
}

// SetRow copies vals into row i. Returns ErrRowIndex if i is out of range,
// ErrRowWidth if len(vals) != Width().
func (a *Array) SetRow(i int, vals ...float64) error {
	if i < 0 || i >= a.Rows() {
		return ErrRowIndex
	}
	if len(vals) != a.width {
		return ErrRowWidth
	}
	copy(a.data[i*a.width:], vals)

	return nil
}

// At returns the value at row i, column j. Panics if out of range.
func (a *Array) At(i, j int) float64 { return a.data[i*a.width+j] }

// Set stores v at row i, column j. Panics if out of range.
func (a *Array) Set(i, j int, v float64) { a.data[i*a.width+j] = v }

// IsZeroRow reports whether every value in row i equals exactly zero —
// the "not computed" sentinel for vector data.
func (a *Array) IsZeroRow(i int) bool {
	for _, v := range a.Row(i) {
		if v != 0 {
			return false
		}
	}

	return true
}

// Fill sets every value of the array to v.
func (a *Array) Fill(v float64) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	cp := make([]float64, len(a.data))
	copy(cp, a.data)

	return &Array{width: a.width, data: cp}
}

// compactRows returns a new array holding the rows listed in keep, in
// keep's order. Callers guarantee keep indices are in range.
func (a *Array) compactRows(keep []int) *Array {
	out := NewArray(len(keep), a.width)
	for newRow, oldRow := range keep {
		copy(out.data[newRow*a.width:], a.Row(oldRow))
	}

	return out
}

// growRows appends n zero-filled rows in place.
func (a *Array) growRows(n int) {
	a.data = append(a.data, make([]float64, n*a.width)...)
}
