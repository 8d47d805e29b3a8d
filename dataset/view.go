package dataset

// ============================================================================
// VIEW — Zero-Copy Window Over a Trip Slice
// ============================================================================
// A View holds indices into a shared backing slice. Filtering and outlier
// removal return new Views over the same backing data — the loaded trips are
// never copied and never mutated.
// ============================================================================

// View is an ordered, read-only subset of a loaded trip slice.
// The zero value is an empty view.
type View struct {
	trips   []Trip
	indices []int
}

// NewView creates a view covering every trip in the slice.
// The view holds a reference to the slice — no copy.
func NewView(trips []Trip) View {
	indices := make([]int, len(trips))
	for i := range trips {
		indices[i] = i
	}
	return View{trips: trips, indices: indices}
}

// Len returns the number of trips visible through the view.
func (v View) Len() int { return len(v.indices) }

// At returns the i-th visible trip. Out-of-range indices return a zero Trip.
func (v View) At(i int) Trip {
	if i < 0 || i >= len(v.indices) {
		return Trip{}
	}
	return v.trips[v.indices[i]]
}

// Select returns a sub-view of the trips for which keep returns true.
// Single pass, order preserving, zero data copy.
func (v View) Select(keep func(Trip) bool) View {
	indices := make([]int, 0, len(v.indices))
	for _, idx := range v.indices {
		if keep(v.trips[idx]) {
			indices = append(indices, idx)
		}
	}
	return View{trips: v.trips, indices: indices}
}

// Slice returns the visible trips in positions [from, to) as a new view.
// Bounds are clamped to the view.
func (v View) Slice(from, to int) View {
	if from < 0 {
		from = 0
	}
	if to > len(v.indices) {
		to = len(v.indices)
	}
	if from >= to {
		return View{trips: v.trips}
	}
	return View{trips: v.trips, indices: v.indices[from:to]}
}

// Trips materializes the visible trips into a fresh slice.
// Used by renderers that need plain rows; analysis code should iterate
// with Len/At instead.
func (v View) Trips() []Trip {
	out := make([]Trip, len(v.indices))
	for i, idx := range v.indices {
		out[i] = v.trips[idx]
	}
	return out
}
