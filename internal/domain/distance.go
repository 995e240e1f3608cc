package domain

// DistanceMatrix maps origin area -> destination area -> distance.
// Rows need not be square; only the rows actually looked up must exist.
type DistanceMatrix map[string]map[string]float64

// Set records a single distance, creating the origin row if needed.
func (m DistanceMatrix) Set(from, to string, d float64) {
	row, ok := m[from]
	if !ok {
		row = make(map[string]float64)
		m[from] = row
	}
	row[to] = d
}

// HasOrigin reports whether the matrix has a row for origin.
func (m DistanceMatrix) HasOrigin(origin string) bool {
	_, ok := m[origin]
	return ok
}

// Distance returns the distance from one area to another.
func (m DistanceMatrix) Distance(from, to string) (float64, error) {
	row, ok := m[from]
	if !ok {
		return 0, &MissingDistanceError{From: from}
	}
	d, ok := row[to]
	if !ok {
		return 0, &MissingDistanceError{From: from, To: to}
	}
	return d, nil
}

// Row returns a copy of the distances from origin to the given areas.
// Areas absent from the row are left out of the result.
func (m DistanceMatrix) Row(origin string, areas []string) map[string]float64 {
	out := make(map[string]float64, len(areas))
	row := m[origin]
	for _, a := range areas {
		if d, ok := row[a]; ok {
			out[a] = d
		}
	}
	return out
}
