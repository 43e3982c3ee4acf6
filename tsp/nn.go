// Package tsp — nearest-neighbor construction heuristic.
package tsp

// NNConfig parameterizes the nearest-neighbor construction.
type NNConfig struct {
	// Start is the city the tour is built from (and implicitly returns to).
	Start int
}

// NearestNeighbor builds a tour greedily: starting from start, repeatedly
// move to the nearest unvisited city, ties broken by lowest index; the cycle
// closes back to start implicitly. Deterministic given the starting city.
//
// Returns the tour and its length, or ErrIndexOutOfRange for a bad start.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(m *Matrix, start int) ([]int, float64, error) {
	n := m.Size()
	if start < 0 || start >= n {
		return nil, 0, ErrIndexOutOfRange
	}

	var (
		tour    = make([]int, 0, n)
		visited = make([]bool, n)
		cur     = start
		i       int
		k       int
		next    int
		best    float64
		d       float64
	)
	tour = append(tour, cur)
	visited[cur] = true

	for k = 1; k < n; k++ {
		next = -1
		for i = 0; i < n; i++ {
			if visited[i] {
				continue
			}
			d = m.at(cur, i)
			// Strict < while scanning ascending indices: the lowest index
			// wins on equal distances.
			if next == -1 || d < best {
				next = i
				best = d
			}
		}
		tour = append(tour, next)
		visited[next] = true
		cur = next
	}

	return tour, round1e9(m.tourLength(tour)), nil
}
