// Package tsp — moves and neighborhoods.
//
// A Move is a value (kind + two positions), not a live reference: applying it
// mutates a tour in place, and its length delta is computed incrementally
// from the 2–4 edges the move rewires, never by recomputing the whole cycle.
//
// Position conventions (tour of length n, implicitly closed):
//   - MoveSwap:    I < J; exchange tour[I] and tour[J].
//   - MoveReverse: I < J; reverse the inclusive segment tour[I..J] (2-opt).
//   - MoveInsert:  I != J; remove the city at I, then insert it at position J
//     of the shortened sequence (so J addresses the sequence after removal).
//
// Degenerate cyclic identities (full reversal with I==0, J==n-1, and the two
// head/tail insertions that merely rotate the cycle) are legal moves with a
// zero delta.
package tsp

import "math/rand"

// Move describes a single local transformation of a tour.
type Move struct {
	Kind MoveKind
	I, J int
}

// Apply mutates tour in place according to the move.
//
// Complexity: O(1) for swap, O(J-I) for reversal, O(|I-J|) for insertion.
func (mv Move) Apply(tour []int) {
	switch mv.Kind {
	case MoveSwap:
		tour[mv.I], tour[mv.J] = tour[mv.J], tour[mv.I]

	case MoveReverse:
		var (
			i = mv.I
			j = mv.J
		)
		for i < j {
			tour[i], tour[j] = tour[j], tour[i]
			i++
			j--
		}

	case MoveInsert:
		i, j := mv.I, mv.J
		if i == j {
			return
		}
		c := tour[i]
		if i < j {
			copy(tour[i:j], tour[i+1:j+1])
		} else {
			copy(tour[j+1:i+1], tour[j:i])
		}
		tour[j] = c
	}
}

// Delta returns the exact change in tour length that applying the move would
// cause, computed from the touched edges only. Applying the move and then
// recomputing the full length equals current length + Delta within 1e-9.
//
// Complexity: O(1).
func (mv Move) Delta(m *Matrix, tour []int) float64 {
	n := len(tour)
	switch mv.Kind {
	case MoveSwap:
		return swapDelta(m, tour, mv.I, mv.J, n)
	case MoveReverse:
		return reverseDelta(m, tour, mv.I, mv.J, n)
	case MoveInsert:
		return insertDelta(m, tour, mv.I, mv.J, n)
	default:
		return 0
	}
}

// swapDelta handles the three adjacency cases of exchanging positions i<j:
// cyclically adjacent pairs share an edge that must not be double counted.
func swapDelta(m *Matrix, t []int, i, j, n int) float64 {
	// On two cities the positions are adjacent in both directions; the swap
	// only flips orientation.
	if n == 2 {
		return 0
	}

	b := t[i]
	q := t[j]

	// Wrap adjacency: t[j] immediately precedes t[i] on the cycle.
	if i == 0 && j == n-1 {
		p := t[j-1]
		c := t[1]
		return m.at(p, b) + m.at(q, c) - m.at(p, q) - m.at(b, c)
	}

	a := t[(i-1+n)%n]
	r := t[(j+1)%n]

	// Direct adjacency: edges (a,b),(b,q),(q,r) become (a,q),(q,b),(b,r);
	// the middle edge keeps its length under symmetry.
	if j == i+1 {
		return m.at(a, q) + m.at(b, r) - m.at(a, b) - m.at(q, r)
	}

	c := t[i+1]
	p := t[j-1]
	return m.at(a, q) + m.at(q, c) + m.at(p, b) + m.at(b, r) -
		m.at(a, b) - m.at(b, c) - m.at(p, q) - m.at(q, r)
}

// reverseDelta is the classic symmetric 2-opt delta: only the two boundary
// edges change; every edge inside the reversed segment keeps its length.
func reverseDelta(m *Matrix, t []int, i, j, n int) float64 {
	// Reversing the whole permutation only flips orientation.
	if i == 0 && j == n-1 {
		return 0
	}
	a := t[(i-1+n)%n]
	b := t[i]
	c := t[j]
	d := t[(j+1)%n]
	return m.at(a, c) + m.at(b, d) - m.at(a, b) - m.at(c, d)
}

// insertDelta removes city c=t[i] (splicing its former neighbors together)
// and charges the insertion edge split at the destination.
func insertDelta(m *Matrix, t []int, i, j, n int) float64 {
	if i == j {
		return 0
	}
	// Head-to-tail (and tail-to-head) insertions rotate the cycle.
	if (i == 0 && j == n-1) || (i == n-1 && j == 0) {
		return 0
	}

	c := t[i]
	p := t[(i-1+n)%n]
	q := t[(i+1)%n]

	// Destination edge (a,b) in the shortened sequence, expressed in the
	// original positions: after t[j] when moving right, before t[j] when
	// moving left.
	var a, b int
	if i < j {
		a = t[j]
		b = t[(j+1)%n]
	} else {
		a = t[(j-1+n)%n]
		b = t[j]
	}

	return m.at(p, q) - m.at(p, c) - m.at(c, q) +
		m.at(a, c) + m.at(c, b) - m.at(a, b)
}

// Neighborhood returns the full move set of the given kind for tours of
// length n, in a deterministic scan order:
//   - swap / two_opt: all pairs (i, j) with 0 ≤ i < j ≤ n-1,
//   - insert: all ordered pairs (i, j) with i != j.
//
// Complexity: O(n²) time and space.
func Neighborhood(kind MoveKind, n int) []Move {
	var (
		moves []Move
		i, j  int
	)
	if kind == MoveInsert {
		moves = make([]Move, 0, n*(n-1))
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i != j {
					moves = append(moves, Move{Kind: kind, I: i, J: j})
				}
			}
		}
		return moves
	}

	moves = make([]Move, 0, n*(n-1)/2)
	for i = 0; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			moves = append(moves, Move{Kind: kind, I: i, J: j})
		}
	}
	return moves
}

// SampleMoves draws up to max unique moves of the given kind. Sampling stops
// after a bounded number of attempts, so the result may be shorter than max
// on tiny instances. The insertion order is deterministic under a fixed rng,
// keeping sampled-neighborhood engines reproducible.
//
// Complexity: O(max) expected time.
func SampleMoves(kind MoveKind, n, max int, rng *rand.Rand) []Move {
	var total int
	if kind == MoveInsert {
		total = n * (n - 1)
	} else {
		total = n * (n - 1) / 2
	}
	if max >= total {
		return Neighborhood(kind, n)
	}

	var (
		seen       = make(map[[2]int]struct{}, max)
		moves      = make([]Move, 0, max)
		attempts   = 0
		attemptCap = max*50 + 100
		mv         Move
		key        [2]int
		ok         bool
	)
	for len(moves) < max && attempts < attemptCap {
		attempts++
		mv = RandomMove(kind, n, rng)
		key = [2]int{mv.I, mv.J}
		if _, ok = seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		moves = append(moves, mv)
	}
	return moves
}

// RandomMove draws a single uniformly random move of the given kind.
//
// Complexity: O(1).
func RandomMove(kind MoveKind, n int, rng *rand.Rand) Move {
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	if kind != MoveInsert && i > j {
		i, j = j, i
	}
	return Move{Kind: kind, I: i, J: j}
}

// undo returns the signature-relevant inverse of an applied move: the move
// that would restore the previous tour. Swap and reversal are their own
// inverses; an insertion i→j is undone by the insertion j→i.
func (mv Move) undo() Move {
	if mv.Kind == MoveInsert {
		return Move{Kind: mv.Kind, I: mv.J, J: mv.I}
	}
	return mv
}
