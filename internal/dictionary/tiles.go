// internal/dictionary/tiles.go
//
// The fixed weighted alphabet the game draws from.
// Defines:
//   - tile: one letter with its point value and its count in the bag.
//   - tiles: the full 26-letter distribution (98 tiles, 187 points total).
//   - letterPoints: letter → point value lookup derived from the table.

package dictionary

// tile describes one letter of the alphabet: how much it scores and how
// many copies of it exist in the bag.
type tile struct {
	letter rune
	points int
	count  int
}

// tiles is the complete bag, highest-frequency letters first.
// There are no blank tiles. Counts sum to 98 and points-weighted counts
// sum to 187; both are locked down by tests.
var tiles = [26]tile{
	{'E', 1, 12},
	{'A', 1, 9},
	{'I', 1, 9},
	{'O', 1, 8},
	{'N', 1, 6},
	{'R', 1, 6},
	{'T', 1, 6},
	{'L', 1, 4},
	{'S', 1, 4},
	{'U', 1, 4},
	{'D', 2, 4},
	{'G', 2, 3},
	{'B', 3, 2},
	{'C', 3, 2},
	{'M', 3, 2},
	{'P', 3, 2},
	{'F', 4, 2},
	{'H', 4, 2},
	{'V', 4, 2},
	{'W', 4, 2},
	{'Y', 4, 2},
	{'K', 5, 1},
	{'J', 8, 1},
	{'X', 8, 1},
	{'Q', 10, 1},
	{'Z', 10, 1},
}

// letterPoints maps an uppercase letter to its point value.
var letterPoints = func() map[rune]int {
	m := make(map[rune]int, len(tiles))
	for _, t := range tiles {
		m[t.letter] = t.points
	}
	return m
}()

// bagSize is the total number of tiles in the bag.
var bagSize = func() int {
	n := 0
	for _, t := range tiles {
		n += t.count
	}
	return n
}()
