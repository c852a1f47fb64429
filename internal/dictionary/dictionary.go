// internal/dictionary/dictionary.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load a WORD<TAB>definition list once at startup and score every word
//     from the tile point values.
//   - Case-insensitive playability lookup.
//   - Multiset letter matching (the anagram/subset check).
//   - Best-word ranking over the full word list.
//   - Random tile draws that are guaranteed to have at least one playable word.
//
// The Dictionary is immutable after Load and safe for unsynchronized
// concurrent reads; the background best-answer scans rely on that.

package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// WordEntry is one playable word with its definition and its precomputed
// letter-point score.
type WordEntry struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	Score      int    `json:"score"`
}

// ScoringMethod selects how a word's effective score is derived.
type ScoringMethod string

const (
	// ScoreNormal uses the sum of the word's letter point values.
	ScoreNormal ScoringMethod = "Normal"
	// ScoreLength uses the word's length.
	ScoreLength ScoringMethod = "Length"
)

// Score returns the entry's effective score under the method.
// Unknown methods fall back to Normal.
func (m ScoringMethod) Score(e WordEntry) int {
	if m == ScoreLength {
		return len(e.Word)
	}
	return e.Score
}

// Dictionary holds the playable word set keyed by uppercase canonical form.
type Dictionary struct {
	words map[string]WordEntry
}

// Load parses a tab-separated word/definition list, one entry per line.
// Every word is canonicalized to uppercase and scored once. A line without
// a tab separator is an error; the caller treats that as startup-fatal.
func Load(r io.Reader) (*Dictionary, error) {
	words := make(map[string]WordEntry)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		word, definition, ok := strings.Cut(sc.Text(), "\t")
		if !ok {
			return nil, fmt.Errorf("dictionary: line %d: missing tab separator", line)
		}
		word = strings.ToUpper(word)
		words[word] = WordEntry{
			Word:       word,
			Definition: definition,
			Score:      wordScore(word),
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read: %w", err)
	}
	return &Dictionary{words: words}, nil
}

// LoadFile loads a dictionary from a word list on disk.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Lookup returns the entry for word if it is playable. Case-insensitive.
func (d *Dictionary) Lookup(word string) (WordEntry, bool) {
	e, ok := d.words[strings.ToUpper(word)]
	return e, ok
}

// Len reports the number of loaded words.
func (d *Dictionary) Len() int { return len(d.words) }

// wordScore sums the point values of the word's letters.
// Characters outside the tile alphabet contribute nothing.
func wordScore(word string) int {
	score := 0
	for _, r := range strings.ToUpper(word) {
		score += letterPoints[r]
	}
	return score
}

// IsSubsetOfLetters reports whether word can be spelled from letters,
// counting multiplicity: each tile may be used at most once. Both sides
// are compared uppercase, so "aa" is playable from [A,A,B] but "aaa" and
// "abb" are not.
func IsSubsetOfLetters(letters []rune, word string) bool {
	remaining := make(map[rune]int, len(letters))
	for _, r := range letters {
		remaining[toUpper(r)]++
	}
	for _, r := range strings.ToUpper(word) {
		if remaining[r] == 0 {
			return false
		}
		remaining[r]--
	}
	return true
}

// yieldEvery bounds how many words the best-word scan processes between
// runtime.Gosched calls, so a scan never starves foreground goroutines.
const yieldEvery = 512

// BestWords scans the whole dictionary for words playable from letters and
// returns up to limit of them, ordered by effective score descending.
// Ties break alphabetically so repeated scans over the same inputs produce
// identical sequences despite map iteration order.
//
// This is the single most expensive operation in the system; it is only
// ever run by the background enrichment task, never on a request path.
func (d *Dictionary) BestWords(letters []rune, limit int, method ScoringMethod) []WordEntry {
	matches := []WordEntry{}
	seen := 0
	for word, entry := range d.words {
		if seen++; seen%yieldEvery == 0 {
			runtime.Gosched()
		}
		if IsSubsetOfLetters(letters, word) {
			matches = append(matches, entry)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		si, sj := method.Score(matches[i]), method.Score(matches[j])
		if si != sj {
			return si > sj
		}
		return matches[i].Word < matches[j].Word
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// drawWarnEvery is the rejection-sampling iteration count at which DrawTiles
// starts logging. Hitting it at all means the dictionary is far too thin.
const drawWarnEvery = 100

// ErrUnplayableBag is returned by DrawTiles when no dictionary word that
// fits in the draw can be spelled from the remaining bag, so no draw of
// the requested size could ever be playable.
var ErrUnplayableBag = errors.New("no dictionary word is playable from the remaining tiles")

// DrawTiles draws size tiles without replacement from the weighted bag,
// excluding banned letters, and retries until at least one dictionary word
// is playable from the draw.
//
// The retry loop only runs once a playable draw is known to exist: banned
// letters can empty the bag, or leave a bag whose every word needs more
// tiles than one draw holds, and either would otherwise spin forever.
// Those cases return ErrUnplayableBag instead.
func (d *Dictionary) DrawTiles(size int, banned map[rune]struct{}) ([]rune, error) {
	bag := make([]rune, 0, bagSize)
	for _, t := range tiles {
		if _, ok := banned[t.letter]; ok {
			continue
		}
		for i := 0; i < t.count; i++ {
			bag = append(bag, t.letter)
		}
	}
	// A draw cannot exceed what the bag holds.
	if size > len(bag) {
		size = len(bag)
	}
	if !d.hasPlayableDraw(bag, size) {
		return nil, ErrUnplayableBag
	}
	for attempt := 1; ; attempt++ {
		rand.Shuffle(len(bag), func(i, j int) { bag[i], bag[j] = bag[j], bag[i] })
		drawn := make([]rune, size)
		copy(drawn, bag[:size])
		if d.hasPlayableWord(drawn) {
			return drawn, nil
		}
		if attempt%drawWarnEvery == 0 {
			log.Warn().
				Int("attempts", attempt).
				Str("letters", string(drawn)).
				Msg("tile draw still has no playable word")
		}
	}
}

// hasPlayableWord reports whether any dictionary word is a subset of letters.
// Stops at the first match, which for a real word list is almost immediate.
func (d *Dictionary) hasPlayableWord(letters []rune) bool {
	for word := range d.words {
		if IsSubsetOfLetters(letters, word) {
			return true
		}
	}
	return false
}

// hasPlayableDraw reports whether some draw of the given size from letters
// contains a playable word: a word no longer than the draw whose tiles the
// bag can supply. When one exists, rejection sampling finds it with
// positive probability, so the retry loop terminates.
func (d *Dictionary) hasPlayableDraw(letters []rune, size int) bool {
	for word := range d.words {
		if len(word) <= size && IsSubsetOfLetters(letters, word) {
			return true
		}
	}
	return false
}

// toUpper uppercases an ASCII letter rune; other runes pass through.
func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
