package pronouns

import "errors"

// ErrEmptyInput is returned by Build when it is given no pronoun sets.
var ErrEmptyInput = errors.New("no pronoun sets to index")

// node holds one candidate word at one field position.
type node struct {
	word string

	// lesser and greater hold words at the same position that sort before
	// and after word.
	lesser  *node
	greater *node

	// deeper is the subtree for the next position, reached when word matches.
	deeper *node

	// terminal marks the fifth-position node of a stored set; singular is
	// only meaningful when terminal is set.
	terminal bool
	singular bool
}

// Trie is a ternary search tree over the five forms of every stored
// PronounSet: each level is a binary search tree of words at one position,
// and a match descends to the next position. A Trie is never modified after
// Build and may be shared by concurrent readers.
type Trie struct {
	root *node
	size int
}

// Build indexes sets. Inserting the same five forms twice keeps a single
// entry whose Singular flag is the one inserted last.
func Build(sets []PronounSet) (*Trie, error) {
	if len(sets) == 0 {
		return nil, ErrEmptyInput
	}
	t := &Trie{}
	for _, ps := range sets {
		if insert(&t.root, ps.words(), ps.Singular) {
			t.size++
		}
	}
	return t, nil
}

// Len returns the number of distinct pronoun sets in t.
func (t *Trie) Len() int {
	return t.size
}

// insert adds key below slot and reports whether a new set was created.
func insert(slot **node, key []string, singular bool) bool {
	for {
		n := *slot
		if n == nil {
			*slot = newChain(key, singular)
			return true
		}
		switch {
		case key[0] < n.word:
			slot = &n.lesser
		case key[0] > n.word:
			slot = &n.greater
		case len(key) == 1:
			// The full key is already stored; only the flag can change.
			n.terminal = true
			n.singular = singular
			return false
		default:
			key = key[1:]
			slot = &n.deeper
		}
	}
}

// newChain builds the deeper-linked run of nodes for key.
func newChain(key []string, singular bool) *node {
	n := &node{word: key[0]}
	if len(key) > 1 {
		n.deeper = newChain(key[1:], singular)
	} else {
		n.terminal = true
		n.singular = singular
	}
	return n
}

// Guess returns every stored set consistent with key, in ascending order of
// subject, then object, and so on through the reflexive. Wildcard fields
// match any word; see Key for the padding applied to short keys. No match is
// an empty result, not an error. Callers wanting a single best guess take
// the last element.
func (t *Trie) Guess(key Key) ([]PronounSet, error) {
	full, err := key.expand()
	if err != nil {
		return nil, err
	}
	var out []PronounSet
	w := walker{emit: func(words []string, singular bool) {
		out = append(out, fromWords(words, singular))
	}}
	w.run(t.root, full)
	return out, nil
}

// Gather returns every stored set in ascending order.
func (t *Trie) Gather() []PronounSet {
	out, _ := t.Guess(nil)
	return out
}

// walker carries the per-query state of a traversal.
type walker struct {
	// emit receives only complete five-word paths and must copy them.
	emit func([]string, bool)
	path [KeyLen]string
	// visited counts nodes examined; each node is examined at most once.
	visited int
}

func (w *walker) run(root *node, key Key) {
	w.walk(root, key, w.path[:0])
}

// walk visits lesser, then the match below n, then greater, so results
// come out in ascending order. path holds the words matched above n.
func (w *walker) walk(n *node, key Key, path []string) {
	if n == nil || len(key) == 0 {
		return
	}
	w.visited++
	want, exact := key[0].Text()

	if !exact || want < n.word {
		w.walk(n.lesser, key, path)
	}
	if !exact || want == n.word {
		matched := append(path, n.word)
		if n.deeper != nil {
			w.walk(n.deeper, key[1:], matched)
		} else if len(matched) == KeyLen {
			w.emit(matched, n.terminal && n.singular)
		}
	}
	if !exact || want > n.word {
		w.walk(n.greater, key, path)
	}
}
