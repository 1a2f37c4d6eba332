// Package pronouns indexes a fixed collection of English pronoun sets and
// answers partial lookups such as "she/her" or "they/.../themselves".
//
// A dataset is loaded once with Load (or New), built into an immutable Trie
// and then shared by any number of concurrent readers.
package pronouns

import (
	"fmt"
	"strings"
)

// KeyLen is the number of grammatical forms in a PronounSet.
const KeyLen = 5

// PronounSet holds the five grammatical forms of one pronoun set.
type PronounSet struct {
	// Nominative is the subject form, e.g. "she".
	Nominative string `json:"subject"`
	// Accusative is the object form, e.g. "her".
	Accusative string `json:"object"`
	// Determiner is the dependent possessive, e.g. "her" in "her frisbee".
	Determiner string `json:"dependent_possessive"`
	// Possessive is the independent possessive, e.g. "hers".
	Possessive string `json:"independent_possessive"`
	// Reflexive is the reflexive form, e.g. "herself".
	Reflexive string `json:"reflexive"`
	// Singular reports whether the set is inflected as a singular pronoun.
	// It is false (plural) when absent from the input.
	Singular bool `json:"singular"`
}

// Form is one labelled row of a pronoun table.
type Form struct {
	Label string
	Word  string
}

// URL returns the site path that shows this set.
func (p PronounSet) URL() string {
	return "/" + strings.Join(p.words(), "/")
}

// Title returns the short "subject/object" name of the set.
func (p PronounSet) Title() string {
	return p.Nominative + "/" + p.Accusative
}

// Plural reports whether the dependent possessive ends in "s". It is a
// spelling check only; Singular is the authoritative number.
func (p PronounSet) Plural() bool {
	return strings.HasSuffix(p.Determiner, "s")
}

// Key returns the fully concrete lookup key for the set.
func (p PronounSet) Key() Key {
	key := make(Key, 0, KeyLen)
	for _, w := range p.words() {
		key = append(key, Exact(w))
	}
	return key
}

// Forms returns the five forms in table order.
func (p PronounSet) Forms() []Form {
	return []Form{
		{"Subject", p.Nominative},
		{"Object", p.Accusative},
		{"Dependent Possessive", p.Determiner},
		{"Independent Possessive", p.Possessive},
		{"Reflexive", p.Reflexive},
	}
}

func (p PronounSet) String() string {
	return strings.Join(p.words(), "/")
}

// words returns the five forms in key order.
func (p PronounSet) words() []string {
	return []string{p.Nominative, p.Accusative, p.Determiner, p.Possessive, p.Reflexive}
}

// validate reports the first empty form, if any.
func (p PronounSet) validate() error {
	for i, f := range p.Forms() {
		if strings.TrimSpace(f.Word) == "" {
			return fmt.Errorf("%w: empty %s (field %d)", ErrMalformedRecord, strings.ToLower(f.Label), i+1)
		}
	}
	return nil
}

// normalized returns p with every form passed through NormalizeWord.
func (p PronounSet) normalized() PronounSet {
	p.Nominative = NormalizeWord(p.Nominative)
	p.Accusative = NormalizeWord(p.Accusative)
	p.Determiner = NormalizeWord(p.Determiner)
	p.Possessive = NormalizeWord(p.Possessive)
	p.Reflexive = NormalizeWord(p.Reflexive)
	return p
}

// fromWords assembles a set from a complete five-word path.
func fromWords(w []string, singular bool) PronounSet {
	return PronounSet{
		Nominative: w[0],
		Accusative: w[1],
		Determiner: w[2],
		Possessive: w[3],
		Reflexive:  w[4],
		Singular:   singular,
	}
}

// New loads the dataset at path and builds a Trie from it.
func New(path string) (*Trie, error) {
	sets, err := Load(path)
	if err != nil {
		return nil, err
	}
	t, err := Build(sets)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
