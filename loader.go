package pronouns

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrMalformedRecord is wrapped by every error describing a bad dataset row.
var ErrMalformedRecord = errors.New("malformed pronoun set")

// DefaultSingular is the number given to table rows without a number
// column, and to JSON entries without a "singular" field.
const DefaultSingular = false

// Load reads a dataset file. The format follows the extension:
// ".json" for an array of PronounSet objects, ".tab" or ".tsv" for the
// tab-separated pronoun table (see ReadTable).
func Load(path string) ([]PronounSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	name := filepath.Base(path)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ReadJSON(f, name)
	case ".tab", ".tsv":
		return ReadTable(f, name, DefaultSingular)
	default:
		return nil, fmt.Errorf("%s: unsupported dataset format %q", name, ext)
	}
}

// ReadJSON decodes a JSON array of pronoun sets. name is used in errors.
func ReadJSON(r io.Reader, name string) ([]PronounSet, error) {
	var sets []PronounSet
	if err := json.NewDecoder(r).Decode(&sets); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	for i, ps := range sets {
		if err := ps.validate(); err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", name, i, err)
		}
		sets[i] = ps.normalized()
	}
	return sets, nil
}

// ReadTable parses the tab-separated pronoun table, one set per line:
//
//	subject	object	dependent	independent	reflexive[	number]
//
// The optional sixth column is "singular", "plural" or a boolean; rows
// without it get defaultSingular. Blank lines and lines starting with "#"
// are skipped. name is used in errors.
func ReadTable(r io.Reader, name string, defaultSingular bool) ([]PronounSet, error) {
	var sets []PronounSet
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ps, err := parseRow(strings.Split(line, "\t"), defaultSingular)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		sets = append(sets, ps)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return sets, nil
}

// parseRow builds a PronounSet from the columns of one table row.
func parseRow(cols []string, defaultSingular bool) (PronounSet, error) {
	if len(cols) != KeyLen && len(cols) != KeyLen+1 {
		return PronounSet{}, fmt.Errorf("%w: %d columns, want %d or %d", ErrMalformedRecord, len(cols), KeyLen, KeyLen+1)
	}
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	ps := fromWords(cols, defaultSingular).normalized()
	if err := ps.validate(); err != nil {
		return PronounSet{}, err
	}
	if len(cols) == KeyLen+1 {
		singular, err := parseNumber(cols[KeyLen])
		if err != nil {
			return PronounSet{}, err
		}
		ps.Singular = singular
	}
	return ps, nil
}

// parseNumber reads the grammatical-number column.
func parseNumber(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "singular", "sg":
		return true, nil
	case "plural", "pl":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: number column %q is not singular, plural or a boolean", ErrMalformedRecord, s)
	}
	return b, nil
}
