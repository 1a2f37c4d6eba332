package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/within/pronouns"
)

func writeTable(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pronouns.tab")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestConvert(t *testing.T) {
	in := writeTable(t, "she\ther\ther\thers\therself\n"+
		"they\tthem\ttheir\ttheirs\tthemselves\tplural\n"+
		"ey\tem\teir\teirs\teirself\n"+
		"she\ther\ther\thers\therself\n")
	out := filepath.Join(t.TempDir(), "pronouns.json")

	n, err := convert(in, out, true)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	sets, err := pronouns.Load(out)
	require.NoError(t, err)
	assert.Equal(t, []pronouns.PronounSet{
		{Nominative: "ey", Accusative: "em", Determiner: "eir", Possessive: "eirs", Reflexive: "eirself", Singular: true},
		{Nominative: "she", Accusative: "her", Determiner: "her", Possessive: "hers", Reflexive: "herself", Singular: true},
		{Nominative: "they", Accusative: "them", Determiner: "their", Possessive: "theirs", Reflexive: "themselves"},
	}, sets)
}

func TestConvertErrors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")

	_, err := convert(writeTable(t, "# only a comment\n"), out, true)
	assert.ErrorIs(t, err, pronouns.ErrEmptyInput)

	_, err = convert(writeTable(t, "she\ther\n"), out, true)
	assert.ErrorIs(t, err, pronouns.ErrMalformedRecord)

	_, err = convert(filepath.Join(t.TempDir(), "missing.tab"), out, true)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

type failingCloser struct {
	bytes.Buffer
	closeErr error
}

func (f *failingCloser) Close() error { return f.closeErr }

func TestWriteAndCloseReportsCloseError(t *testing.T) {
	sets := []pronouns.PronounSet{{Nominative: "e", Accusative: "em", Determiner: "eir", Possessive: "eirs", Reflexive: "emself"}}

	wc := &failingCloser{closeErr: errors.New("disk full")}
	err := writeAndClose(wc, sets)
	assert.EqualError(t, err, "disk full")
	assert.Contains(t, wc.String(), `"subject": "e"`)

	assert.NoError(t, writeAndClose(&failingCloser{}, sets))
}

func TestConvertMatchesLoad(t *testing.T) {
	in := writeTable(t, "ey\tem\teir\teirs\teirself\nthey\tthem\ttheir\ttheirs\tthemselves\tplural\n")
	out := filepath.Join(t.TempDir(), "pronouns.json")

	_, err := convert(in, out, pronouns.DefaultSingular)
	require.NoError(t, err)
	converted, err := pronouns.Load(out)
	require.NoError(t, err)

	direct, err := pronouns.Load(in)
	require.NoError(t, err)
	trie, err := pronouns.Build(direct)
	require.NoError(t, err)
	assert.Equal(t, trie.Gather(), converted)
}
