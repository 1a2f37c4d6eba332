package pronouns

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSON(t *testing.T) {
	sets, err := Load("testdata/pronouns.json")
	require.NoError(t, err)
	assert.Equal(t, []PronounSet{she, he, they}, sets)
}

func TestLoadTable(t *testing.T) {
	sets, err := Load("testdata/pronouns.tab")
	require.NoError(t, err)
	xe := PronounSet{"xe", "xem", "xyr", "xyrs", "xemself", true}
	assert.Equal(t, []PronounSet{she, he, they, xe}, sets)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		path string
		want error
		msg  string
	}{
		{"testdata/short-row.tab", ErrMalformedRecord, "short-row.tab:2"},
		{"testdata/bad-number.tab", ErrMalformedRecord, `"maybe"`},
		{"testdata/empty-field.json", ErrMalformedRecord, "empty object"},
		{"testdata/missing.json", os.ErrNotExist, "open dataset"},
		{"testdata/pronouns.csv", nil, "unsupported dataset format"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestReadTableDefaultNumber(t *testing.T) {
	in := "ey\tem\teir\teirs\teirself\nthey\tthem\ttheir\ttheirs\tthemselves\tplural\n"

	sets, err := ReadTable(strings.NewReader(in), "inline", true)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.True(t, sets[0].Singular)
	assert.False(t, sets[1].Singular)

	sets, err = ReadTable(strings.NewReader(in), "inline", false)
	require.NoError(t, err)
	assert.False(t, sets[0].Singular)
}

func TestLoadNormalizesForms(t *testing.T) {
	sets, err := ReadTable(strings.NewReader("One\tONE\tOne's\tone's\tOneself\n"), "inline", DefaultSingular)
	require.NoError(t, err)
	one := PronounSet{"one", "one", "one's", "one's", "oneself", false}
	assert.Equal(t, []PronounSet{one}, sets)

	sets, err = ReadJSON(strings.NewReader(`[{"subject":"SIE","object":"Sier","dependent_possessive":"hir","independent_possessive":"hirs","reflexive":"Hirself"}]`), "inline")
	require.NoError(t, err)
	tr, err := Build(sets)
	require.NoError(t, err)

	got, err := tr.Guess(ParseKey("Sie/SIER").Padded())
	require.NoError(t, err)
	assert.Equal(t, []PronounSet{{"sie", "sier", "hir", "hirs", "hirself", false}}, got)
}

func TestParseNumber(t *testing.T) {
	for in, want := range map[string]bool{
		"singular": true,
		"Singular": true,
		"sg":       true,
		"true":     true,
		"1":        true,
		"plural":   false,
		"PL":       false,
		"false":    false,
	} {
		got, err := parseNumber(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parseNumber("dual")
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestNew(t *testing.T) {
	tr, err := New("testdata/pronouns.json")
	require.NoError(t, err)
	assert.Equal(t, []PronounSet{he, she, they}, tr.Gather())

	_, err = New("testdata/empty.json")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = New("testdata/missing.json")
	assert.Error(t, err)
}

func TestShippedDataset(t *testing.T) {
	tr, err := New("data/pronouns.json")
	require.NoError(t, err)
	assert.Greater(t, tr.Len(), 20)

	got, err := tr.Guess(ParseKey("they/.../themselves"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].Singular)
}
