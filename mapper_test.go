package diacritics_test

import (
	"os"
	"testing"

	"github.com/juho05/diacritics"
	"github.com/juho05/diacritics/mappings"
	"github.com/juho05/diacritics/util"
	"github.com/juho05/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetSeverity(log.NONE)
	os.Exit(m.Run())
}

func TestMapper_RemoveDiacritics_Finnish(t *testing.T) {
	m := diacritics.New(mappings.Finnish{})
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"the empty string stays the empty string", "", ""},
		{"whitespace only input is returned unchanged", "   ", "   "},
		{"tabs and newlines are returned unchanged", "\t\r\n", "\t\r\n"},
		{"uppercase word", "ÄÄKKÖSET", "AAKKOSET"},
		{"lowercase word", "äitee", "aitee"},
		{"text without diacritics stays unchanged", "Hello World", "Hello World"},
		{"mixed case", "Äiti Öljy šakki Žurnaali", "Aiti Oljy sakki Zurnaali"},
		{"unmapped diacritics are kept", "Crème brûlée", "Crème brûlée"},
		{"surrounding whitespace is kept", "  ö  ", "  o  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.RemoveDiacritics(tt.input, nil))
		})
	}
}

func TestMapper_RemoveDiacritics_CasePreservation(t *testing.T) {
	m := diacritics.New(diacritics.NewProvider("test", map[rune]diacritics.Replacement{
		'ä': {Base: "a"},
	}))
	assert.Equal(t, "A", m.RemoveDiacritics("Ä", nil))
	assert.Equal(t, "a", m.RemoveDiacritics("ä", nil))
	assert.Equal(t, "aAaA", m.RemoveDiacritics("äÄäÄ", nil))
}

func TestMapper_RemoveDiacritics_Overrides(t *testing.T) {
	m := diacritics.New(diacritics.NewProvider("test", map[rune]diacritics.Replacement{
		'þ': {Base: "th", Upper: util.ToPtr("Th")},
		'ø': {Base: "o", Lower: util.ToPtr("oe")},
		'œ': {Base: "oe", Upper: util.ToPtr("OE"), Lower: util.ToPtr("oe")},
		'ŋ': {Base: "ng", Upper: util.ToPtr(""), Lower: util.ToPtr("")},
	}))
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"upper override replaces uppercased base", "Þ", "Th"},
		{"upper override inside a word", "ÞÓR", "ThÓR"},
		{"lowercase ignores the upper override", "þ", "th"},
		{"lower override replaces base", "ø", "oe"},
		{"lower override inside a word", "Bjørn", "Bjoern"},
		{"uppercase ignores the lower override", "Ø", "O"},
		{"both overrides", "Œœ", "OEoe"},
		{"empty overrides remove the character", "aŋbŊc", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.RemoveDiacritics(tt.input, nil))
		})
	}
}

func TestMapper_RemoveDiacritics_FullCaseMapping(t *testing.T) {
	m := diacritics.New(mappings.German{})
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"sharp s", "Straße", "Strasse"},
		{"capital sharp s is uppercased to two letters", "STRAẞE", "STRASSE"},
		{"umlauts use the upper override", "Äpfel Öl Übel", "Aepfel Oel Uebel"},
		{"lowercase umlauts", "schön für", "schoen fuer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.RemoveDiacritics(tt.input, nil))
		})
	}
}

func TestMapper_RemoveDiacritics_InvalidUTF8(t *testing.T) {
	m := diacritics.New(mappings.Finnish{})
	assert.Equal(t, "a\xffo\xfe", m.RemoveDiacritics("ä\xffö\xfe", nil))
	assert.Equal(t, "\xff\xfe", m.RemoveDiacritics("\xff\xfe", nil))
}

func TestMapper_RemoveDiacritics_NoProviders(t *testing.T) {
	tests := []struct {
		name   string
		mapper *diacritics.Mapper
	}{
		{"no arguments", diacritics.New()},
		{"nil slice", diacritics.New(nil...)},
		{"nil provider", diacritics.New(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0, tt.mapper.Len())
			assert.Equal(t, "ÄÄKKÖSET", tt.mapper.RemoveDiacritics("ÄÄKKÖSET", nil))
			assert.False(t, tt.mapper.HasDiacritics("ÄÄKKÖSET", nil))
		})
	}
}

func TestMapper_Providers(t *testing.T) {
	m := diacritics.New(mappings.German{}, nil, mappings.Finnish{})
	assert.Equal(t, []string{"german", "finnish"}, m.Providers())

	names := m.Providers()
	names[0] = "changed"
	assert.Equal(t, "german", m.Providers()[0])

	assert.Empty(t, diacritics.New().Providers())
}

func TestMapper_RemoveDiacritics_Options(t *testing.T) {
	m := diacritics.New(mappings.Finnish{})
	assert.Equal(t, m.RemoveDiacritics("ÄÄKKÖSET", nil), m.RemoveDiacritics("ÄÄKKÖSET", &diacritics.Options{}))
	assert.Equal(t, m.HasDiacritics("äiti", nil), m.HasDiacritics("äiti", &diacritics.Options{}))
}

func TestMapper_FirstWins(t *testing.T) {
	p1 := diacritics.NewProvider("p1", map[rune]diacritics.Replacement{
		'x': {Base: "one"},
		'ä': {Base: "a"},
	})
	p2 := diacritics.NewProvider("p2", map[rune]diacritics.Replacement{
		'x': {Base: "two"},
		'ö': {Base: "o"},
	})

	m := diacritics.New(p1, p2)
	assert.Equal(t, "one a o", m.RemoveDiacritics("x ä ö", nil))
	assert.Equal(t, 3, m.Len())

	m = diacritics.New(p2, p1)
	assert.Equal(t, "two a o", m.RemoveDiacritics("x ä ö", nil))
	assert.Equal(t, 3, m.Len())
}

func TestMapper_FirstWins_Languages(t *testing.T) {
	tests := []struct {
		name      string
		providers []diacritics.Provider
		input     string
		want      string
	}{
		{"finnish before german", []diacritics.Provider{mappings.Finnish{}, mappings.German{}}, "Äiti", "Aiti"},
		{"german before finnish", []diacritics.Provider{mappings.German{}, mappings.Finnish{}}, "Äiti", "Aeiti"},
		{"danish only", []diacritics.Provider{mappings.Danish{}}, "Ærø Århus", "Aeroe Aarhus"},
		{"french before danish", []diacritics.Provider{mappings.French{}, mappings.Danish{}}, "Ærø", "AEroe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := diacritics.New(tt.providers...)
			assert.Equal(t, tt.want, m.RemoveDiacritics(tt.input, nil))
		})
	}
}

func TestMapper_AllLanguages(t *testing.T) {
	m := diacritics.New(mappings.All()...)
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"finnish", "ÄÄKKÖSET", "AAKKOSET"},
		{"french", "Crème Brûlée à la façon", "Creme Brulee a la facon"},
		{"polish", "Łódź Żółć", "Lodz Zolc"},
		{"czech", "Příliš žluťoučký kůň", "Prilis zlutoucky kun"},
		{"vietnamese", "Tiếng Việt VIỆT NAM", "Tieng Viet VIET NAM"},
		{"greek keeps the script", "Αθήνα ΆΝΩ", "Αθηνα ΑΝΩ"},
		{"icelandic thorn", "Þór", "Thor"},
		{"turkish dotless i", "ışık", "isik"},
		{"turkish dotted capital i is kept", "İstanbul", "İstanbul"},
		{"urdu", "آپ", "اپ"},
		{"german sharp s", "Fußgänger", "Fussganger"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.RemoveDiacritics(tt.input, nil)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, m.RemoveDiacritics(got, nil), "removing diacritics should be idempotent")
		})
	}
}

func TestMapper_HasDiacritics(t *testing.T) {
	m := diacritics.New(mappings.Finnish{})
	tests := []struct {
		name   string
		source string
		want   bool
	}{
		{"the empty string", "", false},
		{"whitespace", "  \t", false},
		{"no diacritics", "Hello World", false},
		{"only diacritics", "ÄÖ", true},
		{"mixed", "Hello Wörld", true},
		{"unmapped diacritics", "é", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.HasDiacritics(tt.source, nil))
			assert.Equal(t, m.RemoveDiacritics(tt.source, nil) != tt.source, m.HasDiacritics(tt.source, nil))
		})
	}
}

func TestMapper_HasDiacritics_IdentityRule(t *testing.T) {
	m := diacritics.New(diacritics.NewProvider("identity", map[rune]diacritics.Replacement{
		'a': {Base: "a"},
	}))
	assert.False(t, m.HasDiacritics("banana", nil), "a rule that does not change the text is not a diacritic")
}

func TestMapper_All(t *testing.T) {
	p1 := diacritics.NewProvider("p1", map[rune]diacritics.Replacement{
		'ö': {Base: "o"},
		'ä': {Base: "a"},
	})
	p2 := diacritics.NewProvider("p2", map[rune]diacritics.Replacement{
		'ä': {Base: "ae"},
		'ß': {Base: "ss"},
	})
	m := diacritics.New(p1, p2)

	type pair struct {
		char rune
		base string
	}
	collect := func() []pair {
		var pairs []pair
		for char, base := range m.All() {
			pairs = append(pairs, pair{char, base})
		}
		return pairs
	}

	want := []pair{{'ä', "a"}, {'ö', "o"}, {'ß', "ss"}}
	assert.Equal(t, want, collect())
	assert.Equal(t, collect(), collect(), "enumeration order should be stable")

	t.Run("stops when yield returns false", func(t *testing.T) {
		count := 0
		for range m.All() {
			count++
			break
		}
		assert.Equal(t, 1, count)
	})
}

func TestMapper_Lookup(t *testing.T) {
	m := diacritics.New(mappings.Icelandic{})

	r, ok := m.Lookup('þ')
	require.True(t, ok)
	assert.Equal(t, "th", r.Base)
	require.NotNil(t, r.Upper)
	assert.Equal(t, "Th", *r.Upper)
	assert.Nil(t, r.Lower)

	*r.Upper = "changed"
	r2, _ := m.Lookup('þ')
	assert.Equal(t, "Th", *r2.Upper, "lookup should return a copy")
	assert.Equal(t, "Thor", m.RemoveDiacritics("Þor", nil))

	_, ok = m.Lookup('Þ')
	assert.False(t, ok, "lookup should not fold case")
	_, ok = m.Lookup('x')
	assert.False(t, ok)
}

func TestNewProvider_Copies(t *testing.T) {
	table := map[rune]diacritics.Replacement{
		'ä': {Base: "a", Upper: util.ToPtr("A")},
	}
	p := diacritics.NewProvider("test", table)
	table['ä'] = diacritics.Replacement{Base: "changed"}
	table['ö'] = diacritics.Replacement{Base: "o"}

	assert.Equal(t, "test", p.Name())
	mapping := p.Mapping()
	assert.Len(t, mapping, 1)
	assert.Equal(t, "a", mapping['ä'].Base)

	mapping['ä'] = diacritics.Replacement{Base: "mutated"}
	*p.Mapping()['ä'].Upper = "mutated"
	assert.Equal(t, "a", p.Mapping()['ä'].Base)
	assert.Equal(t, "A", *p.Mapping()['ä'].Upper)
}

func TestMapper_ConcurrentUse(t *testing.T) {
	m := diacritics.New(mappings.All()...)
	done := make(chan string, 16)
	for range 16 {
		go func() {
			done <- m.RemoveDiacritics("Příliš žluťoučký kůň úpěl ďábelské ódy", nil)
		}()
	}
	for range 16 {
		assert.Equal(t, "Prilis zlutoucky kun upel dabelske ody", <-done)
	}
}
