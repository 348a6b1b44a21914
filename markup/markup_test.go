package markup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/juho05/diacritics"
	"github.com/juho05/diacritics/mappings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveDiacritics(t *testing.T) {
	m := diacritics.New(mappings.Finnish{}, mappings.German{})
	tests := []struct {
		name     string
		selector string
		input    string
		want     string
		changed  int
	}{
		{
			name:     "body text",
			selector: DefaultSelector,
			input:    `<html><head><title>Äiti</title></head><body><p class="öljy">Hyvää yötä</p></body></html>`,
			want:     `<html><head><title>Äiti</title></head><body><p class="öljy">Hyvaa yota</p></body></html>`,
			changed:  1,
		},
		{
			name:     "scripts and styles are kept",
			selector: DefaultSelector,
			input:    `<body><script>var ä = "ö";</script><style>.ä{}</style><b>Straße</b></body>`,
			want:     `<html><head></head><body><script>var ä = "ö";</script><style>.ä{}</style><b>Strasse</b></body></html>`,
			changed:  1,
		},
		{
			name:     "selector",
			selector: "h1, .name",
			input:    `<body><h1>Äänekoski</h1><p>Äiti <span class="name">Jörg</span></p></body>`,
			want:     `<html><head></head><body><h1>Aanekoski</h1><p>Äiti <span class="name">Jorg</span></p></body></html>`,
			changed:  2,
		},
		{
			name:     "nested matches are changed once",
			selector: "div",
			input:    `<body><div>ä<div>ö</div></div></body>`,
			want:     `<html><head></head><body><div>a<div>o</div></div></body></html>`,
			changed:  2,
		},
		{
			name:     "nothing to change",
			selector: DefaultSelector,
			input:    `<body><p>plain</p></body>`,
			want:     `<html><head></head><body><p>plain</p></body></html>`,
			changed:  0,
		},
		{
			name:     "entities",
			selector: DefaultSelector,
			input:    `<body><p>&auml;iti &amp; &lt;&ouml;&gt;</p></body>`,
			want:     `<html><head></head><body><p>aiti &amp; &lt;o&gt;</p></body></html>`,
			changed:  1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := Compile(tt.selector)
			require.NoError(t, err)
			var out bytes.Buffer
			changed, err := RemoveDiacritics(strings.NewReader(tt.input), &out, m, sel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestCompile_Invalid(t *testing.T) {
	_, err := Compile("p[")
	assert.ErrorContains(t, err, `compile selector "p["`)
}
