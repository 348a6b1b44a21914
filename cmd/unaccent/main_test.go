package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/juho05/diacritics"
	"github.com/juho05/diacritics/mappings"
	"github.com/juho05/diacritics/markup"
	"github.com/juho05/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetSeverity(log.NONE)
	os.Exit(m.Run())
}

func TestProcess(t *testing.T) {
	m := diacritics.New(mappings.Finnish{}, mappings.German{})
	tests := []struct {
		name  string
		input string
		opts  options
		want  string
		found bool
	}{
		{"remove", "Äiti ja öljy\nstraße\n", options{compose: true}, "Aiti ja oljy\nstrasse\n", true},
		{"no trailing newline", "hyvää yötä", options{compose: true}, "hyvaa yota", true},
		{"crlf", "ä\r\nö\r\n", options{compose: true}, "a\r\no\r\n", true},
		{"nothing to remove", "plain text\n", options{compose: true}, "plain text\n", false},
		{"empty input", "", options{compose: true}, "", false},
		{"decomposed", "A\u0308iti\n", options{compose: true}, "Aiti\n", true},
		{"decomposed without compose", "A\u0308iti\n", options{}, "A\u0308iti\n", false},
		{"check", "plain\nÄiti\nmore\nyötä\n", options{check: true, compose: true}, "stdin:2: Äiti\nstdin:4: yötä\n", true},
		{"check clean", "plain\n", options{check: true}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			var read int
			found, err := process("stdin", strings.NewReader(tt.input), &out, m, tt.opts, func(n int) {
				read += n
			})
			require.NoError(t, err)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, out.String())
			assert.Equal(t, len(tt.input), read, "every input byte should be reported")
		})
	}
}

func TestProcess_ReadError(t *testing.T) {
	m := diacritics.New(mappings.Finnish{})
	readErr := errors.New("broken pipe")
	var out bytes.Buffer
	_, err := process("input.txt", iotest.ErrReader(readErr), &out, m, options{}, nil)
	assert.ErrorIs(t, err, readErr)
	assert.ErrorContains(t, err, "read input.txt")
}

func TestProcessFile(t *testing.T) {
	m := diacritics.New(mappings.Finnish{})
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("Ääkköset\n"), 0644))

	var out bytes.Buffer
	found, err := processFile(path, &out, m, options{compose: true}, false)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Aakkoset\n", out.String())

	_, err = processFile(filepath.Join(t.TempDir(), "missing.txt"), &out, m, options{}, false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestProcessHTML(t *testing.T) {
	m := diacritics.New(mappings.Finnish{})
	dir := t.TempDir()
	first := filepath.Join(dir, "first.html")
	second := filepath.Join(dir, "second.html")
	require.NoError(t, os.WriteFile(first, []byte(`<p title="ä">Äiti</p>`), 0644))
	require.NoError(t, os.WriteFile(second, []byte(`<h1>Öljy</h1><p>öljy</p>`), 0644))

	sel, err := markup.Compile("p")
	require.NoError(t, err)

	var out bytes.Buffer
	err = processHTML([]string{first, second}, &out, m, sel)
	require.NoError(t, err)
	assert.Equal(t, `<html><head></head><body><p title="ä">Aiti</p></body></html>`+
		`<html><head></head><body><h1>Öljy</h1><p>oljy</p></body></html>`, out.String())
}
