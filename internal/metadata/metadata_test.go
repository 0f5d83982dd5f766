package metadata

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lectureDay = time.Date(2024, time.March, 7, 14, 30, 0, 0, time.UTC)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       string
	}{
		{"first line", "Hello\nworld", "Hello"},
		{"no newline", "single line", "single line"},
		{"empty transcript", "", ""},
		{"leading newline", "\nsecond", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.transcript, lectureDay).Title)
		})
	}
}

func TestDate(t *testing.T) {
	m := Extract("x", lectureDay)
	assert.Equal(t, "07/03/2024", m.Date())
}

func TestTopics(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single run", "cat cat dog", []string{"cat cat dog"}},
		{"duplicates removed in order", "cat, dog, cat, bird", []string{"cat", "dog", "bird"}},
		{"accented letters are word characters", "Olá, você!", []string{"Olá", "você"}},
		{"trims surrounding whitespace", "  aula  ;  dois  ", []string{"aula", "dois"}},
		{"runs span newlines", "Hello\nworld", []string{"Hello\nworld"}},
		{"digits", "aula 1. parte 2", []string{"aula 1", "parte 2"}},
		{"punctuation only", "!!! ... ???", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Topics(tt.text))
		})
	}
}

func TestTopicsCap(t *testing.T) {
	words := make([]string, 15)
	for i := range words {
		words[i] = fmt.Sprintf("tema%d", i)
	}

	got := Topics(strings.Join(words, ". "))
	require.Len(t, got, MaxTopics)
	assert.Equal(t, words[:MaxTopics], got)
}

func TestTopicsCapAfterDedup(t *testing.T) {
	text := "a; a; b; b; c; d; e; f; g; h; i; j; k; l"
	got := Topics(text)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}, got)
}

func TestExtractIdempotent(t *testing.T) {
	transcript := "Introdução à física\nhoje falamos de energia, massa e energia"

	first := Extract(transcript, lectureDay)
	second := Extract(transcript, lectureDay)
	assert.Equal(t, first, second)
}

func TestRender(t *testing.T) {
	m := Metadata{
		Title:       "Aula 1",
		GeneratedAt: lectureDay,
		Topics:      []string{"energia", "massa"},
	}

	want := "Título da aula: Aula 1\n" +
		"Data da aula: 07/03/2024\n" +
		"Tópicos principais cobertos na aula:\n" +
		"1. energia\n" +
		"2. massa\n"
	assert.Equal(t, want, m.Render())
}

func TestRenderNoTopics(t *testing.T) {
	m := Metadata{Title: "", GeneratedAt: lectureDay}
	assert.Equal(t, "Título da aula: \nData da aula: 07/03/2024\nTópicos principais cobertos na aula:\n", m.Render())
}
