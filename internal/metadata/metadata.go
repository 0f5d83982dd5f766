// Package metadata derives the lecture title, date and topic list from a transcript.
package metadata

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is DD/MM/YYYY.
const DateLayout = "02/01/2006"

type Metadata struct {
	Title       string
	GeneratedAt time.Time
	Topics      []string
}

// Extract is pure: the same transcript and instant always give the same Metadata.
func Extract(transcript string, now time.Time) Metadata {
	title, _, _ := strings.Cut(transcript, "\n")

	return Metadata{
		Title:       title,
		GeneratedAt: now,
		Topics:      Topics(transcript),
	}
}

// Date returns GeneratedAt formatted as DD/MM/YYYY.
func (m Metadata) Date() string {
	return m.GeneratedAt.Format(DateLayout)
}

// Render produces the metadados.txt body.
func (m Metadata) Render() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Título da aula: %s\n", m.Title)
	fmt.Fprintf(&sb, "Data da aula: %s\n", m.Date())
	sb.WriteString("Tópicos principais cobertos na aula:\n")
	for i, topic := range m.Topics {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, topic)
	}
	return sb.String()
}
