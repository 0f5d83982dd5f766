package artifact

import "context"

// Artifact names written by a run.
const (
	Transcript = "transcricao_plana_pt.txt"
	Metadata   = "metadados.txt"
	FAQ        = "faq.txt"
	Summary    = "resumo.txt"
	FAQDoc     = "faq.docx"
	SummaryDoc = "resumo.docx"
)

// Store persists named blobs, overwriting existing content under the same name.
type Store interface {
	Put(ctx context.Context, name string, content []byte) error
	Close() error
}

// Writer persists artifacts and logs every failure. Callers treat its errors as non-fatal.
type Writer interface {
	Write(ctx context.Context, name, content string) error
	// WriteDOCX renders markdown-ish text as a styled Word document.
	WriteDOCX(ctx context.Context, name, title, content string) error
}
