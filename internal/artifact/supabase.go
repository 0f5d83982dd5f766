package artifact

import (
	"bytes"
	"context"
	"fmt"
	"path"

	storage_go "github.com/supabase-community/storage-go"
	supabase "github.com/supabase-community/supabase-go"
)

type supabaseStore struct {
	client *supabase.Client
	bucket string
}

// NewSupabase uploads artifacts as objects into bucket.
func NewSupabase(projectURL, key, bucket string) (Store, error) {
	client, err := supabase.NewClient(projectURL, key, nil)
	if err != nil {
		return nil, fmt.Errorf("initialize supabase client: %w", err)
	}
	return &supabaseStore{client: client, bucket: bucket}, nil
}

func (s *supabaseStore) Put(_ context.Context, name string, content []byte) error {
	contentType := contentTypeFor(name)
	upsert := true

	_, err := s.client.Storage.UploadFile(s.bucket, name, bytes.NewReader(content), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return fmt.Errorf("upload %s to bucket %s: %w", name, s.bucket, err)
	}
	return nil
}

func (s *supabaseStore) Close() error { return nil }

func contentTypeFor(name string) string {
	switch path.Ext(name) {
	case ".txt":
		return "text/plain; charset=utf-8"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}
