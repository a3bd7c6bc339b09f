package test

import (
	"context"
	"sync"

	"github.com/Erickrodrigues05/angohire/internal/domain/model"
)

// RendererStub returns configurable document bytes for tests.
type RendererStub struct {
	RenderFn func(context.Context, model.ResumeData, string) ([]byte, error)

	mu    sync.Mutex
	Calls []string
}

// Render records the template id and returns configured bytes.
func (s *RendererStub) Render(ctx context.Context, data model.ResumeData, templateID string) ([]byte, error) {
	s.mu.Lock()
	s.Calls = append(s.Calls, templateID)
	s.mu.Unlock()
	if s.RenderFn != nil {
		return s.RenderFn(ctx, data, templateID)
	}
	return []byte("%PDF-stub"), nil
}

// ArtifactStoreCall stores information about Put invocations.
type ArtifactStoreCall struct {
	Name string
	Size int
}

// ArtifactStoreStub simulates artifact uploads.
type ArtifactStoreStub struct {
	PutFn func(context.Context, string, []byte) (string, error)

	mu    sync.Mutex
	Calls []ArtifactStoreCall
}

// Put records the upload and returns a deterministic URL.
func (s *ArtifactStoreStub) Put(ctx context.Context, name string, document []byte) (string, error) {
	s.mu.Lock()
	s.Calls = append(s.Calls, ArtifactStoreCall{Name: name, Size: len(document)})
	s.mu.Unlock()
	if s.PutFn != nil {
		return s.PutFn(ctx, name, document)
	}
	return "http://artifacts.local/resumes/" + name, nil
}

// NotifierCall captures a delivered message.
type NotifierCall struct {
	To      string
	Subject string
	Body    string
}

// NotifierStub records sent messages.
type NotifierStub struct {
	SendFn func(to, subject, body string) error

	mu   sync.Mutex
	Sent []NotifierCall
	Err  error
}

// Send records the message or delegates to the override.
func (s *NotifierStub) Send(to, subject, body string) error {
	if s.SendFn != nil {
		return s.SendFn(to, subject, body)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	s.Sent = append(s.Sent, NotifierCall{To: to, Subject: subject, Body: body})
	s.mu.Unlock()
	return nil
}
