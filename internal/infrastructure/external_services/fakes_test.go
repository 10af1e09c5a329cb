package external_services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Warnf(string, ...interface{})    {}
func (nopLogger) Warningf(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{})   {}
func (nopLogger) Fatalf(string, ...interface{})   {}

type sentEmail struct {
	To, Subject, Body string
}

type fakeEmailService struct {
	mu         sync.Mutex
	sent       []sentEmail
	ShouldFail bool
}

func (f *fakeEmailService) SendEmail(_ context.Context, to, subject, body string) error {
	if f.ShouldFail {
		return errors.New("smtp unavailable")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentEmail{To: to, Subject: subject, Body: body})
	return nil
}

type fakeMetadataCache struct {
	mu            sync.Mutex
	entries       map[string]*entity.VideoMetadata
	ShouldFailGet bool
	ShouldFailSet bool
}

func newFakeMetadataCache() *fakeMetadataCache {
	return &fakeMetadataCache{entries: make(map[string]*entity.VideoMetadata)}
}

func (f *fakeMetadataCache) GetMetadata(_ context.Context, id string) (*entity.VideoMetadata, bool, error) {
	if f.ShouldFailGet {
		return nil, false, errors.New("redis down")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.entries[id]
	return m, ok, nil
}

func (f *fakeMetadataCache) SetMetadata(_ context.Context, id string, m *entity.VideoMetadata) error {
	if f.ShouldFailSet {
		return errors.New("redis down")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[id] = m
	return nil
}

func (f *fakeMetadataCache) InvalidateMetadata(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, id)
	return nil
}

type fakeProvider struct {
	calls int
	meta  *entity.VideoMetadata
	err   error
}

func (f *fakeProvider) FetchVideoMetadata(_ context.Context, sourceURL string) (*entity.VideoMetadata, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.meta == nil {
		return nil, fmt.Errorf("no metadata for %s", sourceURL)
	}
	return f.meta, nil
}
