package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Warnf(string, ...interface{})    {}
func (nopLogger) Warningf(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{})   {}
func (nopLogger) Fatalf(string, ...interface{})   {}

type fakeConfig struct {
	baseURL         string
	frontendURL     string
	metadataTimeout time.Duration
	concurrency     int
	pageSize        int
	channelTitle    string
}

func newFakeConfig() *fakeConfig {
	return &fakeConfig{
		baseURL:         "https://cms.example.com",
		frontendURL:     "https://agency.example.com",
		metadataTimeout: time.Second,
		concurrency:     4,
		pageSize:        10,
		channelTitle:    "Agency Channel",
	}
}

func (c *fakeConfig) GetAppBaseURL() string               { return c.baseURL }
func (c *fakeConfig) GetFrontendURL() string              { return c.frontendURL }
func (c *fakeConfig) GetAccessTokenExpiry() time.Duration { return time.Hour }
func (c *fakeConfig) GetMetadataTimeout() time.Duration   { return c.metadataTimeout }
func (c *fakeConfig) GetEnrichmentConcurrency() int       { return c.concurrency }
func (c *fakeConfig) GetGalleryDefaultPageSize() int      { return c.pageSize }
func (c *fakeConfig) GetDefaultChannelTitle() string      { return c.channelTitle }

// memUserRepo is an in-memory IUserRepository. Every method holds the lock
// for its whole duration, so conditional writes are atomic.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User

	ShouldFailList bool
}

func newMemUserRepo(users ...*entity.User) *memUserRepo {
	r := &memUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func clone(u *entity.User) *entity.User {
	c := *u
	if u.ApprovalToken != nil {
		t := *u.ApprovalToken
		c.ApprovalToken = &t
	}
	return &c
}

func (r *memUserRepo) CreateUser(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return entity.NewValidationError("email", "already in use")
		}
		if u.Username == user.Username {
			return entity.NewValidationError("username", "already in use")
		}
	}
	r.users[user.ID] = clone(user)
	return nil
}

func (r *memUserRepo) find(match func(*entity.User) bool) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			return clone(u), nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *memUserRepo) GetUserByID(_ context.Context, id string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}

func (r *memUserRepo) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Username == username })
}

func (r *memUserRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email })
}

func (r *memUserRepo) GetUserByApprovalToken(_ context.Context, token string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool {
		return u.Role == entity.UserRolePending && u.ApprovalToken != nil && *u.ApprovalToken == token
	})
}

func (r *memUserRepo) ListUsersByRoles(_ context.Context, roles []entity.UserRole) ([]*entity.User, error) {
	if r.ShouldFailList {
		return nil, entity.NewStorageError("list users", errors.New("boom"))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0)
	for _, u := range r.users {
		if slices.Contains(roles, u.Role) {
			out = append(out, clone(u))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memUserRepo) UpdateUser(_ context.Context, id string, patch entity.UserPatch) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	if len(patch.RequireRoleIn) > 0 && !slices.Contains(patch.RequireRoleIn, u.Role) {
		return nil, entity.ErrForbidden
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.Status != nil {
		u.Status = *patch.Status
	}
	return clone(u), nil
}

func (r *memUserRepo) ConsumeApprovalToken(_ context.Context, token string, approvedAt time.Time) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Role == entity.UserRolePending && u.ApprovalToken != nil && *u.ApprovalToken == token {
			u.Role = entity.UserRoleUser
			u.Status = entity.UserStatusActive
			u.ApprovalToken = nil
			u.ApprovedAt = &approvedAt
			return clone(u), nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *memUserRepo) DeletePendingByToken(_ context.Context, token string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.users {
		if u.Role == entity.UserRolePending && u.ApprovalToken != nil && *u.ApprovalToken == token {
			delete(r.users, id)
			return clone(u), nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *memUserRepo) DeleteUser(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return entity.ErrNotFound
	}
	if u.Role == entity.UserRoleSuperadmin {
		return entity.ErrForbidden
	}
	delete(r.users, id)
	return nil
}

type sentNotification struct {
	To   string
	Kind entity.NotificationKind
	Data entity.NotificationData
}

type recordingNotifier struct {
	mu         sync.Mutex
	sent       []sentNotification
	ShouldFail bool
}

func (n *recordingNotifier) Send(_ context.Context, to string, kind entity.NotificationKind, data entity.NotificationData) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.ShouldFail {
		return &entity.NotificationError{Recipient: to, Kind: kind, Err: errors.New("smtp down")}
	}
	n.sent = append(n.sent, sentNotification{To: to, Kind: kind, Data: data})
	return nil
}

func (n *recordingNotifier) byKind(kind entity.NotificationKind) []sentNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []sentNotification
	for _, s := range n.sent {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) ComparePasswordHash(password, hashed string) error {
	if hashed != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type seqTokenIssuer struct {
	mu sync.Mutex
	n  int
}

func (s *seqTokenIssuer) GenerateRandomToken(int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("token-%d", s.n), nil
}

type seqUUID struct {
	mu sync.Mutex
	n  int
}

func (s *seqUUID) NewUUID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

type memProjectRepo struct {
	mu       sync.Mutex
	projects []*entity.Project

	ShouldFailList bool
}

func (r *memProjectRepo) CreateProject(_ context.Context, p *entity.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *p
	r.projects = append(r.projects, &c)
	return nil
}

func (r *memProjectRepo) GetProjectByID(_ context.Context, id string) (*entity.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.projects {
		if p.ID == id {
			c := *p
			return &c, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *memProjectRepo) ListProjectsByStatus(_ context.Context, statuses ...entity.ContentStatus) ([]*entity.Project, error) {
	if r.ShouldFailList {
		return nil, entity.NewStorageError("list projects", errors.New("boom"))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Project, 0)
	for _, p := range r.projects {
		if len(statuses) == 0 || slices.Contains(statuses, p.Status) {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memProjectRepo) UpdateProject(_ context.Context, id string, patch entity.ProjectPatch) (*entity.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.projects {
		if p.ID != id {
			continue
		}
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		c := *p
		return &c, nil
	}
	return nil, entity.ErrNotFound
}

func (r *memProjectRepo) DeleteProject(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.projects {
		if p.ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return entity.ErrNotFound
}

type memVideoRepo struct {
	mu            sync.Mutex
	videos        []*entity.Video
	metadataCalls chan string
}

func (r *memVideoRepo) CreateVideo(_ context.Context, v *entity.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *v
	r.videos = append(r.videos, &c)
	return nil
}

func (r *memVideoRepo) GetVideoByID(_ context.Context, id string) (*entity.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.videos {
		if v.ID == id {
			c := *v
			return &c, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *memVideoRepo) ListVideosByStatus(_ context.Context, statuses ...entity.ContentStatus) ([]*entity.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Video, 0)
	for _, v := range r.videos {
		if len(statuses) == 0 || slices.Contains(statuses, v.Status) {
			c := *v
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memVideoRepo) UpdateVideo(_ context.Context, id string, patch entity.VideoPatch) (*entity.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.videos {
		if v.ID != id {
			continue
		}
		if patch.Title != nil {
			v.Title = *patch.Title
		}
		if patch.SourceURL != nil {
			v.SourceURL = *patch.SourceURL
			v.Thumbnail, v.Duration, v.Views, v.ChannelTitle, v.PublishedAt = nil, nil, nil, nil, nil
			v.ApplyMetadata(patch.Metadata)
		}
		c := *v
		return &c, nil
	}
	return nil, entity.ErrNotFound
}

func (r *memVideoRepo) UpdateVideoMetadata(_ context.Context, id string, meta *entity.VideoMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.videos {
		if v.ID == id {
			v.ApplyMetadata(meta)
			if r.metadataCalls != nil {
				r.metadataCalls <- id
			}
			return nil
		}
	}
	return entity.ErrNotFound
}

func (r *memVideoRepo) DeleteVideo(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, v := range r.videos {
		if v.ID == id {
			r.videos = append(r.videos[:i], r.videos[i+1:]...)
			return nil
		}
	}
	return entity.ErrNotFound
}

// stubMetadataProvider answers by source URL; unknown URLs fail.
type stubMetadataProvider struct {
	mu    sync.Mutex
	byURL map[string]*entity.VideoMetadata
	delay map[string]time.Duration
	calls int
}

func (p *stubMetadataProvider) FetchVideoMetadata(ctx context.Context, sourceURL string) (*entity.VideoMetadata, error) {
	p.mu.Lock()
	p.calls++
	meta, ok := p.byURL[sourceURL]
	delay := p.delay[sourceURL]
	p.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if !ok {
		return nil, entity.ErrNotFound
	}
	c := *meta
	return &c, nil
}
