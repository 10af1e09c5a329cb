package external_services

import (
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
)

type messageTemplate struct {
	subject *template.Template
	body    *template.Template
}

// TemplateStore compiles and renders the subject and body of each
// notification kind.
type TemplateStore struct {
	mu        sync.RWMutex
	templates map[entity.NotificationKind]messageTemplate
}

// NewTemplateStore seeds the store with the account lifecycle templates.
func NewTemplateStore() *TemplateStore {
	store := &TemplateStore{templates: make(map[entity.NotificationKind]messageTemplate)}
	_ = store.Register(entity.NotificationRegistrationPending,
		"New account awaiting approval: {{.Username}}",
		`A new account is waiting for approval.

Username: {{.Username}}
Email: {{.Email}}

Approve: {{.ApproveLink}}
Reject: {{.RejectLink}}
`)
	_ = store.Register(entity.NotificationAccountApproved,
		"Your account has been approved",
		`Hi {{.Username}},

Your account has been approved. You can sign in here:
{{.LoginLink}}
`)
	_ = store.Register(entity.NotificationAccountRejected,
		"Your account request was declined",
		`Hi {{.Username}},

Your request for an account was declined by an administrator.
`)
	return store
}

// Register adds or replaces the templates for kind.
func (s *TemplateStore) Register(kind entity.NotificationKind, subject, body string) error {
	subj, err := template.New(string(kind) + ".subject").Option("missingkey=error").Parse(subject)
	if err != nil {
		return fmt.Errorf("parse subject template %s: %w", kind, err)
	}
	b, err := template.New(string(kind) + ".body").Option("missingkey=error").Parse(body)
	if err != nil {
		return fmt.Errorf("parse body template %s: %w", kind, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[kind] = messageTemplate{subject: subj, body: b}
	return nil
}

// Render executes both templates for kind with data.
func (s *TemplateStore) Render(kind entity.NotificationKind, data entity.NotificationData) (string, string, error) {
	s.mu.RLock()
	tmpl, ok := s.templates[kind]
	s.mu.RUnlock()
	if !ok {
		return "", "", fmt.Errorf("template %s not found", kind)
	}
	var subject, body strings.Builder
	if err := tmpl.subject.Execute(&subject, data); err != nil {
		return "", "", fmt.Errorf("render subject %s: %w", kind, err)
	}
	if err := tmpl.body.Execute(&body, data); err != nil {
		return "", "", fmt.Errorf("render body %s: %w", kind, err)
	}
	return subject.String(), body.String(), nil
}
