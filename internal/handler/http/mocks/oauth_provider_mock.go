package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Showcase/internal/domain/contract"
)

type MockOAuthProvider struct {
	Disabled           bool
	ShouldFailExchange bool
	Email              string
}

var _ contract.IOAuthProvider = (*MockOAuthProvider)(nil)

func NewMockOAuthProvider() *MockOAuthProvider {
	return &MockOAuthProvider{Email: "test@example.com"}
}

func (m *MockOAuthProvider) Enabled() bool { return !m.Disabled }

func (m *MockOAuthProvider) AuthCodeURL(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (m *MockOAuthProvider) ExchangeEmail(ctx context.Context, code string) (string, error) {
	if m.ShouldFailExchange {
		return "", errors.New("exchange failed")
	}
	return m.Email, nil
}
