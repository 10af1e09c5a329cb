package contract

import (
	"context"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
)

// IEmailService sends a plain email.
type IEmailService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// INotificationDispatcher renders and sends a templated notification. It
// logs its own failures; the returned error is informational only.
type INotificationDispatcher interface {
	Send(ctx context.Context, to string, kind entity.NotificationKind, data entity.NotificationData) error
}

// IVideoMetadataProvider looks up live metadata for a platform video link.
// It returns entity.ErrInvalidURL when no id can be extracted and
// entity.ErrNotFound when the platform has nothing for it.
type IVideoMetadataProvider interface {
	FetchVideoMetadata(ctx context.Context, sourceURL string) (*entity.VideoMetadata, error)
}

type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
}

// ITokenIssuer produces unguessable approval tokens.
type ITokenIssuer interface {
	GenerateRandomToken(n int) (string, error)
}

type IUUIDGenerator interface {
	NewUUID() string
}

// IOAuthProvider runs a third-party sign-in and yields the verified email.
type IOAuthProvider interface {
	Enabled() bool
	AuthCodeURL(state string) string
	ExchangeEmail(ctx context.Context, code string) (string, error)
}
