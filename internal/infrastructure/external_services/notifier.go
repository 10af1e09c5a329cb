package external_services

import (
	"context"

	"github.com/mikiasgoitom/Showcase/internal/domain/contract"
	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
	"github.com/mikiasgoitom/Showcase/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Showcase/internal/usecase/contract"
)

// NotificationDispatcher renders a kind's templates and hands the result to
// the email service. Every failure is logged and counted here, so callers
// may ignore the returned error.
type NotificationDispatcher struct {
	templates *TemplateStore
	email     contract.IEmailService
	logger    usecasecontract.IAppLogger
}

func NewNotificationDispatcher(templates *TemplateStore, email contract.IEmailService, logger usecasecontract.IAppLogger) *NotificationDispatcher {
	return &NotificationDispatcher{templates: templates, email: email, logger: logger}
}

var _ contract.INotificationDispatcher = (*NotificationDispatcher)(nil)

func (d *NotificationDispatcher) Send(ctx context.Context, to string, kind entity.NotificationKind, data entity.NotificationData) error {
	subject, body, err := d.templates.Render(kind, data)
	if err != nil {
		return d.fail(to, kind, err)
	}
	if err := d.email.SendEmail(ctx, to, subject, body); err != nil {
		return d.fail(to, kind, err)
	}
	metrics.IncNotification(string(kind), "sent")
	d.logger.Debugf("sent %s notification to %s", kind, to)
	return nil
}

func (d *NotificationDispatcher) fail(to string, kind entity.NotificationKind, err error) error {
	nerr := &entity.NotificationError{Recipient: to, Kind: kind, Err: err}
	metrics.IncNotification(string(kind), "failed")
	d.logger.Warnf("notification delivery failed: %v", nerr)
	return nerr
}
