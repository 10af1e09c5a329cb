package entity

// NotificationKind selects the message template used by the dispatcher.
type NotificationKind string

const (
	NotificationRegistrationPending NotificationKind = "registration_pending"
	NotificationAccountApproved     NotificationKind = "account_approved"
	NotificationAccountRejected     NotificationKind = "account_rejected"
)

// NotificationData carries the template fields for every kind.
type NotificationData struct {
	Username    string
	Email       string
	ApproveLink string
	RejectLink  string
	LoginLink   string
}
