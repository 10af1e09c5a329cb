package usecasecontract

import "time"

// IAppLogger is the logging port used by usecases and adapters.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// IConfigProvider exposes the settings usecases depend on.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetFrontendURL() string
	GetAccessTokenExpiry() time.Duration
	GetMetadataTimeout() time.Duration
	GetEnrichmentConcurrency() int
	GetGalleryDefaultPageSize() int
	GetDefaultChannelTitle() string
}

// IValidator checks registration fields.
type IValidator interface {
	ValidateUsername(username string) error
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}
