package mongodb

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
)

// translate maps driver errors onto the domain taxonomy.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return entity.NewValidationError(duplicateField(err.Error()), "already in use")
	}
	return entity.NewStorageError(op, err)
}

// duplicateField names the field behind an E11000 message, using the index
// names set up by database.EnsureIndexes.
func duplicateField(msg string) string {
	switch {
	case strings.Contains(msg, "uniq_email"):
		return "email"
	case strings.Contains(msg, "uniq_username"):
		return "username"
	case strings.Contains(msg, "uniq_approval_token"):
		return "approval_token"
	}
	return ""
}
