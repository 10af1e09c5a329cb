package uuidgen

import (
	"github.com/google/uuid"

	"github.com/mikiasgoitom/Showcase/internal/domain/contract"
)

// Generator produces record ids.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// NewUUID returns a random (v4) UUID string.
func (g *Generator) NewUUID() string {
	return uuid.NewString()
}

var _ contract.IUUIDGenerator = (*Generator)(nil)
