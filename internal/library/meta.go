package library

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("entity not found")

// TimeLayout matches the browser's Date.toISOString output.
const TimeLayout = "2006-01-02T15:04:05.000Z"

type Meta struct {
	ID        string `json:"id" yaml:"id"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
	UpdatedAt string `json:"updatedAt" yaml:"updatedAt"`
}

func (m *Meta) meta() *Meta { return m }

type entity interface {
	meta() *Meta
}

type validator interface {
	validate() error
}

type normalizer interface {
	normalize()
}

func Timestamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

func newID() string {
	return uuid.NewString()
}
