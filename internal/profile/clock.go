package profile

import (
	"time"

	"github.com/google/uuid"
)

// Clock abstracts time retrieval so session ids are deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the wall clock time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDGenerator produces ids for new media blobs.
type IDGenerator interface {
	New() string
}

// UUIDGenerator produces random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.New().String() }
