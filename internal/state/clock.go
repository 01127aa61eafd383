package state

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDSource hands out path ids. Ids must not repeat for the life of a store.
type IDSource interface {
	NextID() string
}

// SiteClock issues "<site>-<lamport>" ids: a random site per process plus a
// logical counter, so two strokes started in the same clock tick still differ.
type SiteClock struct {
	site    string
	lamport uint64
}

func NewSiteClock() *SiteClock {
	return &SiteClock{site: uuid.NewString()}
}

func (c *SiteClock) Site() string { return c.site }

func (c *SiteClock) NextID() string {
	return fmt.Sprintf("%s-%d", c.site, atomic.AddUint64(&c.lamport, 1))
}
