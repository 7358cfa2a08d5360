package leave

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces period identifiers. IDs only need to be unique;
// calculation results never depend on them.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random v4 UUIDs prefixed with "period-".
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return "period-" + uuid.NewString() }

// SequenceGenerator issues period-1, period-2, ... and is safe for
// concurrent use.
type SequenceGenerator struct {
	Prefix string
	n      atomic.Int64
}

func (g *SequenceGenerator) NewID() string {
	prefix := g.Prefix
	if prefix == "" {
		prefix = "period"
	}
	return fmt.Sprintf("%s-%d", prefix, g.n.Add(1))
}
