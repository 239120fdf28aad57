package clock

import (
	"time"

	"github.com/acquiropay/gateway/internal/domain/port"
)

// Compile-time interface check.
var _ port.Clock = System{}

// System reads the wall clock in UTC. It is the only place the process
// touches the system time for business rules; everything downstream takes
// the time as input.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}
