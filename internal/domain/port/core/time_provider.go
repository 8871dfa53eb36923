package core

import "time"

// TimeProvider abstracts time for the domain so workflow timestamps are
// testable with a fixed clock
type TimeProvider interface {
	Now() time.Time
}
