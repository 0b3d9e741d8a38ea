package library

import "time"

// Clock lets tests pin "now" for due date and fee boundaries.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
