package commands

import "time"

// nowUTC is the single clock used by command handlers for lifecycle
// timestamps. Kept as a variable so tests can pin time.
var nowUTC = func() time.Time {
	return time.Now().UTC()
}
