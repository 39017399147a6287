package playoffs

import "errors"

// Error taxonomy for bracket operations. All four are local, synchronous
// conditions that callers surface to the user without retrying.
var (
	ErrPermissionDenied = errors.New("playoffs: permission denied")
	ErrNotFound         = errors.New("playoffs: match not found")
	ErrDuplicateMatch   = errors.New("playoffs: match already exists for round and number")
	ErrAlreadySeeded    = errors.New("playoffs: play-in round already seeded")
)
