package repository

import "github.com/google/uuid"

// NewID returns a random (version 4) UUID in its canonical string form.
// Tests may replace it to pin task ids.
var NewID = func() string {
	return uuid.NewString()
}
