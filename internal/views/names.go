package views

import "github.com/google/uuid"

// UniqueName returns a collision-free listener name with the given prefix.
// The station resolves name collisions by replacing the earlier listener;
// callers that want to register several views of the same kind can use this
// to opt out of that behavior.
func UniqueName(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}
