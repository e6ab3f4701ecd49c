package ports

// FileReclaimer accepts on-disk filenames that are no longer referenced by
// any product and removes them in the background. Best effort: callers never
// learn about individual failures.
type FileReclaimer interface {
	Reclaim(filenames ...string)
}
