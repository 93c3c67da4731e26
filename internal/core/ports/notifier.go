package ports

// Notifier is the presentation collaborator editors report outcomes to.
// The TUI renders these as a transient snackbar line; tests capture them.
// Client-side validation failures never reach the notifier.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}
