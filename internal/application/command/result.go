// Package command contains write operations (CQRS - Commands). Each command
// is a plain request struct paired with a handler that applies it to the
// model and persists the result.
package command

// Result is the outcome of a successfully handled command.
type Result struct {
	// Feedback is the user-visible confirmation text.
	Feedback string
}

// Success messages. %s is the full person rendering.
const (
	MessageAddSuccess     = "New person added: %s"
	MessageEditSuccess    = "Edited Person: %s"
	MessageDeleteSuccess  = "Deleted Person: %s"
	MessageCommentAdded   = "Added comment to Person: %s"
	MessageCommentRemoved = "Removed comment from Person: %s"
	MessageClearSuccess   = "Roster has been cleared!"

	// MessageSaveWarning is appended to feedback when the in-memory change
	// succeeded but writing the snapshot did not. The mutation is kept.
	MessageSaveWarning = "\nWarning: changes could not be saved: %v"
)
