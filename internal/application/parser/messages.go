package parser

// User-visible parser messages. Error text is surfaced verbatim, so any
// change here is a user-facing change.
const (
	MessageInvalidCommandFormat = "Invalid command format! \n%s"
	MessageUnknownCommand       = "Unknown command"
	MessageInvalidIndex         = "Error: Index is not a single non-zero unsigned integer."
	MessageOverflowIndex        = "Error: Index exceeds the largest supported value."
	MessageDuplicateFields      = "Multiple values specified for the following single-valued field(s): "
	MessageNotEdited            = "At least one field to edit must be provided."
)

// Usage strings shown with invalid-command-format errors.
const (
	AddUsage = "add: Adds a person to the roster. " +
		"Parameters: n/NAME id/STUDENT_ID [e/NET_ID] [m/MAJOR] [y/YEAR] [g/GROUP]\n" +
		"Example: add n/John Doe id/A1234567X e/e1234567 m/Computer Science y/2 g/group 1"

	EditUsage = "edit: Edits the person identified by the index number used in the displayed " +
		"person list. Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX [n/NAME] [id/STUDENT_ID] [e/NET_ID] [m/MAJOR] [y/YEAR] [g/GROUP]\n" +
		"Example: edit 1 id/A7654321X e/e7654321"

	DeleteUsage = "delete: Deletes the person identified by the index number used in the " +
		"displayed person list.\n" +
		"Parameters: INDEX\n" +
		"Example: delete 1"

	CommentUsage = "comment: Sets the comment of the person identified by the index number " +
		"used in the displayed person list. An empty comment clears it.\n" +
		"Parameters: INDEX c/COMMENT\n" +
		"Example: comment 1 c/Needs help with MA1521"

	FindUsage = "find: Finds all persons whose names contain any of the specified keywords " +
		"(case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: find alex david"

	HelpMessage = "Commands: add, edit, delete, comment, find, list, clear, help, exit.\n" +
		"Type a command without arguments to see its usage."
)
