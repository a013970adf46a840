package tui

import (
	"fmt"
	"strings"

	"github.com/campusbook/campusbook/internal/domain/person"
)

// MessageDisplayStats is the status line shown under the person list.
const MessageDisplayStats = "Currently displaying %d of %d Students."

// renderRow renders one displayed person as a numbered row. The optional
// fields only appear when set.
func renderRow(styles Styles, index int, p person.Person) string {
	var b strings.Builder

	b.WriteString(styles.RowIndex.Render(fmt.Sprintf("%d. ", index)))
	b.WriteString(styles.RowName.Render(p.Name.String()))
	b.WriteString(styles.RowDetail.Render(" " + p.StudentID.String()))

	details := make([]string, 0, 4)
	if !p.Email.IsEmpty() {
		details = append(details, p.Email.String())
	}
	if !p.Major.IsEmpty() {
		details = append(details, p.Major.String())
	}
	if !p.Year.IsEmpty() {
		details = append(details, "Year "+p.Year.String())
	}
	if !p.Group.IsEmpty() {
		details = append(details, p.Group.String())
	}
	if len(details) > 0 {
		b.WriteString(styles.RowDetail.Render(" | " + strings.Join(details, " | ")))
	}

	if !p.Comment.IsEmpty() {
		b.WriteString("\n   ")
		b.WriteString(styles.RowNote.Render(p.Comment.String()))
	}

	return b.String()
}
