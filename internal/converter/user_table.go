package converter

import (
	"html/template"
	"strings"

	"student-health-records/internal/domain/entity"
)

// The admin frontend drops this fragment straight into the DOM, so the column
// set and markup are fixed. Rendering goes through html/template to get
// context-aware escaping of the interpolated fields.
var userTableTemplate = template.Must(template.New("userTable").Parse(
	`<table class="table table-bordered"><thead><tr>` +
		`<th>ID</th><th>Name</th><th>Email</th><th>Student ID</th><th>Role</th>` +
		`</tr></thead><tbody>` +
		`{{range .}}<tr><td>{{.ID}}</td><td>{{.Name}}</td><td>{{.Email}}</td><td>{{.StudentID}}</td><td>{{.Role}}</td></tr>{{end}}` +
		`</tbody></table>`))

type userTableRow struct {
	ID        uint
	Name      string
	Email     string
	StudentID string
	Role      string
}

// UsersToTable renders the fixed-column HTML table representation used by the
// user management endpoints.
func UsersToTable(users []entity.User) string {
	rows := make([]userTableRow, 0, len(users))
	for _, u := range users {
		row := userTableRow{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  u.Role,
		}
		if u.StudentID != nil {
			row.StudentID = *u.StudentID
		}
		rows = append(rows, row)
	}

	var sb strings.Builder
	if err := userTableTemplate.Execute(&sb, rows); err != nil {
		return ""
	}
	return sb.String()
}

// UserToTable renders a single-row table for create/show/update responses.
func UserToTable(user *entity.User) string {
	if user == nil {
		return UsersToTable(nil)
	}
	return UsersToTable([]entity.User{*user})
}
