package directory

import (
	"strings"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

// Filter returns the users whose name, email, phone, date of birth or id
// contains query, ignoring case. Relative order is kept. An empty query
// returns users itself.
func Filter(query string, users []models.User) []models.User {
	if query == "" {
		return users
	}
	q := strings.ToLower(query)

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if matches(u, q) {
			out = append(out, u)
		}
	}
	return out
}

func matches(u models.User, q string) bool {
	for _, field := range [...]string{u.Name, u.Email, u.Phone, u.DOB, u.ID} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
