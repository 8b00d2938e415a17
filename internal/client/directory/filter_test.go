package directory

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

func sampleUsers() []models.User {
	return []models.User{
		{ID: "1", Name: "Bob Smith", Email: "bob@x.com", Phone: "555-0101", DOB: "1990-04-01"},
		{ID: "2", Name: "Alice", Email: "alice@y.org", Phone: "", DOB: ""},
		{ID: "17", Name: "Carol", Email: "CAROL@X.COM", Phone: "777", DOB: "1985-12-24"},
	}
}

func ids(users []models.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}

func TestFilter_Bob(t *testing.T) {
	users := []models.User{{ID: "1", Name: "Bob Smith"}, {ID: "2", Name: "Alice"}}
	got := Filter("bob", users)
	assert.Equal(t, []models.User{{ID: "1", Name: "Bob Smith"}}, got)
}

func TestFilter_Fields(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"SMITH", []string{"1"}},
		{"x.com", []string{"1", "17"}},
		{"0101", []string{"1"}},
		{"12-24", []string{"17"}},
		{"17", []string{"17"}},
		{"1", []string{"1", "17"}},
		{"nobody", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(tt.query, sampleUsers())))
		})
	}
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	users := sampleUsers()
	assert.Equal(t, users, Filter("", users))

	assert.Nil(t, Filter("", nil))
	assert.Empty(t, Filter("x", nil))
}

// Every result is an element of the input, and results keep input order.
func TestFilter_SubsetPreservingOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("abcAB1@.- ")
	word := func(n int) string {
		r := make([]rune, n)
		for i := range r {
			r[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(r)
	}

	for iter := 0; iter < 200; iter++ {
		users := make([]models.User, rng.Intn(12))
		for i := range users {
			users[i] = models.User{ID: fmt.Sprint(i), Name: word(6), Email: word(8), Phone: word(3), DOB: word(4)}
		}
		q := word(1 + rng.Intn(2))

		got := Filter(q, users)

		pos := -1
		for _, g := range got {
			idx := -1
			for i := pos + 1; i < len(users); i++ {
				if users[i] == g {
					idx = i
					break
				}
			}
			if idx < 0 {
				t.Fatalf("query %q: result %+v not found in order after position %d", q, g, pos)
			}
			pos = idx
		}
	}
}
