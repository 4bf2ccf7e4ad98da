package domain

import (
	"time"

	"github.com/google/uuid"
)

// Noun is one vocabulary item of the practice pool. Reference data: the
// practice engine never modifies it.
type Noun struct {
	ID          uuid.UUID
	Word        string
	Article     Article
	Translation string
	Rule        *string
	Examples    []string
	Category    *string
	CreatedAt   time.Time
}

// Display returns the noun with its article, e.g. "das Haus".
func (n Noun) Display() string {
	return n.Article.String() + " " + n.Word
}
