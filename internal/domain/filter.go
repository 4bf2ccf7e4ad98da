package domain

// NounFilter contains filtering/pagination parameters for noun listings.
// Search matches the word case-insensitively as a substring.
type NounFilter struct {
	Article  *Article
	Search   *string
	Category *string
	Limit    int
	Offset   int
}
