package entity

// Topic groups articles. Slug is its unique key.
type Topic struct {
	Slug        string `db:"slug"`
	Description string `db:"description"`
}
