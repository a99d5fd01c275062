package entity

// User is an author of articles and comments.
type User struct {
	Username  string `db:"username"`
	Name      string `db:"name"`
	AvatarURL string `db:"avatar_url"`
}
