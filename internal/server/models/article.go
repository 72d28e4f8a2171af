package models

// Article is an editorial entry. Photo holds the public object-storage URL.
type Article struct {
	ID          int64
	Title       string
	Description string
	Photo       string
}
