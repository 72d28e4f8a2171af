package models

// Product is a store listing. Photo holds the public object-storage URL.
type Product struct {
	ID          int64
	Name        string
	Price       string
	Description string
	Photo       string
}
