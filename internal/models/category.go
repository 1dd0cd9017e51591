package models

// Category represents a user-defined label attachable to transactions.
type Category struct {
	ID   string `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
}
