package models

// Category is the database representation of a transaction category.
// DefaultClassification is nullable; income categories have none.
type Category struct {
	CategoryID            string  `db:"category_id"`
	UserID                string  `db:"user_id"`
	Name                  string  `db:"name"`
	Type                  string  `db:"type"`
	Icon                  string  `db:"icon"`
	Color                 string  `db:"color"`
	DefaultClassification *string `db:"default_classification"`
	AuditFields
}
