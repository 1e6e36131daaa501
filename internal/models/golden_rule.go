package models

// GoldenRule is the database representation of a discipline rule row.
type GoldenRule struct {
	RuleID      string `db:"rule_id"`
	UserID      string `db:"user_id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	IsCompliant bool   `db:"is_compliant"`
	ScoreWeight int    `db:"score_weight"`
	AuditFields
}
