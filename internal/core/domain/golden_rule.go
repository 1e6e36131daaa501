package domain

// GoldenRule is one of the financial discipline rules the user self-assesses.
// ScoreWeight is display-only: the compliance score used by the pyramid
// engine is the plain unweighted compliant/total ratio.
type GoldenRule struct {
	RuleID      string `json:"ruleID"`
	UserID      string `json:"userID"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompliant bool   `json:"isCompliant"`
	ScoreWeight int    `json:"scoreWeight"`
	AuditFields
}

// SeedGoldenRules returns the eleven discipline rules every user starts with.
func SeedGoldenRules() []GoldenRule {
	return []GoldenRule{
		{RuleID: "rule-1", Title: "Earn more than you spend", Description: "Total monthly income must exceed total monthly expenses.", ScoreWeight: 15},
		{RuleID: "rule-2", Title: "Emergency fund", Description: "Keep at least 3-6 months of living costs in an emergency fund.", ScoreWeight: 15},
		{RuleID: "rule-3", Title: "Separate finances", Description: "Never mix personal money with business money.", ScoreWeight: 10},
		{RuleID: "rule-4", Title: "No bad debt", Description: "No high-interest consumer debt (above 10%/year).", ScoreWeight: 10},
		{RuleID: "rule-5", Title: "Risk protection", Description: "Carry health insurance, and life insurance if you are the breadwinner.", ScoreWeight: 5},
		{RuleID: "rule-6", Title: "Save first, spend later", Description: "Put at least 10-20% of income into savings or investments on payday.", ScoreWeight: 10},
		{RuleID: "rule-7", Title: "Diversify income", Description: "Do not depend on a single income source.", ScoreWeight: 10},
		{RuleID: "rule-8", Title: "Know your cashflow", Description: "Record and classify every expense clearly (need vs want).", ScoreWeight: 10},
		{RuleID: "rule-9", Title: "Keep learning", Description: "Invest at least 5% of monthly income in yourself.", ScoreWeight: 5},
		{RuleID: "rule-10", Title: "Clear financial goals", Description: "Hold concrete 1, 3 and 5 year financial goals.", ScoreWeight: 5},
		{RuleID: "rule-11", Title: "Live below your means", Description: "Do not inflate your lifestyle the moment income rises.", ScoreWeight: 5},
	}
}
