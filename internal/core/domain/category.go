package domain

// BusinessIncomeCategoryID is the reserved seed category for business income.
// Income booked against it counts as passive income in the pyramid engine.
const BusinessIncomeCategoryID = "cat-9"

// Category groups transactions and suggests a default need/want classification
// when a transaction is created against it.
type Category struct {
	CategoryID            string                 `json:"categoryID"`
	UserID                string                 `json:"userID"`
	Name                  string                 `json:"name"`
	Type                  TransactionType        `json:"type"`
	Icon                  string                 `json:"icon"`
	Color                 string                 `json:"color"`
	DefaultClassification SpendingClassification `json:"defaultClassification,omitempty"`
	AuditFields
}

// SeedCategories are the categories every new user starts with. The ids are
// stable so the business-income passive heuristic keeps working across users.
func SeedCategories() []Category {
	return []Category{
		{CategoryID: "cat-1", Name: "Salary", Type: Income, Icon: "Briefcase", Color: "#10b981"},
		{CategoryID: "cat-2", Name: "Groceries", Type: Expense, Icon: "ShoppingCart", Color: "#ef4444", DefaultClassification: Need},
		{CategoryID: "cat-3", Name: "Rent", Type: Expense, Icon: "Home", Color: "#f97316", DefaultClassification: Need},
		{CategoryID: "cat-4", Name: "Transport", Type: Expense, Icon: "Bus", Color: "#3b82f6", DefaultClassification: Need},
		{CategoryID: "cat-5", Name: "Entertainment", Type: Expense, Icon: "Ticket", Color: "#8b5cf6", DefaultClassification: Want},
		{CategoryID: "cat-6", Name: "Freelance", Type: Income, Icon: "Pencil", Color: "#14b8a6"},
		{CategoryID: "cat-7", Name: "Utilities", Type: Expense, Icon: "LightningBolt", Color: "#f59e0b", DefaultClassification: Need},
		{CategoryID: "cat-8", Name: "Health", Type: Expense, Icon: "Heart", Color: "#ec4899", DefaultClassification: Need},
		{CategoryID: BusinessIncomeCategoryID, Name: "Business", Type: Income, Icon: "ChartPie", Color: "#6366f1"},
	}
}
