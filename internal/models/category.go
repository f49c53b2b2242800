package models

// CategoryCode is the value stored in a record's category field.
type CategoryCode string

// Expense categories.
const (
	CategoryFood          CategoryCode = "food"
	CategoryShopping      CategoryCode = "shopping"
	CategorySaving        CategoryCode = "saving"
	CategoryTransport     CategoryCode = "transport"
	CategoryBills         CategoryCode = "bills"
	CategoryEntertainment CategoryCode = "entertainment"
	CategoryHealth        CategoryCode = "health"
	CategoryEducation     CategoryCode = "education"
)

// Income categories.
const (
	CategorySalary     CategoryCode = "salary"
	CategoryFreelance  CategoryCode = "freelance"
	CategoryInvestment CategoryCode = "investment"
	CategoryBusiness   CategoryCode = "business"
)

// CategoryOther exists in both vocabularies with different icons.
const CategoryOther CategoryCode = "other"

const (
	unknownIcon  = "📝"
	unknownColor = "#64748b"
)

// CategoryInfo is the static display metadata for a category code.
type CategoryInfo struct {
	Value CategoryCode `json:"value"`
	Label string       `json:"label"`
	Icon  string       `json:"icon"`
	Color string       `json:"color"`
	Known bool         `json:"known"`
}

// ExpenseCategories lists the expense vocabulary in display order.
var ExpenseCategories = []CategoryInfo{
	{Value: CategoryFood, Label: "Food", Icon: "🍔", Color: "#f59e0b", Known: true},
	{Value: CategoryShopping, Label: "Shopping", Icon: "🛒", Color: "#8b5cf6", Known: true},
	{Value: CategorySaving, Label: "Saving", Icon: "💰", Color: "#10b981", Known: true},
	{Value: CategoryTransport, Label: "Transport", Icon: "🚗", Color: "#3b82f6", Known: true},
	{Value: CategoryBills, Label: "Bills", Icon: "📄", Color: "#ef4444", Known: true},
	{Value: CategoryEntertainment, Label: "Entertainment", Icon: "🎬", Color: "#ec4899", Known: true},
	{Value: CategoryHealth, Label: "Health", Icon: "🏥", Color: "#06b6d4", Known: true},
	{Value: CategoryEducation, Label: "Education", Icon: "📚", Color: "#6366f1", Known: true},
	{Value: CategoryOther, Label: "Other", Icon: "📝", Color: "#64748b", Known: true},
}

// IncomeCategories lists the income vocabulary in display order.
var IncomeCategories = []CategoryInfo{
	{Value: CategorySalary, Label: "Salary", Icon: "💼", Color: "#10b981", Known: true},
	{Value: CategoryFreelance, Label: "Freelance", Icon: "💻", Color: "#3b82f6", Known: true},
	{Value: CategoryInvestment, Label: "Investment", Icon: "📈", Color: "#8b5cf6", Known: true},
	{Value: CategoryBusiness, Label: "Business", Icon: "🏢", Color: "#6366f1", Known: true},
	{Value: CategoryOther, Label: "Other", Icon: "💰", Color: "#64748b", Known: true},
}

// CategoriesFor returns the vocabulary for a transaction type, or nil for
// an unsupported type.
func CategoriesFor(t TransactionType) []CategoryInfo {
	switch t {
	case TransactionTypeExpense:
		return ExpenseCategories
	case TransactionTypeIncome:
		return IncomeCategories
	}
	return nil
}

// LookupCategory returns the metadata for code within the vocabulary of t.
// Codes outside the vocabulary resolve to the unknown variant, labelled with
// the raw code.
func LookupCategory(t TransactionType, code string) CategoryInfo {
	for _, c := range CategoriesFor(t) {
		if string(c.Value) == code {
			return c
		}
	}
	return CategoryInfo{
		Value: CategoryCode(code),
		Label: code,
		Icon:  unknownIcon,
		Color: unknownColor,
	}
}

// IsKnownCategory reports whether code belongs to the vocabulary of t.
func IsKnownCategory(t TransactionType, code string) bool {
	return LookupCategory(t, code).Known
}
