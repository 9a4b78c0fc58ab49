package model

// CategoryInfo describes a catalog entry used to label and group
// transactions: a display name, an emoji icon, and a color token consumed
// by presentation layers.
type CategoryInfo struct {
	Name  string
	Icon  string
	Color string
}

// ExpenseCategories is the fixed expense catalog. It drives default
// labeling and breakdown ordering; stored transactions may carry category
// strings outside this set and are never rejected for it.
var ExpenseCategories = []CategoryInfo{
	{Name: "Alimentación", Icon: "🍔", Color: "from-red-500 to-pink-500"},
	{Name: "Transporte", Icon: "🚗", Color: "from-blue-500 to-cyan-500"},
	{Name: "Entretenimiento", Icon: "🎮", Color: "from-purple-500 to-indigo-500"},
	{Name: "Salud", Icon: "🏥", Color: "from-green-500 to-emerald-500"},
	{Name: "Educación", Icon: "📚", Color: "from-yellow-500 to-orange-500"},
	{Name: "Servicios", Icon: "💡", Color: "from-teal-500 to-cyan-500"},
	{Name: "Compras", Icon: "🛍️", Color: "from-pink-500 to-rose-500"},
	{Name: "Otros", Icon: "📦", Color: "from-gray-500 to-slate-500"},
}

// IncomeCategories is the fixed income catalog.
var IncomeCategories = []CategoryInfo{
	{Name: "Salario", Icon: "💼", Color: "from-green-500 to-emerald-500"},
	{Name: "Freelance", Icon: "💻", Color: "from-blue-500 to-cyan-500"},
	{Name: "Inversiones", Icon: "📈", Color: "from-purple-500 to-indigo-500"},
	{Name: "Ventas", Icon: "🏪", Color: "from-yellow-500 to-orange-500"},
	{Name: "Otros", Icon: "💰", Color: "from-teal-500 to-cyan-500"},
}

// CategoryIcon returns the catalog icon for a category name, falling back
// to a generic icon when the category is not in the catalog for the type.
func CategoryIcon(category string, transactionType TransactionType) string {
	catalog := ExpenseCategories
	if transactionType == TypeIncome {
		catalog = IncomeCategories
	}
	for _, cat := range catalog {
		if cat.Name == category {
			return cat.Icon
		}
	}
	return "💰"
}
