package domain

// Wallet is a money account (bank, digital or cash). Balance is a stored
// running total maintained incrementally by transaction mutations.
type Wallet struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Balance int64  `json:"balance"`
	Icon    string `json:"icon,omitempty"`
}

// FinancialGoal is a savings target. CurrentAmount accumulates savings
// expenses linked to the goal.
type FinancialGoal struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TargetAmount  int64  `json:"targetAmount"`
	CurrentAmount int64  `json:"currentAmount"`
}

// Debt tracks an outstanding obligation. PaidAmount accumulates debt-payment
// expenses linked to it.
type Debt struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TotalAmount int64  `json:"totalAmount"`
	PaidAmount  int64  `json:"paidAmount"`
}

// Bill is a recurring obligation due on a fixed day of the month. Bills carry
// no accumulator; transactions only reference them for categorization.
type Bill struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Amount  int64  `json:"amount"`
	DueDate int    `json:"dueDate"` // day of month, 1-31
}

// Category is a free-standing taxonomy entry for transactions.
type Category struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Type TransactionType `json:"type"`
}

// Budget is a monthly spending cap for one expense category. CategoryID is
// the unique key; there is at most one budget per category.
type Budget struct {
	CategoryID string `json:"categoryId"`
	Amount     int64  `json:"amount"`
}

// NotificationType classifies notifications for display.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
)

// Notification is a transient user-facing message. Notifications are volatile
// and never persisted.
type Notification struct {
	ID      string           `json:"id"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
}

// AppState is the single aggregate holding all user data. It is owned by the
// state store; all mutations produce a new AppState value.
type AppState struct {
	Transactions  []Transaction   `json:"transactions"`
	Categories    []Category      `json:"categories"`
	Budgets       []Budget        `json:"budgets"`
	Goals         []FinancialGoal `json:"goals"`
	Bills         []Bill          `json:"bills"`
	Debts         []Debt          `json:"debts"`
	Wallets       []Wallet        `json:"wallets"`
	Notifications []Notification  `json:"notifications,omitempty"`
	APIKey        string          `json:"-"`
}

// Clone returns a deep copy. All entity types are plain values, so copying
// the slices is sufficient.
func (s AppState) Clone() AppState {
	out := s
	out.Transactions = append([]Transaction(nil), s.Transactions...)
	out.Categories = append([]Category(nil), s.Categories...)
	out.Budgets = append([]Budget(nil), s.Budgets...)
	out.Goals = append([]FinancialGoal(nil), s.Goals...)
	out.Bills = append([]Bill(nil), s.Bills...)
	out.Debts = append([]Debt(nil), s.Debts...)
	out.Wallets = append([]Wallet(nil), s.Wallets...)
	out.Notifications = append([]Notification(nil), s.Notifications...)
	return out
}

// Wallet returns the wallet with the given id.
func (s AppState) Wallet(id string) (Wallet, bool) {
	for _, w := range s.Wallets {
		if w.ID == id {
			return w, true
		}
	}
	return Wallet{}, false
}

// Goal returns the goal with the given id.
func (s AppState) Goal(id string) (FinancialGoal, bool) {
	for _, g := range s.Goals {
		if g.ID == id {
			return g, true
		}
	}
	return FinancialGoal{}, false
}

// DebtByID returns the debt with the given id.
func (s AppState) DebtByID(id string) (Debt, bool) {
	for _, d := range s.Debts {
		if d.ID == id {
			return d, true
		}
	}
	return Debt{}, false
}

// BillByID returns the bill with the given id.
func (s AppState) BillByID(id string) (Bill, bool) {
	for _, b := range s.Bills {
		if b.ID == id {
			return b, true
		}
	}
	return Bill{}, false
}

// CategoryByID returns the category with the given id.
func (s AppState) CategoryByID(id string) (Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// TransactionByID returns the transaction with the given id.
func (s AppState) TransactionByID(id string) (Transaction, bool) {
	for _, t := range s.Transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// DefaultCategories is the taxonomy seeded for a fresh account.
func DefaultCategories() []Category {
	return []Category{
		{ID: "inc-1", Name: "Gaji", Type: TypeIncome},
		{ID: "inc-2", Name: "Bonus", Type: TypeIncome},
		{ID: "inc-3", Name: "Lainnya", Type: TypeIncome},
		{ID: "exp-1", Name: "Makanan & Minuman", Type: TypeExpense},
		{ID: "exp-2", Name: "Transportasi", Type: TypeExpense},
		{ID: "exp-3", Name: "Hiburan", Type: TypeExpense},
		{ID: "exp-4", Name: "Belanja", Type: TypeExpense},
		{ID: "exp-5", Name: "Kesehatan", Type: TypeExpense},
	}
}

// NewAppState returns an empty state with the default category taxonomy.
func NewAppState() AppState {
	return AppState{Categories: DefaultCategories()}
}
