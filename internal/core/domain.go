package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Expense categories form a closed set; income always uses CategoryIncome.
const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryHousing       Category = "Housing"
	CategoryUtilities     Category = "Utilities"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryShopping      Category = "Shopping"
	CategoryOther         Category = "Other"

	CategoryIncome Category = "Income"
)

type (
	TransactionType string

	Category string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	Transaction struct {
		ID          int64           `json:"id"`
		Title       string          `json:"title"`
		Amount      Money           `json:"amount"`
		Category    Category        `json:"category"`
		Date        Date            `json:"date"`
		Description string          `json:"description"`
		Type        TransactionType `json:"type"`
	}

	// TransactionInput is the raw, untrusted shape a transaction arrives in
	// before validation. Amount and Date are strings so malformed values can
	// be rejected instead of silently coerced.
	TransactionInput struct {
		Title       string
		Amount      string
		Category    string
		Date        string
		Description string
		Type        string
	}
)

var (
	ErrMissingTitle    = errors.New("missing title")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidType     = errors.New("invalid transaction type")
)

// ExpenseCategories lists the valid expense categories in display order.
func ExpenseCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryHousing,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryHealth,
		CategoryShopping,
		CategoryOther,
	}
}

// IsExpenseCategory reports whether c belongs to the fixed expense set.
func IsExpenseCategory(c Category) bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryHousing, CategoryUtilities,
		CategoryEntertainment, CategoryHealth, CategoryShopping, CategoryOther:
		return true
	}
	return false
}

func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// NewDate creates a Date from year, month, day at midnight UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

// Year returns the calendar year.
func (d Date) Year() int {
	return d.Time.Year()
}

// Month returns the calendar month as 1-12.
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.Time.Day()
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Signed returns the cents contribution of the transaction to a balance:
// positive for income, negative for expenses. The stored amount itself is
// always a non-negative magnitude.
func (t Transaction) Signed() int64 {
	if t.Type == Income {
		return t.Amount.Cents
	}
	return -t.Amount.Cents
}

// Validate re-checks the invariants of an already-built transaction. New
// records should go through ValidateInput instead; this exists for records
// loaded from storage.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrMissingTitle
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if t.Category == "" {
		return ErrInvalidCategory
	}
	if t.Type == Expense && !IsExpenseCategory(t.Category) {
		return ErrInvalidCategory
	}
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	if !t.Type.IsValid() {
		return ErrInvalidType
	}
	return nil
}

// ValidateInput is the single gate through which transactions enter the
// store. Rules are applied in a fixed order and the first failure wins:
// title, amount, category, date, type. The returned transaction has no ID;
// the store assigns one on append.
func ValidateInput(in TransactionInput) (Transaction, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Transaction{}, ErrMissingTitle
	}

	cents, err := ParseSignedDecimalToCents(in.Amount)
	if err != nil || cents <= 0 {
		return Transaction{}, ErrInvalidAmount
	}

	category := Category(strings.TrimSpace(in.Category))
	if category == "" {
		return Transaction{}, ErrInvalidCategory
	}
	typ := TransactionType(strings.TrimSpace(in.Type))
	if typ == Expense && !IsExpenseCategory(category) {
		return Transaction{}, ErrInvalidCategory
	}

	date, err := ParseDate(in.Date)
	if err != nil {
		return Transaction{}, ErrInvalidDate
	}

	if !typ.IsValid() {
		return Transaction{}, ErrInvalidType
	}

	return Transaction{
		Title:       title,
		Amount:      Money{Cents: cents},
		Category:    category,
		Date:        date,
		Description: strings.TrimSpace(in.Description),
		Type:        typ,
	}, nil
}
