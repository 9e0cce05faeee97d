package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func validInput() TransactionInput {
	return TransactionInput{
		Title:       "Lunch",
		Amount:      "12.50",
		Category:    "Food",
		Date:        "2024-03-15",
		Description: "canteen",
		Type:        "EXPENSE",
	}
}

func TestValidateInputAccepts(t *testing.T) {
	tx, err := ValidateInput(validInput())
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if tx.Amount.Cents != 1250 {
		t.Fatalf("unexpected cents: %d", tx.Amount.Cents)
	}
	if tx.Category != CategoryFood || tx.Type != Expense {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
	if tx.Date.String() != "2024-03-15" {
		t.Fatalf("unexpected date: %s", tx.Date)
	}
	if tx.ID != 0 {
		t.Fatalf("ID must be unassigned before the store sees it, got %d", tx.ID)
	}
}

func TestValidateInputRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TransactionInput)
		want   error
	}{
		{"empty title", func(in *TransactionInput) { in.Title = "" }, ErrMissingTitle},
		{"whitespace title", func(in *TransactionInput) { in.Title = "   " }, ErrMissingTitle},
		{"zero amount", func(in *TransactionInput) { in.Amount = "0" }, ErrInvalidAmount},
		{"negative amount", func(in *TransactionInput) { in.Amount = "-5" }, ErrInvalidAmount},
		{"non-numeric amount", func(in *TransactionInput) { in.Amount = "abc" }, ErrInvalidAmount},
		{"empty category", func(in *TransactionInput) { in.Category = "" }, ErrInvalidCategory},
		{"unknown expense category", func(in *TransactionInput) { in.Category = "Snacks" }, ErrInvalidCategory},
		{"bad date", func(in *TransactionInput) { in.Date = "2024-13-40" }, ErrInvalidDate},
		{"empty date", func(in *TransactionInput) { in.Date = "" }, ErrInvalidDate},
		{"bad type", func(in *TransactionInput) { in.Type = "TRANSFER" }, ErrInvalidType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := ValidateInput(in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateInputOrderFirstFailureWins(t *testing.T) {
	// Everything is wrong; the title rule fires first. Type starts as a
	// valid EXPENSE so the category enum rule is in play for step three.
	in := TransactionInput{Title: "", Amount: "-1", Category: "Snacks", Date: "nope", Type: "EXPENSE"}
	if _, err := ValidateInput(in); !errors.Is(err, ErrMissingTitle) {
		t.Fatalf("want ErrMissingTitle, got %v", err)
	}

	// Title fixed; amount fires next.
	in.Title = "x"
	if _, err := ValidateInput(in); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("want ErrInvalidAmount, got %v", err)
	}

	in.Amount = "10"
	if _, err := ValidateInput(in); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("want ErrInvalidCategory, got %v", err)
	}

	in.Category = "Food"
	if _, err := ValidateInput(in); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("want ErrInvalidDate, got %v", err)
	}

	in.Date = "2024-01-01"
	in.Type = "???"
	if _, err := ValidateInput(in); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("want ErrInvalidType, got %v", err)
	}
}

func TestCategoryEnumOnlyBindsExpenses(t *testing.T) {
	// The expense category enum does not apply when the type is not
	// EXPENSE, so validation moves on and rejects the date instead.
	in := TransactionInput{Title: "x", Amount: "10", Category: "Snacks", Date: "nope", Type: "???"}
	if _, err := ValidateInput(in); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("want ErrInvalidDate, got %v", err)
	}
}

func TestIncomeCategoryNotRestricted(t *testing.T) {
	in := validInput()
	in.Type = "INCOME"
	in.Category = "Income"
	if _, err := ValidateInput(in); err != nil {
		t.Fatalf("income category should pass: %v", err)
	}
}

func TestSignedContribution(t *testing.T) {
	income := Transaction{Amount: Money{Cents: 1000}, Type: Income}
	expense := Transaction{Amount: Money{Cents: 300}, Type: Expense}
	if income.Signed() != 1000 {
		t.Fatalf("income contribution = %d, want +1000", income.Signed())
	}
	if expense.Signed() != -300 {
		t.Fatalf("expense contribution = %d, want -300", expense.Signed())
	}
}

func TestTransactionJSONShape(t *testing.T) {
	tx := Transaction{
		ID:          7,
		Title:       "Salary",
		Amount:      Money{Cents: 150000},
		Category:    CategoryIncome,
		Date:        NewDate(2024, 6, 1),
		Description: "june",
		Type:        Income,
	}
	b, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":7,"title":"Salary","amount":1500.00,"category":"Income","date":"2024-06-01","description":"june","type":"INCOME"}`
	if string(b) != want {
		t.Fatalf("json = %s, want %s", b, want)
	}

	var back Transaction
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != tx {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}
