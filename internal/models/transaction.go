package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes income (credit) from expense (debit).
type TransactionType string

// PaymentMode is the payment channel a transaction went through.
type PaymentMode string

// Category classifies debit transactions.
type Category string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

const (
	PaymentModeCash   PaymentMode = "CASH"
	PaymentModeOnline PaymentMode = "ONLINE"
)

const (
	CategoryFood          Category = "FOOD"
	CategoryTravel        Category = "TRAVEL"
	CategoryShopping      Category = "SHOPPING"
	CategoryRent          Category = "RENT"
	CategoryBills         Category = "BILLS"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryHealth        Category = "HEALTH"
	CategoryEducation     Category = "EDUCATION"
	CategoryGroceries     Category = "GROCERIES"
	CategoryFuel          Category = "FUEL"
	CategoryInvestment    Category = "INVESTMENT"
	CategoryOther         Category = "OTHER"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidPaymentMode     = errors.New("invalid payment mode")
	ErrInvalidCategory        = errors.New("invalid category")
)

// TransactionTypes lists every transaction type in display order.
var TransactionTypes = []TransactionType{TransactionTypeCredit, TransactionTypeDebit}

// PaymentModes lists every payment mode in display order.
var PaymentModes = []PaymentMode{PaymentModeCash, PaymentModeOnline}

// Categories lists every expense category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTravel,
	CategoryShopping,
	CategoryRent,
	CategoryBills,
	CategoryEntertainment,
	CategoryHealth,
	CategoryEducation,
	CategoryGroceries,
	CategoryFuel,
	CategoryInvestment,
	CategoryOther,
}

// Transaction is one record returned by the remote API. It is never mutated
// after decoding.
type Transaction struct {
	Type     TransactionType `json:"type"`
	Mode     PaymentMode     `json:"mode"`
	Amount   decimal.Decimal `json:"amount"`
	Category *Category       `json:"category,omitempty"`
	Note     string          `json:"note,omitempty"`
	Date     Timestamp       `json:"date"`
}

// IsCredit reports whether the record is income.
func (t Transaction) IsCredit() bool {
	return t.Type == TransactionTypeCredit
}

// CategoryLabel returns the category or "N/A" when the record has none.
func (t Transaction) CategoryLabel() string {
	if t.Category == nil || *t.Category == "" {
		return "N/A"
	}
	return string(*t.Category)
}

func IsValidTransactionType(v string) bool {
	for _, t := range TransactionTypes {
		if string(t) == v {
			return true
		}
	}
	return false
}

func IsValidPaymentMode(v string) bool {
	for _, m := range PaymentModes {
		if string(m) == v {
			return true
		}
	}
	return false
}

func IsValidCategory(v string) bool {
	for _, c := range Categories {
		if string(c) == v {
			return true
		}
	}
	return false
}
