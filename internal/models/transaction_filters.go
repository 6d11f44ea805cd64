package models

import "fmt"

// TransactionFilters holds the three optional equality predicates of the
// transaction list. An empty field matches every record.
type TransactionFilters struct {
	Type     TransactionType `query:"type" json:"type,omitempty" validate:"omitempty,transaction_type"`
	Mode     PaymentMode     `query:"mode" json:"mode,omitempty" validate:"omitempty,payment_mode"`
	Category Category        `query:"category" json:"category,omitempty" validate:"omitempty,expense_category"`
}

// Matches reports whether every set predicate equals the record's field.
// Comparison is exact and case-sensitive.
func (f TransactionFilters) Matches(tx Transaction) bool {
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if f.Mode != "" && tx.Mode != f.Mode {
		return false
	}
	if f.Category != "" && (tx.Category == nil || *tx.Category != f.Category) {
		return false
	}
	return true
}

// Apply returns the order-preserving subsequence of records that match.
// The input slice is not modified.
func (f TransactionFilters) Apply(records []Transaction) []Transaction {
	out := make([]Transaction, 0, len(records))
	for _, tx := range records {
		if f.Matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// Reset clears all predicates.
func (f *TransactionFilters) Reset() {
	*f = TransactionFilters{}
}

// ActiveCount is the number of set predicates.
func (f TransactionFilters) ActiveCount() int {
	n := 0
	if f.Type != "" {
		n++
	}
	if f.Mode != "" {
		n++
	}
	if f.Category != "" {
		n++
	}
	return n
}

// IsZero reports whether no predicate is set.
func (f TransactionFilters) IsZero() bool {
	return f.ActiveCount() == 0
}

// Validate checks every set predicate against its enumeration.
func (f TransactionFilters) Validate() error {
	if f.Type != "" && !IsValidTransactionType(string(f.Type)) {
		return fmt.Errorf("%w: %q", ErrInvalidTransactionType, f.Type)
	}
	if f.Mode != "" && !IsValidPaymentMode(string(f.Mode)) {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentMode, f.Mode)
	}
	if f.Category != "" && !IsValidCategory(string(f.Category)) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, f.Category)
	}
	return nil
}
