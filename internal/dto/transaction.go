package dto

import (
	"encoding/json"

	"expense-tracker-web/internal/models"

	"github.com/shopspring/decimal"
)

// AddMoneyRequest is the add-funds form. Amount binds from a form value, a
// JSON number or a JSON string; a missing amount stays zero and fails
// positive_amount.
type AddMoneyRequest struct {
	Mode   models.PaymentMode `json:"mode" form:"mode" validate:"required,payment_mode"`
	Amount decimal.Decimal    `json:"amount" form:"amount" validate:"positive_amount"`
	Note   string             `json:"note" form:"note" validate:"max=500"`
}

// SpendMoneyRequest is the record-spend form.
type SpendMoneyRequest struct {
	Mode     models.PaymentMode `json:"mode" form:"mode" validate:"required,payment_mode"`
	Amount   decimal.Decimal    `json:"amount" form:"amount" validate:"positive_amount"`
	Category models.Category    `json:"category" form:"category" validate:"required,expense_category"`
	Note     string             `json:"note" form:"note" validate:"max=500"`
}

// AddMoneyPayload is the body sent to POST /user/add-money.
type AddMoneyPayload struct {
	Mode   models.PaymentMode `json:"mode"`
	Amount json.Number        `json:"amount"`
	Note   string             `json:"note"`
}

// SpendMoneyPayload is the body sent to POST /user/spend-money.
type SpendMoneyPayload struct {
	Type     models.TransactionType `json:"type"`
	Mode     models.PaymentMode     `json:"mode"`
	Amount   json.Number            `json:"amount"`
	Category models.Category        `json:"category"`
	Note     string                 `json:"note"`
}

// ToPayload converts the validated form into the API body.
func (r AddMoneyRequest) ToPayload() AddMoneyPayload {
	return AddMoneyPayload{
		Mode:   r.Mode,
		Amount: json.Number(r.Amount.String()),
		Note:   r.Note,
	}
}

// ToPayload converts the validated form into the API body. Spends are
// always debits.
func (r SpendMoneyRequest) ToPayload() SpendMoneyPayload {
	return SpendMoneyPayload{
		Type:     models.TransactionTypeDebit,
		Mode:     r.Mode,
		Amount:   json.Number(r.Amount.String()),
		Category: r.Category,
		Note:     r.Note,
	}
}

// TransactionListResponse is the body of GET /transaction.
type TransactionListResponse struct {
	TotalTransactions int                  `json:"totalTransactions"`
	Summary           models.Summary       `json:"summary"`
	ModeBalance       models.AmountSeries  `json:"modeBalance"`
	CategorySummary   models.AmountSeries  `json:"categorySummary"`
	Transactions      []models.Transaction `json:"transactions"`
}

// ViewFilterQuery re-derives a mounted transaction view.
type ViewFilterQuery struct {
	models.TransactionFilters
	Reset bool `query:"reset"`
}
