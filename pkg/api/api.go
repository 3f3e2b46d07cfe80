// Package api holds the wire models exposed by the HTTP layer.
package api

import (
	"time"
)

// Configuration is the API model for a company's petty-cash settings.
type Configuration struct {
	Id            string    `json:"id"`
	CompanyId     string    `json:"company_id"`
	Amount        int64     `json:"amount"`
	WarningAmount int64     `json:"warning_amount"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewConfiguration is the request body for saving a configuration.
type NewConfiguration struct {
	Amount        int64 `json:"amount"`
	WarningAmount int64 `json:"warning_amount"`
}

// Cycle is the API model for a petty-cash cycle.
type Cycle struct {
	Id        string     `json:"id"`
	DisplayId string     `json:"display_id"`
	CycleNo   int64      `json:"cycle_no"`
	ConfigId  string     `json:"config_id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Total     int64      `json:"total"`
	Active    bool       `json:"active"`
}

// Expense is the API model for a recorded expense.
type Expense struct {
	Id          string    `json:"id"`
	CycleId     string    `json:"cycle_id"`
	Item        string    `json:"item"`
	Amount      int64     `json:"amount"`
	RequestedBy string    `json:"requested_by"`
	Attachments []string  `json:"attachments"`
	CreatedAt   time.Time `json:"created_at"`
}

// CycleStatement is a cycle together with its expenses, as displayed in the
// per-cycle statement view.
type CycleStatement struct {
	DisplayId string     `json:"display_id"`
	From      time.Time  `json:"from"`
	Until     *time.Time `json:"until,omitempty"`
	Total     int64      `json:"total"`
	Expenses  []Expense  `json:"expenses"`
}
