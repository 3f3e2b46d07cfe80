package models

import (
	"time"
)

// Configuration holds a company's petty-cash settings: the target float and
// the threshold below which the on-hand balance is flagged as low.
// Exactly one configuration exists per company (upsert semantics).
// All amounts are in currency minor units.
type Configuration struct {
	Id            string    `json:"id" dynamodbav:"id"`
	CompanyId     string    `json:"company_id" dynamodbav:"company_id"`
	Amount        int64     `json:"amount" dynamodbav:"amount"`
	WarningAmount int64     `json:"warning_amount" dynamodbav:"warning_amount"`
	CreatedAt     time.Time `json:"created_at" dynamodbav:"created"`
	UpdatedAt     time.Time `json:"updated_at" dynamodbav:"updated"`
	UpdatedBy     string    `json:"updated_by" dynamodbav:"updated_by"`
}

// Cycle is a bounded accounting period for the petty-cash float.
// At most one cycle per company is active at any time; EndDate is the zero
// time while the cycle is active.
type Cycle struct {
	Id        string    `json:"id" dynamodbav:"id"`
	CompanyId string    `json:"company_id" dynamodbav:"company_id"`
	CycleNo   int64     `json:"cycle_no" dynamodbav:"cycle_no"`
	ConfigId  string    `json:"config_id" dynamodbav:"config_id"`
	StartDate time.Time `json:"start_date" dynamodbav:"start_date"`
	EndDate   time.Time `json:"end_date" dynamodbav:"end_date,omitempty"`
	Total     int64     `json:"total" dynamodbav:"total"`
	Active    bool      `json:"active" dynamodbav:"active"`
	CreatedBy string    `json:"created_by" dynamodbav:"created_by"`
}

// Expense is a single itemized spend against a cycle. Expenses are immutable
// once written and are never reassigned to another cycle.
type Expense struct {
	Id          string    `json:"id" dynamodbav:"id"`
	CycleId     string    `json:"cycle_id" dynamodbav:"cycle_id"`
	CompanyId   string    `json:"company_id" dynamodbav:"company_id"`
	Item        string    `json:"item" dynamodbav:"item"`
	Amount      int64     `json:"amount" dynamodbav:"amount"`
	RequestedBy string    `json:"requested_by" dynamodbav:"requested_by"`
	Attachments []string  `json:"attachments" dynamodbav:"attachments,omitempty"`
	CreatedAt   time.Time `json:"created_at" dynamodbav:"created"`
	CreatedBy   string    `json:"created_by" dynamodbav:"created_by"`
}

// Counter is the per-company cycle-number allocator. The stored value is the
// last number handed out; allocation is an atomic ADD so concurrent replenish
// calls can never observe the same number.
type Counter struct {
	CompanyId string `dynamodbav:"company_id"`
	CycleNo   int64  `dynamodbav:"cycle_no"`
}
