package models

import "time"

// HostingUserRow is one row of the paginated user listing: the user
// columns plus the plan columns pulled in by LEFT JOIN. Plan fields
// are nil when the user has no plan.
type HostingUserRow struct {
	UserID     int64      `json:"user_id"`
	FullName   string     `json:"full_name"`
	Email      string     `json:"email"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiryDate *time.Time `json:"expiry_date"`
	PlanName   *string    `json:"plan_name"`
}

// HostingUserDetail aggregates a user with their plan, server,
// invoice, payment method, support ticket, and usage records. All
// joined fields are pointers so that missing related rows surface as
// JSON null, preserving the LEFT JOIN semantics of the query.
type HostingUserDetail struct {
	UserID    int64     `json:"user_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`

	UserPlanID *int64     `json:"user_plan_id"`
	StartDate  *time.Time `json:"start_date"`
	ExpiryDate *time.Time `json:"expiry_date"`
	AutoRenew  *bool      `json:"auto_renew"`

	PlanName     *string  `json:"plan_name"`
	CPUCores     *int64   `json:"cpu_cores"`
	RAMGB        *int64   `json:"ram_gb"`
	StorageGB    *int64   `json:"storage_gb"`
	BandwidthGB  *int64   `json:"bandwidth_gb"`
	PriceMonthly *float64 `json:"price_monthly"`

	ServerID   *int64  `json:"server_id"`
	ServerName *string `json:"server_name"`
	IPAddress  *string `json:"ip_address"`
	Location   *string `json:"location"`
	Status     *string `json:"status"`

	InvoiceID     *int64     `json:"invoice_id"`
	Amount        *float64   `json:"amount"`
	IssueDate     *time.Time `json:"issue_date"`
	DueDate       *time.Time `json:"due_date"`
	InvoiceStatus *string    `json:"invoice_status"`

	PaymentMethodID *int64  `json:"payment_method_id"`
	MethodType      *string `json:"method_type"`
	PaymentDetails  *string `json:"payment_details"`

	TicketID        *int64     `json:"ticket_id"`
	Subject         *string    `json:"subject"`
	Description     *string    `json:"description"`
	TicketStatus    *string    `json:"ticket_status"`
	TicketCreatedAt *time.Time `json:"ticket_created_at"`
	TicketUpdatedAt *time.Time `json:"ticket_updated_at"`

	UsageID          *int64     `json:"usage_id"`
	CPUUsagePercent  *float64   `json:"cpu_usage_percent"`
	RAMUsagePercent  *float64   `json:"ram_usage_percent"`
	StorageUsageGB   *float64   `json:"storage_usage_gb"`
	BandwidthUsageGB *float64   `json:"bandwidth_usage_gb"`
	UsageTimestamp   *time.Time `json:"usage_timestamp"`
}
