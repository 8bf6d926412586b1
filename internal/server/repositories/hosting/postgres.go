package hosting

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/webmanager/internal/common"
	"github.com/dmitrijs2005/webmanager/internal/dbx"
	"github.com/dmitrijs2005/webmanager/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, limit, offset int) ([]models.HostingUserRow, error) {
	query :=
		`SELECT u.user_id, u.full_name, u.email, u.created_at, up.expiry_date, p.plan_name
		 FROM users u
		 LEFT JOIN user_plans up ON u.user_id = up.user_id
		 LEFT JOIN plans p ON up.plan_id = p.plan_id
		 ORDER BY u.user_id
		 LIMIT $1 OFFSET $2
		 `

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	users := []models.HostingUserRow{}
	for rows.Next() {
		var u models.HostingUserRow
		if err := rows.Scan(&u.UserID, &u.FullName, &u.Email, &u.CreatedAt, &u.ExpiryDate, &u.PlanName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return users, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID int64) (*models.HostingUserDetail, error) {
	query :=
		`SELECT
		   u.user_id, u.full_name, u.email, u.created_at,
		   up.user_plan_id, up.start_date, up.expiry_date, up.auto_renew,
		   p.plan_name, p.cpu_cores, p.ram_gb, p.storage_gb, p.bandwidth_gb, p.price_monthly,
		   s.server_id, s.server_name, s.ip_address, s.location, s.status,
		   i.invoice_id, i.amount, i.issue_date, i.due_date, i.status AS invoice_status,
		   pm.payment_method_id, pm.method_type, pm.details AS payment_details,
		   st.ticket_id, st.subject, st.description, st.status AS ticket_status, st.created_at, st.updated_at,
		   su.usage_id, su.cpu_usage_percent, su.ram_usage_percent, su.storage_usage_gb, su.bandwidth_usage_gb, su.recorded_at AS usage_timestamp
		 FROM users u
		 LEFT JOIN user_plans up ON u.user_id = up.user_id
		 LEFT JOIN plans p ON up.plan_id = p.plan_id
		 LEFT JOIN user_servers us ON u.user_id = us.user_id
		 LEFT JOIN servers s ON us.server_id = s.server_id
		 LEFT JOIN invoices i ON u.user_id = i.user_id
		 LEFT JOIN payment_methods pm ON u.user_id = pm.user_id
		 LEFT JOIN support_tickets st ON u.user_id = st.user_id
		 LEFT JOIN server_usage su ON us.user_server_id = su.user_server_id
		 WHERE u.user_id = $1
		 `

	d := &models.HostingUserDetail{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&d.UserID, &d.FullName, &d.Email, &d.CreatedAt,
		&d.UserPlanID, &d.StartDate, &d.ExpiryDate, &d.AutoRenew,
		&d.PlanName, &d.CPUCores, &d.RAMGB, &d.StorageGB, &d.BandwidthGB, &d.PriceMonthly,
		&d.ServerID, &d.ServerName, &d.IPAddress, &d.Location, &d.Status,
		&d.InvoiceID, &d.Amount, &d.IssueDate, &d.DueDate, &d.InvoiceStatus,
		&d.PaymentMethodID, &d.MethodType, &d.PaymentDetails,
		&d.TicketID, &d.Subject, &d.Description, &d.TicketStatus, &d.TicketCreatedAt, &d.TicketUpdatedAt,
		&d.UsageID, &d.CPUUsagePercent, &d.RAMUsagePercent, &d.StorageUsageGB, &d.BandwidthUsageGB, &d.UsageTimestamp,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return d, nil
}
