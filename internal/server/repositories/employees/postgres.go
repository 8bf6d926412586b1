package employees

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

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

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Employee, error) {
	query :=
		`SELECT id, employee_name, username, password, position FROM employees
		 WHERE username = $1
		 `

	employee := &models.Employee{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&employee.ID, &employee.EmployeeName, &employee.Username, &employee.Password, &employee.Position)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return employee, nil
}

func (r *PostgresRepository) Create(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	query :=
		`INSERT INTO employees (employee_name, username, password, position)
         VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		employee.EmployeeName, employee.Username, employee.Password, employee.Position).Scan(&employee.ID)

	if err != nil {
		// The unique index on username is the actual invariant; the
		// service-level pre-check is only an early exit.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return employee, nil
}
