// Package services contains server-side business logic. This file
// implements EmployeeService, which handles registration and login and
// issues session tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/webmanager/internal/common"
	"github.com/dmitrijs2005/webmanager/internal/server/auth"
	"github.com/dmitrijs2005/webmanager/internal/server/config"
	"github.com/dmitrijs2005/webmanager/internal/server/models"
	"github.com/dmitrijs2005/webmanager/internal/server/repositories/repomanager"
)

// RegisterInput carries the fields of a registration request. The
// plaintext password lives only for the duration of the call and is
// never stored or logged.
type RegisterInput struct {
	EmployeeName string
	Username     string
	Password     string
	Position     string
}

// EmployeeService provides authentication-related operations:
// - Register: create accounts with hashed passwords
// - Login: verify credentials and mint a session token
type EmployeeService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewEmployeeService constructs an EmployeeService using repositories
// and server config.
func NewEmployeeService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *EmployeeService {
	return &EmployeeService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new account. The username pre-check is an early
// exit only; the unique index on the username column is what actually
// prevents a duplicate when two registrations race.
func (s *EmployeeService) Register(ctx context.Context, in RegisterInput) (*models.Employee, error) {
	repo := s.repomanager.Employees(s.db)

	_, err := repo.GetByUsername(ctx, in.Username)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking username: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	employee := &models.Employee{
		EmployeeName: in.EmployeeName,
		Username:     in.Username,
		Password:     hash,
		Position:     in.Position,
	}

	created, err := repo.Create(ctx, employee)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating employee: %w", err)
	}

	return created, nil
}

// Login verifies the username/password pair and, on success, returns a
// session token together with the account. A missing account and a
// wrong password are indistinguishable to the caller.
func (s *EmployeeService) Login(ctx context.Context, username, password string) (string, *models.Employee, error) {
	repo := s.repomanager.Employees(s.db)

	employee, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUnauthorized
		}
		return "", nil, common.ErrorInternal
	}

	if !auth.CheckPassword(password, employee.Password) {
		return "", nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(employee.ID, employee.Username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, employee, nil
}
