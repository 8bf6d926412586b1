package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/webmanager/internal/server/models"
	"github.com/dmitrijs2005/webmanager/internal/server/repositories/repomanager"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// HostingService exposes the read-only reporting projections.
type HostingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewHostingService(db *sql.DB, m repomanager.RepositoryManager) *HostingService {
	return &HostingService{db: db, repomanager: m}
}

// ListUsers returns one page of users with their plan. Out-of-range
// page and limit values fall back to the defaults.
func (s *HostingService) ListUsers(ctx context.Context, page, limit int) ([]models.HostingUserRow, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	offset := (page - 1) * limit

	repo := s.repomanager.Hosting(s.db)

	users, err := repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

// GetUserDetail returns the aggregated record for one user; missing
// related rows surface as nil fields. Propagates
// common.ErrorNotFound unchanged.
func (s *HostingService) GetUserDetail(ctx context.Context, userID int64) (*models.HostingUserDetail, error) {
	repo := s.repomanager.Hosting(s.db)
	return repo.GetByID(ctx, userID)
}
