// Package hosting implements the read-only reporting projections over
// the hosting tables. The authorization gate in httpapi is the only
// thing standing between these queries and the outside world; the
// queries themselves are plain LEFT JOIN projections.
package hosting

import (
	"context"

	"github.com/dmitrijs2005/webmanager/internal/server/models"
)

type Repository interface {
	// List returns a page of users joined with their plan, ordered by
	// user id.
	List(ctx context.Context, limit, offset int) ([]models.HostingUserRow, error)

	// GetByID returns the aggregated record for one user. Joined
	// fields are nil when no related rows exist. Returns
	// common.ErrorNotFound when the user itself is absent.
	GetByID(ctx context.Context, userID int64) (*models.HostingUserDetail, error)
}
