// Package employees implements the credential store adapter: a point
// lookup by unique username and an insert of a new account record.
package employees

import (
	"context"

	"github.com/dmitrijs2005/webmanager/internal/server/models"
)

type Repository interface {
	// GetByUsername performs a point lookup keyed on the unique
	// username column. Returns common.ErrorNotFound when absent.
	GetByUsername(ctx context.Context, username string) (*models.Employee, error)

	// Create inserts a new account record (password already hashed)
	// and fills in the store-assigned id. Returns
	// common.ErrorAlreadyExists when the username is taken.
	Create(ctx context.Context, employee *models.Employee) (*models.Employee, error)
}
