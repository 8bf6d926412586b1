package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/webmanager/internal/common"
	"github.com/dmitrijs2005/webmanager/internal/server/models"
)

type fakeHostingRepo struct {
	listOut    []models.HostingUserRow
	listErr    error
	lastLimit  int
	lastOffset int

	getOut *models.HostingUserDetail
	getErr error
}

func (f *fakeHostingRepo) List(ctx context.Context, limit, offset int) ([]models.HostingUserRow, error) {
	f.lastLimit = limit
	f.lastOffset = offset
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeHostingRepo) GetByID(ctx context.Context, userID int64) (*models.HostingUserDetail, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func TestListUsers_Pagination(t *testing.T) {
	repo := &fakeHostingRepo{listOut: []models.HostingUserRow{}}
	s := NewHostingService(nil, &fakeRepoManager{h: repo})

	if _, err := s.ListUsers(context.Background(), 3, 25); err != nil {
		t.Fatalf("ListUsers error: %v", err)
	}
	if repo.lastLimit != 25 || repo.lastOffset != 50 {
		t.Fatalf("expected limit=25 offset=50, got limit=%d offset=%d", repo.lastLimit, repo.lastOffset)
	}
}

func TestListUsers_Defaults(t *testing.T) {
	repo := &fakeHostingRepo{listOut: []models.HostingUserRow{}}
	s := NewHostingService(nil, &fakeRepoManager{h: repo})

	if _, err := s.ListUsers(context.Background(), 0, 0); err != nil {
		t.Fatalf("ListUsers error: %v", err)
	}
	if repo.lastLimit != 10 || repo.lastOffset != 0 {
		t.Fatalf("expected default limit=10 offset=0, got limit=%d offset=%d", repo.lastLimit, repo.lastOffset)
	}
}

func TestListUsers_RepoError(t *testing.T) {
	repo := &fakeHostingRepo{listErr: errors.New("db down")}
	s := NewHostingService(nil, &fakeRepoManager{h: repo})

	if _, err := s.ListUsers(context.Background(), 1, 10); err == nil {
		t.Fatalf("expected error from repository")
	}
}

func TestGetUserDetail_PropagatesNotFound(t *testing.T) {
	repo := &fakeHostingRepo{getErr: common.ErrorNotFound}
	s := NewHostingService(nil, &fakeRepoManager{h: repo})

	_, err := s.GetUserDetail(context.Background(), 999999)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetUserDetail_Success(t *testing.T) {
	repo := &fakeHostingRepo{getOut: &models.HostingUserDetail{UserID: 7, FullName: "Lone User"}}
	s := NewHostingService(nil, &fakeRepoManager{h: repo})

	got, err := s.GetUserDetail(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetUserDetail error: %v", err)
	}
	if got.UserID != 7 {
		t.Fatalf("unexpected detail: %+v", got)
	}
}
