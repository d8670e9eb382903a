package services

import (
	"context"

	"studhub/internal/client/api"
	"studhub/internal/client/models"
)

// AdminService covers the user-management panel. Active-status toggling is
// deliberately absent: that mutation never leaves the client.
type AdminService interface {
	Users(ctx context.Context) ([]models.AdminUser, error)
	AssignRole(ctx context.Context, userID int64, role string) error
	DeleteUser(ctx context.Context, userID int64) error
}

type adminService struct {
	client api.Client
}

func NewAdminService(client api.Client) AdminService {
	return &adminService{client: client}
}

func (a *adminService) Users(ctx context.Context) ([]models.AdminUser, error) {
	return a.client.ListUsers(ctx)
}

func (a *adminService) AssignRole(ctx context.Context, userID int64, role string) error {
	return a.client.AssignRole(ctx, userID, role)
}

func (a *adminService) DeleteUser(ctx context.Context, userID int64) error {
	return a.client.DeleteUser(ctx, userID)
}
