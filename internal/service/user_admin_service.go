package service

import (
	"context"
	"strings"

	"github.com/modahaus-api/internal/cache"
	"github.com/modahaus-api/internal/constants"
	"github.com/modahaus-api/internal/models"
	"github.com/modahaus-api/internal/repository"
)

// UserAdminService 管理端用户服务
type UserAdminService struct {
	userRepo repository.UserRepository
}

// NewUserAdminService 创建管理端用户服务
func NewUserAdminService(userRepo repository.UserRepository) *UserAdminService {
	return &UserAdminService{userRepo: userRepo}
}

// List 用户列表
func (s *UserAdminService) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.userRepo.List(filter)
}

// SetRole 调整用户角色
// 角色变化会递增 Token 版本，持旧令牌的会话随之失效。
func (s *UserAdminService) SetRole(userID uint, role string) (*models.User, error) {
	if userID == 0 {
		return nil, ErrNotFound
	}
	normalized := strings.ToLower(strings.TrimSpace(role))
	if !constants.IsValidRole(normalized) {
		return nil, ErrRoleInvalid
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if user.Role == normalized {
		return user, nil
	}

	if err := s.userRepo.UpdateRole(userID, normalized); err != nil {
		return nil, err
	}

	updated, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	_ = cache.DelUserAuthState(context.Background(), userID)
	return updated, nil
}

// SetStatus 批量启用/禁用用户
func (s *UserAdminService) SetStatus(userIDs []uint, status string) error {
	normalized := strings.ToLower(strings.TrimSpace(status))
	if normalized != constants.UserStatusActive && normalized != constants.UserStatusDisabled {
		return ErrUserStatusInvalid
	}
	if err := s.userRepo.BatchUpdateStatus(userIDs, normalized); err != nil {
		return err
	}
	for _, id := range userIDs {
		_ = cache.DelUserAuthState(context.Background(), id)
	}
	return nil
}
