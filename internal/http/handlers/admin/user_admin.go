package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/modahaus-api/internal/http/response"
	"github.com/modahaus-api/internal/repository"
	"github.com/modahaus-api/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminListUsers 管理端用户列表
func (h *Handler) AdminListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	users, total, err := h.UserAdminService.List(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  strings.TrimSpace(c.Query("keyword")),
		Role:     strings.TrimSpace(c.Query("role")),
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, users, response.NewPagination(page, pageSize, total))
}

// AdminSetUserRoleRequest 设置用户角色请求
type AdminSetUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// AdminSetUserRole 设置用户角色（buyer/seller/admin）
func (h *Handler) AdminSetUserRole(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || userID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req AdminSetUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, err := h.UserAdminService.SetRole(uint(userID), strings.TrimSpace(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		case errors.Is(err, service.ErrRoleInvalid):
			respondError(c, response.CodeBadRequest, "error.role_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}
	response.Success(c, user)
}

// AdminSetUserStatusRequest 批量设置用户状态请求
type AdminSetUserStatusRequest struct {
	UserIDs []uint `json:"user_ids" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// AdminSetUserStatus 批量启用/禁用用户
func (h *Handler) AdminSetUserStatus(c *gin.Context) {
	var req AdminSetUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.UserAdminService.SetStatus(req.UserIDs, strings.TrimSpace(req.Status)); err != nil {
		if errors.Is(err, service.ErrUserStatusInvalid) {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"updated": len(req.UserIDs)})
}
