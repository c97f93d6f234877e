package admin

import (
	"errors"
	"strconv"

	"github.com/modahaus-api/internal/http/response"
	"github.com/modahaus-api/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminListPickupLocations 管理端自提点列表（含停用）
func (h *Handler) AdminListPickupLocations(c *gin.Context) {
	locations, err := h.PickupLocationService.ListAll()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, locations)
}

// AdminCreatePickupLocation 创建自提点
func (h *Handler) AdminCreatePickupLocation(c *gin.Context) {
	var req service.PickupLocationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	location, err := h.PickupLocationService.Create(req)
	if err != nil {
		respondPickupLocationError(c, err)
		return
	}
	response.Success(c, location)
}

// AdminUpdatePickupLocation 更新自提点
func (h *Handler) AdminUpdatePickupLocation(c *gin.Context) {
	locationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || locationID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req service.PickupLocationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	location, err := h.PickupLocationService.Update(uint(locationID), req)
	if err != nil {
		respondPickupLocationError(c, err)
		return
	}
	response.Success(c, location)
}

// AdminDeletePickupLocation 删除自提点
func (h *Handler) AdminDeletePickupLocation(c *gin.Context) {
	locationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || locationID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.PickupLocationService.Delete(uint(locationID)); err != nil {
		respondPickupLocationError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

func respondPickupLocationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPickupLocationNotFound):
		respondError(c, response.CodeNotFound, "error.pickup_location_not_found", nil)
	case errors.Is(err, service.ErrPickupLocationNameRequired):
		respondError(c, response.CodeBadRequest, "error.pickup_location_name_required", nil)
	default:
		respondError(c, response.CodeInternal, "error.internal", err)
	}
}
