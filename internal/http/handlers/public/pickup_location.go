package public

import (
	"github.com/modahaus-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetPickupLocations 获取启用中的自提点列表
func (h *Handler) GetPickupLocations(c *gin.Context) {
	locations, err := h.PickupLocationService.ListActive()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, locations)
}
