package public

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/modahaus-api/internal/http/response"
	"github.com/modahaus-api/internal/repository"
	"github.com/modahaus-api/internal/service"

	"github.com/gin-gonic/gin"
)

// PlaceOrderRequest 下单请求
type PlaceOrderRequest struct {
	PickupLocationID *uint `json:"pickup_location_id"`
}

// PlaceOrder 从购物车下单
func (h *Handler) PlaceOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	// 请求体可为空，缺失的自提点由服务层拒绝
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.OrderService.PlaceOrder(service.PlaceOrderInput{
		UserID:           userID,
		PickupLocationID: req.PickupLocationID,
	})
	if err != nil {
		respondWithMappedError(c, err, placeOrderErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, order)
}

// ListMyOrders 当前用户订单列表
func (h *Handler) ListMyOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListByUser(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetMyOrder 当前用户订单详情
func (h *Handler) GetMyOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.GetByIDAndUser(uint(orderID), userID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, order)
}
