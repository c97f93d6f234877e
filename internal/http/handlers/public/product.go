package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/modahaus-api/internal/http/response"
	"github.com/modahaus-api/internal/repository"
	"github.com/modahaus-api/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProducts 获取商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.ProductListFilter{
		Page:        page,
		PageSize:    pageSize,
		Search:      strings.TrimSpace(c.Query("search")),
		Category:    strings.TrimSpace(c.Query("category")),
		Brand:       strings.TrimSpace(c.Query("brand")),
		MinPrice:    strings.TrimSpace(c.Query("min_price")),
		MaxPrice:    strings.TrimSpace(c.Query("max_price")),
		InStockOnly: c.Query("in_stock") == "true",
		WithSeller:  true,
		WithRating:  true,
	}
	if sellerID, err := strconv.ParseUint(c.Query("seller_id"), 10, 64); err == nil && sellerID > 0 {
		filter.SellerID = uint(sellerID)
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// GetProduct 获取商品详情，附带评分汇总与当前用户评分
func (h *Handler) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	product, err := h.ProductService.GetByID(uint(productID))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	resp := gin.H{"product": product}
	if userID := optionalUserID(c); userID != 0 {
		rating, rerr := h.RatingService.GetUserRating(userID, uint(productID))
		if rerr == nil && rating != nil {
			resp["user_rating"] = rating.Value
		}
	}
	response.Success(c, resp)
}

// GetProductRating 获取商品评分汇总
func (h *Handler) GetProductRating(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	aggregate, err := h.RatingService.GetAggregate(uint(productID))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	resp := gin.H{
		"product_id":     aggregate.ProductID,
		"average_rating": aggregate.Average,
		"total_raters":   aggregate.Count,
	}
	if userID := optionalUserID(c); userID != 0 {
		rating, rerr := h.RatingService.GetUserRating(userID, uint(productID))
		if rerr == nil && rating != nil {
			resp["user_rating"] = rating.Value
		}
	}
	response.Success(c, resp)
}
