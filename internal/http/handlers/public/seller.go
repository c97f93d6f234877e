package public

import (
	"strconv"
	"strings"
	"time"

	"github.com/modahaus-api/internal/http/response"
	"github.com/modahaus-api/internal/models"
	"github.com/modahaus-api/internal/repository"
	"github.com/modahaus-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SellerProductRequest 卖家商品创建/更新请求
type SellerProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       string   `json:"price" binding:"required"`
	Quantity    int      `json:"quantity"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Color       string   `json:"color"`
	Size        string   `json:"size"`
	Material    string   `json:"material"`
	Images      []string `json:"images"`
}

// ListSellerProducts 卖家商品列表
func (h *Handler) ListSellerProducts(c *gin.Context) {
	sellerID, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	products, total, err := h.ProductService.List(repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		SellerID:   sellerID,
		Search:     strings.TrimSpace(c.Query("search")),
		WithRating: true,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// CreateSellerProduct 卖家发布商品
func (h *Handler) CreateSellerProduct(c *gin.Context) {
	sellerID, ok := getUserID(c)
	if !ok {
		return
	}

	var req SellerProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	input, err := buildProductInput(sellerID, getUserRole(c), req)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.product_invalid_price", nil)
		return
	}

	product, err := h.ProductService.Create(input)
	if err != nil {
		respondWithMappedError(c, err, sellerProductErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, product)
}

// UpdateSellerProduct 卖家更新商品
func (h *Handler) UpdateSellerProduct(c *gin.Context) {
	sellerID, ok := getUserID(c)
	if !ok {
		return
	}
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req SellerProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	input, err := buildProductInput(sellerID, getUserRole(c), req)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.product_invalid_price", nil)
		return
	}

	product, err := h.ProductService.Update(uint(productID), input)
	if err != nil {
		respondWithMappedError(c, err, sellerProductErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, product)
}

// DeleteSellerProduct 卖家下架商品
func (h *Handler) DeleteSellerProduct(c *gin.Context) {
	sellerID, ok := getUserID(c)
	if !ok {
		return
	}
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.ProductService.Delete(uint(productID), sellerID); err != nil {
		respondWithMappedError(c, err, sellerProductErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ListSellerSales 卖家销售记录
func (h *Handler) ListSellerSales(c *gin.Context) {
	sellerID, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.SaleListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(c.Query("search")),
	}
	if from, err := time.Parse("2006-01-02", c.Query("start_date")); err == nil {
		filter.SoldFrom = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("end_date")); err == nil {
		end := to.Add(24*time.Hour - time.Nanosecond)
		filter.SoldTo = &end
	}

	sales, total, err := h.SaleService.ListBySeller(sellerID, filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, sales, response.NewPagination(page, pageSize, total))
}

func buildProductInput(sellerID uint, actorRole string, req SellerProductRequest) (service.ProductInput, error) {
	price, err := models.NewMoneyFromString(req.Price)
	if err != nil {
		return service.ProductInput{}, err
	}
	return service.ProductInput{
		SellerID:    sellerID,
		ActorRole:   actorRole,
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Quantity:    req.Quantity,
		Category:    req.Category,
		Brand:       req.Brand,
		Color:       req.Color,
		Size:        req.Size,
		Material:    req.Material,
		Images:      req.Images,
	}, nil
}
