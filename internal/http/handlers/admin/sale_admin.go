package admin

import (
	"strconv"
	"strings"
	"time"

	"github.com/modahaus-api/internal/http/response"
	"github.com/modahaus-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// AdminListSales 管理端销售记录列表
func (h *Handler) AdminListSales(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.SaleListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(c.Query("search")),
	}
	from, err := parseTimeNullable(c.Query("start_date"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	to, err := parseTimeNullable(c.Query("end_date"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	filter.SoldFrom = from
	if to != nil {
		end := to.Add(24*time.Hour - time.Nanosecond)
		filter.SoldTo = &end
	}
	if sellerID, perr := strconv.ParseUint(c.Query("seller_id"), 10, 64); perr == nil && sellerID > 0 {
		filter.SellerID = uint(sellerID)
	}

	sales, total, err := h.SaleService.ListAdmin(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, sales, response.NewPagination(page, pageSize, total))
}
