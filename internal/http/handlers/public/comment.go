package public

import (
	"strconv"

	"github.com/modahaus-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetComments 获取商品评论列表
func (h *Handler) GetComments(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Query("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	comments, total, err := h.CommentService.ListByProduct(uint(productID), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, comments, response.NewPagination(page, pageSize, total))
}

// CreateCommentRequest 发表评论请求
type CreateCommentRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

// CreateComment 发表商品评论
func (h *Handler) CreateComment(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	comment, err := h.CommentService.Create(userID, req.ProductID, req.Text)
	if err != nil {
		respondWithMappedError(c, err, commentErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, comment)
}

// DeleteComment 删除评论
func (h *Handler) DeleteComment(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || commentID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.CommentService.Delete(uint(commentID), userID, getUserRole(c)); err != nil {
		respondWithMappedError(c, err, commentErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
