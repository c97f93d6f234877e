package public

import (
	"errors"

	"github.com/modahaus-api/internal/constants"
	"github.com/modahaus-api/internal/http/response"
	"github.com/modahaus-api/internal/i18n"
	"github.com/modahaus-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitRatingRequest 提交评分请求
type SubmitRatingRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Value     int  `json:"value" binding:"required"`
}

// SubmitRating 提交商品评分
func (h *Handler) SubmitRating(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	rating, err := h.RatingService.Rate(userID, req.ProductID, req.Value)
	if err != nil {
		if errors.Is(err, service.ErrRatingOutOfRange) {
			locale := i18n.ResolveLocale(c)
			msg := i18n.Sprintf(locale, "error.rating_out_of_range", constants.RatingMin, constants.RatingMax)
			respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
			return
		}
		respondWithMappedError(c, err, ratingErrorRules, response.CodeInternal, "error.internal")
		return
	}

	aggregate, err := h.RatingService.GetAggregate(req.ProductID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, gin.H{
		"rating":         rating,
		"average_rating": aggregate.Average,
		"total_raters":   aggregate.Count,
	})
}
