package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"webshop-seo/internal/repository"
	"webshop-seo/internal/service"
)

// ScoreHandler exposes the quality scoring engine over HTTP.
type ScoreHandler struct {
	logger  *zap.Logger
	quality *service.QualityService
}

func NewScoreHandler(logger *zap.Logger, quality *service.QualityService) *ScoreHandler {
	return &ScoreHandler{
		logger:  logger,
		quality: quality,
	}
}

// RecalculateProduct handles POST /products/:id/score.
func (h *ScoreHandler) RecalculateProduct(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	result, err := h.quality.ScoreProduct(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		h.logger.Error("score product failed", zap.Int64("product_id", productID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not score product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"score": result})
}

// RecalculateBulk handles POST /scores/recalculate. Item failures are reported
// in the summary, never as a request failure.
func (h *ScoreHandler) RecalculateBulk(c *gin.Context) {
	var req struct {
		ProductIDs []int64 `json:"product_ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result := h.quality.ScoreProducts(c.Request.Context(), req.ProductIDs)
	c.JSON(http.StatusOK, result)
}

// GetProductScore handles GET /products/:id/score.
func (h *ScoreHandler) GetProductScore(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	result, err := h.quality.GetScore(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product has no score yet"})
			return
		}
		h.logger.Error("get score failed", zap.Int64("product_id", productID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load score"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"score": result})
}

// ListWorstScores handles GET /scores/worst.
func (h *ScoreHandler) ListWorstScores(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = parsed
	}

	results, err := h.quality.ListWorstScores(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("list worst scores failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load scores"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"scores": results})
}

func productIDParam(c *gin.Context) (int64, bool) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return 0, false
	}
	return productID, true
}
