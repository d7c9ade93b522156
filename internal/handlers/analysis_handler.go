package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"doctorkays/internal/models"
	"doctorkays/internal/services"
)

type AnalysisHandler struct {
	analysis services.AnalysisService
}

func NewAnalysisHandler(analysis services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis}
}

// @Summary      Analyze a medical report
// @Description  Downloads the referenced report file and returns a structured AI analysis
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        request  body      models.AnalysisRequest  true  "Report reference and patient story"
// @Success      200      {object}  models.AnalysisResult
// @Failure      400      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /ai-analysis [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.analysis.Analyze(c.Request.Context(), &req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, result)
	case errors.Is(err, services.ErrAnalysisMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
	default:
		log.Printf("[ai][analysis] failed user=%q: err=%v", req.UserName, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI analysis failed"})
	}
}
