package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"doctorkays/internal/models"
	"doctorkays/internal/services"
)

type QuestionHandler struct {
	questions services.QuestionService
}

func NewQuestionHandler(questions services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

// @Summary      Ask a question
// @Tags         Forum
// @Accept       json
// @Produce      json
// @Param        question  body      models.Question  true  "Question"
// @Success      201       {object}  models.Question
// @Failure      400       {object}  map[string]string
// @Router       /questions [post]
func (h *QuestionHandler) Create(c *gin.Context) {
	var q models.Question
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.questions.Create(&q); err != nil {
		log.Printf("[forum][create] failed user=%q: err=%v", q.User, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post question"})
		return
	}
	c.JSON(http.StatusCreated, q)
}

// @Summary      List questions
// @Tags         Forum
// @Produce      json
// @Success      200  {array}  models.Question
// @Router       /questions [get]
func (h *QuestionHandler) List(c *gin.Context) {
	list, err := h.questions.List()
	if err != nil {
		log.Printf("[forum][list] failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load questions"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Get a question
// @Tags         Forum
// @Produce      json
// @Param        id   path      int  true  "Question ID"
// @Success      200  {object}  models.Question
// @Failure      404  {object}  map[string]string
// @Router       /questions/{id} [get]
func (h *QuestionHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question id"})
		return
	}
	q, err := h.questions.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		log.Printf("[forum][get] failed id=%d: err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load question"})
		return
	}
	c.JSON(http.StatusOK, q)
}

type answerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// @Summary      Answer a question
// @Tags         Forum
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      int            true  "Question ID"
// @Param        answer  body      answerRequest  true  "Doctor's answer"
// @Success      200     {object}  models.Question
// @Failure      404     {object}  map[string]string
// @Router       /questions/{id}/answer [put]
func (h *QuestionHandler) Answer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question id"})
		return
	}
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	q, err := h.questions.Answer(id, req.Answer)
	if err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		log.Printf("[forum][answer] failed id=%d: err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save answer"})
		return
	}
	c.JSON(http.StatusOK, q)
}

type commentRequest struct {
	User    string `json:"user" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// @Summary      Comment on a question
// @Tags         Forum
// @Accept       json
// @Produce      json
// @Param        id       path      int             true  "Question ID"
// @Param        comment  body      commentRequest  true  "Comment"
// @Success      200      {object}  models.Question
// @Failure      404      {object}  map[string]string
// @Router       /questions/{id}/comments [post]
func (h *QuestionHandler) AddComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question id"})
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	q, err := h.questions.AddComment(id, req.User, req.Content)
	if err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		log.Printf("[forum][comment] failed id=%d: err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}
	c.JSON(http.StatusOK, q)
}

type reactionRequest struct {
	Reaction string `json:"reaction" binding:"required"`
}

// @Summary      React to a question
// @Description  Reaction is "like" or "dislike"
// @Tags         Forum
// @Accept       json
// @Produce      json
// @Param        id        path      int              true  "Question ID"
// @Param        reaction  body      reactionRequest  true  "Reaction"
// @Success      200       {object}  models.Question
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /questions/{id}/react [post]
func (h *QuestionHandler) React(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question id"})
		return
	}
	var req reactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	q, err := h.questions.React(id, req.Reaction)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, q)
	case errors.Is(err, services.ErrBadReaction):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reaction must be like or dislike"})
	case errors.Is(err, services.ErrQuestionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
	default:
		log.Printf("[forum][react] failed id=%d: err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reaction"})
	}
}
