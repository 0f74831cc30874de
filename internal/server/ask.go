package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitgenius/habitgenius/internal/models"
)

type askRequest struct {
	HabitID     *string `json:"habit_id"`
	Question    *string `json:"question"`
	ImageBase64 *string `json:"image_base64"`
}

func (s *Server) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := s.advisor.Ask(req.HabitID, req.Question, req.ImageBase64)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

func (s *Server) listMessages(c *gin.Context) {
	habitID := c.Query("habit_id")
	if habitID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "habit_id query parameter is required"})
		return
	}

	messages, err := s.store.GetMessagesForHabit(habitID)
	if err != nil {
		storeError(c, err)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}
	c.JSON(http.StatusOK, messages)
}
