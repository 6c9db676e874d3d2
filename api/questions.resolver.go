package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"investingmenu/internal/repository"
)

type submitQuestionRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Question string `json:"question"`
}

func (m ApiHandler) submitQuestion(c *gin.Context) {
	var req submitQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		m.returnErrorJsonCode(fmt.Errorf("failed to parse request: %w", err), c, 400)
		return
	}
	if req.Question == "" {
		m.returnErrorJsonCode(fmt.Errorf("question is required"), c, 400)
		return
	}

	err := m.QuestionStore.Add(c.Request.Context(), repository.Question{
		Name:     req.Name,
		Email:    req.Email,
		Question: req.Question,
	})
	if err != nil {
		m.returnErrorJson(fmt.Errorf("failed to submit question: %w", err), c)
		return
	}

	c.JSON(200, gin.H{"message": "question submitted"})
}

func (m ApiHandler) listQuestions(c *gin.Context) {
	questions, err := m.QuestionStore.List(c.Request.Context())
	if err != nil {
		m.returnErrorJson(fmt.Errorf("failed to list questions: %w", err), c)
		return
	}
	c.JSON(200, questions)
}

type updateQuestionStatusRequest struct {
	Key    string `json:"key"`
	Status string `json:"status"`
}

func (m ApiHandler) updateQuestionStatus(c *gin.Context) {
	var req updateQuestionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		m.returnErrorJsonCode(fmt.Errorf("failed to parse request: %w", err), c, 400)
		return
	}
	if req.Key == "" || req.Status == "" {
		m.returnErrorJsonCode(fmt.Errorf("key and status are required"), c, 400)
		return
	}

	err := m.QuestionStore.UpdateStatus(c.Request.Context(), req.Key, req.Status)
	if err != nil {
		m.returnErrorJson(fmt.Errorf("failed to update question status: %w", err), c)
		return
	}
	c.JSON(200, gin.H{"message": "status updated"})
}
