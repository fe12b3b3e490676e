package delivery

import (
	"errors"
	"net/http"

	"hypotrophy-backend/internal/goal/usecase"

	"github.com/gin-gonic/gin"
)

// GoalHandler handles goal-related HTTP requests
type GoalHandler struct {
	goalUsecase usecase.GoalUsecase
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalUsecase usecase.GoalUsecase) *GoalHandler {
	return &GoalHandler{goalUsecase: goalUsecase}
}

// ProgressRequest sets a goal's progress percentage
type ProgressRequest struct {
	Progress *int `json:"progress" binding:"required"`
}

// GetGoals returns every goal
// GET /api/goals
func (h *GoalHandler) GetGoals(c *gin.Context) {
	goals, err := h.goalUsecase.ListGoals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"goals": goals,
		"total": len(goals),
	})
}

// GetGoalByID returns a specific goal
// GET /api/goals/:id
func (h *GoalHandler) GetGoalByID(c *gin.Context) {
	goal, err := h.goalUsecase.GetGoal(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// CreateGoal creates a goal
// POST /api/goals
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req usecase.CreateGoalInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goalUsecase.CreateGoal(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// UpdateGoal updates a goal
// PUT /api/goals/:id
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	var req usecase.GoalUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goalUsecase.UpdateGoal(c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// UpdateProgress sets a goal's progress
// PATCH /api/goals/:id/progress
func (h *GoalHandler) UpdateProgress(c *gin.Context) {
	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goalUsecase.UpdateProgress(c.Param("id"), *req.Progress)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// DeleteGoal deletes a goal
// DELETE /api/goals/:id
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	if err := h.goalUsecase.DeleteGoal(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
	case errors.Is(err, usecase.ErrInvalidGoal):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
