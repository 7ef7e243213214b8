package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// GoalHandler handles savings-goal requests.
type GoalHandler struct {
	goalService services.GoalServicer
	now         func() time.Time
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService, now: time.Now}
}

// CreateGoalRequest represents the request payload for creating a goal.
type CreateGoalRequest struct {
	Name         string    `json:"name" binding:"required,min=1,max=100"`
	TargetAmount int64     `json:"targetAmount" binding:"required,gt=0"`
	Deadline     time.Time `json:"deadline" binding:"required"`
}

// UpdateGoalRequest represents the partial request payload for updating a
// goal. The saved amount is never set directly; it only grows through
// contributions.
type UpdateGoalRequest struct {
	Name         *string    `json:"name" binding:"omitempty,min=1,max=100"`
	TargetAmount *int64     `json:"targetAmount" binding:"omitempty,gt=0"`
	Deadline     *time.Time `json:"deadline"`
}

// ContributeRequest represents the request payload for a goal contribution.
type ContributeRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// CreateGoal handles the creation of a new goal.
// @Summary     Create a goal
// @Description Create a new savings goal with nothing saved yet
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     201 {object} SuccessResponse "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.CreateGoal(req.Name, req.TargetAmount, req.Deadline)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, goal)
}

// GetGoals handles listing all goals.
// @Summary     Get goals
// @Description Get all savings goals sorted by deadline
// @Tags        goals
// @Produce     json
// @Success     200 {object} SuccessResponse "List of goals"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
	goals, err := h.goalService.ListGoals()
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, goals)
}

// UpdateGoal handles a partial update of a goal.
// @Summary     Update a goal
// @Description Apply a partial update to an existing goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id      path string            true "Goal ID"
// @Param       request body UpdateGoalRequest true "Fields to change"
// @Success     200 {object} SuccessResponse "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Param("id"), services.GoalPatch{
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Deadline:     req.Deadline,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, goal)
}

// DeleteGoal handles deleting a goal.
// @Summary     Delete a goal
// @Description Delete a goal by ID
// @Tags        goals
// @Produce     json
// @Param       id path string true "Goal ID"
// @Success     200 {object} SuccessResponse "Deleted"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	if err := h.goalService.DeleteGoal(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}

// Contribute handles a contribution towards a goal.
// @Summary     Contribute to a goal
// @Description Record a savings expense and add the amount to the goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id      path string            true "Goal ID"
// @Param       request body ContributeRequest true "Contribution amount"
// @Success     200 {object} SuccessResponse "Contribution receipt with transaction and goal"
// @Failure     400 {object} ErrorResponse "Invalid input or target exceeded"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id}/contribute [post]
func (h *GoalHandler) Contribute(c *gin.Context) {
	var req ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	receipt, err := h.goalService.Contribute(c.Param("id"), req.Amount, h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, receipt)
}
