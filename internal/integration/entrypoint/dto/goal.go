package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/financas-pro/backend/internal/domain/entity"
)

// GoalRequest represents the request body for creating or updating a goal.
type GoalRequest struct {
	Name          string          `json:"name" binding:"required,min=1,max=100"`
	TargetAmount  decimal.Decimal `json:"target_amount" binding:"required"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetDate    time.Time       `json:"target_date" binding:"required"`
}

// AddProgressRequest represents the request body for adding progress to a goal.
type AddProgressRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// GoalResponse represents a goal in API responses. CurrentAmount is the
// unclamped stored value; DisplayAmount is capped at the target.
type GoalResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	DisplayAmount decimal.Decimal `json:"display_amount"`
	TargetDate    time.Time       `json:"target_date"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// GoalListResponse represents the list of goals in API responses.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
	Total int            `json:"total"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(goal *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:            goal.ID.String(),
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		DisplayAmount: goal.DisplayAmount(),
		TargetDate:    goal.TargetDate,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}

// ToGoalListResponse converts a list of goals to the list response DTO.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	items := make([]GoalResponse, 0, len(goals))
	for _, goal := range goals {
		items = append(items, ToGoalResponse(goal))
	}
	return GoalListResponse{
		Goals: items,
		Total: len(items),
	}
}
