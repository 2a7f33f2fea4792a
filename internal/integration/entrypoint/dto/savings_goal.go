package dto

import (
	"time"

	"github.com/smart-finance/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for savings goal creation.
type CreateGoalRequest struct {
	Title               string  `json:"title" binding:"required,min=1,max=100"`
	Description         string  `json:"description,omitempty" binding:"omitempty,max=500"`
	TargetAmount        float64 `json:"target_amount" binding:"required,gt=0"`
	TargetDate          string  `json:"target_date" binding:"required"`
	Category            string  `json:"category" binding:"required,oneof=emergency-fund vacation home-purchase vehicle education wedding retirement investment debt-payoff other"`
	Priority            string  `json:"priority,omitempty" binding:"omitempty,oneof=low medium high critical"`
	MonthlyContribution float64 `json:"monthly_contribution,omitempty" binding:"omitempty,gte=0"`
	AutoContribute      bool    `json:"auto_contribute,omitempty"`
	ReminderFrequency   string  `json:"reminder_frequency,omitempty" binding:"omitempty,oneof=daily weekly monthly never"`
}

// UpdateGoalRequest represents the request body for savings goal update.
type UpdateGoalRequest struct {
	Title               *string  `json:"title,omitempty" binding:"omitempty,min=1,max=100"`
	Description         *string  `json:"description,omitempty" binding:"omitempty,max=500"`
	TargetAmount        *float64 `json:"target_amount,omitempty" binding:"omitempty,gt=0"`
	TargetDate          *string  `json:"target_date,omitempty"`
	Category            *string  `json:"category,omitempty" binding:"omitempty,oneof=emergency-fund vacation home-purchase vehicle education wedding retirement investment debt-payoff other"`
	Priority            *string  `json:"priority,omitempty" binding:"omitempty,oneof=low medium high critical"`
	MonthlyContribution *float64 `json:"monthly_contribution,omitempty" binding:"omitempty,gte=0"`
	AutoContribute      *bool    `json:"auto_contribute,omitempty"`
	ReminderFrequency   *string  `json:"reminder_frequency,omitempty" binding:"omitempty,oneof=daily weekly monthly never"`
}

// ContributeRequest represents the request body for a goal contribution.
type ContributeRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Note   string  `json:"note,omitempty" binding:"omitempty,max=255"`
}

// ContributionResponse represents one recorded contribution in API responses.
type ContributionResponse struct {
	Amount string    `json:"amount"`
	Date   time.Time `json:"date"`
	Note   string    `json:"note,omitempty"`
}

// GoalResponse represents a savings goal in API responses.
type GoalResponse struct {
	ID                  string                 `json:"id"`
	UserID              string                 `json:"user_id"`
	Title               string                 `json:"title"`
	Description         string                 `json:"description"`
	TargetAmount        string                 `json:"target_amount"`
	CurrentAmount       string                 `json:"current_amount"`
	TargetDate          string                 `json:"target_date"`
	Category            string                 `json:"category"`
	Priority            string                 `json:"priority"`
	IsCompleted         bool                   `json:"is_completed"`
	MonthlyContribution string                 `json:"monthly_contribution"`
	AutoContribute      bool                   `json:"auto_contribute"`
	Contributions       []ContributionResponse `json:"contributions"`
	ReminderFrequency   string                 `json:"reminder_frequency"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

// GoalDetailResponse represents a goal together with its derived progress figures.
type GoalDetailResponse struct {
	Goal               GoalResponse `json:"goal"`
	ProgressPercentage float64      `json:"progress_percentage"`
	RemainingAmount    string       `json:"remaining_amount"`
	DaysRemaining      int          `json:"days_remaining"`
	RequiredMonthly    string       `json:"required_monthly"`
}

// ContributeResponse represents the response body for a goal contribution.
type ContributeResponse struct {
	Goal               GoalResponse `json:"goal"`
	ProgressPercentage float64      `json:"progress_percentage"`
	MilestonesCrossed  []int        `json:"milestones_crossed"`
}

// GoalListResponse represents the response body for goal listing.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// GoalStatsResponse represents aggregate goal statistics in API responses.
type GoalStatsResponse struct {
	TotalGoals           int     `json:"total_goals"`
	CompletedGoals       int     `json:"completed_goals"`
	ActiveGoals          int     `json:"active_goals"`
	TotalTargetAmount    string  `json:"total_target_amount"`
	TotalCurrentAmount   string  `json:"total_current_amount"`
	TotalRemainingAmount string  `json:"total_remaining_amount"`
	OverallProgress      float64 `json:"overall_progress"`
}

// GoalResponseFromEntity converts a savings goal entity to its API representation.
func GoalResponseFromEntity(g *entity.SavingsGoal) GoalResponse {
	contributions := make([]ContributionResponse, len(g.Contributions))
	for i, c := range g.Contributions {
		contributions[i] = ContributionResponse{
			Amount: c.Amount.String(),
			Date:   c.Date,
			Note:   c.Note,
		}
	}

	return GoalResponse{
		ID:                  g.ID.String(),
		UserID:              g.UserID.String(),
		Title:               g.Title,
		Description:         g.Description,
		TargetAmount:        g.TargetAmount.String(),
		CurrentAmount:       g.CurrentAmount.String(),
		TargetDate:          g.TargetDate.Format("2006-01-02"),
		Category:            string(g.Category),
		Priority:            string(g.Priority),
		IsCompleted:         g.IsCompleted,
		MonthlyContribution: g.MonthlyContribution.String(),
		AutoContribute:      g.AutoContribute,
		Contributions:       contributions,
		ReminderFrequency:   string(g.ReminderFrequency),
		CreatedAt:           g.CreatedAt,
		UpdatedAt:           g.UpdatedAt,
	}
}

// GoalStatsResponseFromEntity converts goal statistics to their API representation.
func GoalStatsResponseFromEntity(s *entity.SavingsGoalStats) GoalStatsResponse {
	return GoalStatsResponse{
		TotalGoals:           s.TotalGoals,
		CompletedGoals:       s.CompletedGoals,
		ActiveGoals:          s.ActiveGoals,
		TotalTargetAmount:    s.TotalTargetAmount.String(),
		TotalCurrentAmount:   s.TotalCurrentAmount.String(),
		TotalRemainingAmount: s.TotalRemainingAmount.String(),
		OverallProgress:      s.OverallProgress,
	}
}
