// Package chat contains the AI financial advisor use case.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
)

// Response sources.
const (
	SourceGemini   = "gemini"   // answered by the AI backend
	SourceMock     = "mock"     // AI backend not configured
	SourceFallback = "fallback" // AI backend errored, canned answer served
)

// AskInput represents the input for an advisor question.
type AskInput struct {
	UserID  uuid.UUID
	Message string
}

// AskOutput represents the advisor's answer.
type AskOutput struct {
	Response    string
	Suggestions []string
	Source      string
}

// AskUseCase answers financial questions with the user's own numbers as
// context, via the AI backend when available.
type AskUseCase struct {
	transactionRepo adapter.TransactionRepository
	aiService       adapter.AIAdvisorService
	logger          *slog.Logger
	now             func() time.Time
}

// NewAskUseCase creates a new AskUseCase instance.
func NewAskUseCase(
	transactionRepo adapter.TransactionRepository,
	aiService adapter.AIAdvisorService,
	logger *slog.Logger,
) *AskUseCase {
	return &AskUseCase{
		transactionRepo: transactionRepo,
		aiService:       aiService,
		logger:          logger,
		now:             time.Now,
	}
}

// WithClock overrides the use case's clock. Intended for tests.
func (uc *AskUseCase) WithClock(now func() time.Time) *AskUseCase {
	uc.now = now
	return uc
}

// Execute answers the question. Context-building failures degrade to an
// answer without personal figures rather than failing the request; an AI
// backend failure degrades to the canned fallback response.
func (uc *AskUseCase) Execute(ctx context.Context, input AskInput) (*AskOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}

	finContext := uc.buildFinancialContext(ctx, input.UserID)
	suggestions := SuggestionsFor(message)

	if !uc.aiService.IsAvailable() {
		return &AskOutput{
			Response:    MockResponse(message, finContext),
			Suggestions: suggestions,
			Source:      SourceMock,
		}, nil
	}

	prompt := RenderPrompt(message, finContext)
	answer, err := uc.aiService.GenerateAdvice(ctx, prompt)
	if err != nil {
		uc.logger.Error("AI advisor call failed, serving fallback", "error", err, "user_id", input.UserID)
		return &AskOutput{
			Response:    fallbackResponse,
			Suggestions: suggestions,
			Source:      SourceFallback,
		}, nil
	}

	return &AskOutput{
		Response:    answer,
		Suggestions: suggestions,
		Source:      SourceGemini,
	}, nil
}

// FinancialContext is the snapshot of the user's numbers included in the
// advisor prompt.
type FinancialContext struct {
	Totals        *entity.TransactionTotals
	TopCategories []entity.CategorySpending
	Recent        []*entity.Transaction
}

func (uc *AskUseCase) buildFinancialContext(ctx context.Context, userID uuid.UUID) *FinancialContext {
	fc := &FinancialContext{}
	since := uc.now().UTC().AddDate(0, -1, 0)

	totals, err := uc.transactionRepo.GetTotals(ctx, userID, &since)
	if err != nil {
		uc.logger.Warn("advisor context: totals unavailable", "error", err, "user_id", userID)
	} else {
		fc.Totals = totals
	}

	categories, err := uc.transactionRepo.GetCategorySpending(ctx, userID, entity.TransactionTypeExpense, &since)
	if err != nil {
		uc.logger.Warn("advisor context: categories unavailable", "error", err, "user_id", userID)
	} else {
		if len(categories) > 5 {
			categories = categories[:5]
		}
		fc.TopCategories = categories
	}

	recent, err := uc.transactionRepo.FindRecent(ctx, userID, 5)
	if err != nil {
		uc.logger.Warn("advisor context: recent transactions unavailable", "error", err, "user_id", userID)
	} else {
		fc.Recent = recent
	}

	return fc
}

// RenderPrompt builds the advisor prompt from the question and the user's
// financial context.
func RenderPrompt(message string, fc *FinancialContext) string {
	var b strings.Builder

	b.WriteString("You are a pragmatic personal finance advisor. ")
	b.WriteString("Answer concisely with actionable steps based on the user's data below.\n\n")

	if fc.Totals != nil {
		fmt.Fprintf(&b, "Last 30 days: income %s, expenses %s, net %s.\n",
			fc.Totals.IncomeTotal.StringFixed(2),
			fc.Totals.ExpenseTotal.StringFixed(2),
			fc.Totals.NetTotal.StringFixed(2))
	}

	if len(fc.TopCategories) > 0 {
		b.WriteString("Top spending categories: ")
		for i, c := range fc.TopCategories {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s (%s)", c.Category, c.Total.StringFixed(2))
		}
		b.WriteString(".\n")
	}

	if len(fc.Recent) > 0 {
		b.WriteString("Recent transactions:\n")
		for _, tx := range fc.Recent {
			fmt.Fprintf(&b, "- %s %s in %s on %s\n",
				tx.Type, tx.Amount.StringFixed(2), tx.Category, tx.Date.Format("2006-01-02"))
		}
	}

	b.WriteString("\nQuestion: ")
	b.WriteString(message)
	return b.String()
}

const fallbackResponse = "I could not reach the advisor service right now. " +
	"As a general rule: keep essential spending under 50% of income, save at " +
	"least 20%, and review your largest expense category for quick wins."

// MockResponse is served when no AI backend is configured. It is deterministic
// and keyed off the question so the endpoint stays usable in development.
func MockResponse(message string, fc *FinancialContext) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "save") || strings.Contains(lower, "saving"):
		if fc.Totals != nil && fc.Totals.NetTotal.IsPositive() {
			return fmt.Sprintf("You had %s left over in the last 30 days. Moving even half of that into savings each month adds up quickly.",
				fc.Totals.NetTotal.StringFixed(2))
		}
		return "Start with a small automatic transfer on payday. Saving before spending beats saving what is left."
	case strings.Contains(lower, "budget"):
		if len(fc.TopCategories) > 0 {
			return fmt.Sprintf("Your biggest spending category recently was %s. Set a budget for it first; that is where a cap changes the most.",
				fc.TopCategories[0].Category)
		}
		return "Create a monthly budget with category limits, then sync it against your transactions weekly."
	case strings.Contains(lower, "debt") || strings.Contains(lower, "loan"):
		return "List debts by interest rate and pay minimums on all but the most expensive one. Extra payments go there first."
	case strings.Contains(lower, "invest"):
		return "Before investing, hold one month of expenses in cash and clear any high-interest debt. Then automate a fixed monthly amount."
	default:
		return "Track every expense for a month, set category budgets, and automate savings. Ask me about saving, budgeting, debt or investing for specifics."
	}
}

// SuggestionsFor returns follow-up prompts keyed off the question's topic.
func SuggestionsFor(message string) []string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "save") || strings.Contains(lower, "saving"):
		return []string{
			"How much should I keep in an emergency fund?",
			"How do I automate my savings?",
			"What savings goal should I set first?",
		}
	case strings.Contains(lower, "budget"):
		return []string{
			"Which category should I cap first?",
			"How do I handle irregular expenses in a budget?",
			"Is the 50/30/20 rule right for me?",
		}
	case strings.Contains(lower, "debt") || strings.Contains(lower, "loan"):
		return []string{
			"Should I pay off debt or save first?",
			"What is the avalanche method?",
			"How do I negotiate a lower interest rate?",
		}
	case strings.Contains(lower, "invest"):
		return []string{
			"How much should I invest each month?",
			"What should I do before I start investing?",
			"How risky should my portfolio be?",
		}
	default:
		return []string{
			"How can I save more each month?",
			"Help me set up a budget",
			"Should I pay off debt or invest?",
		}
	}
}
