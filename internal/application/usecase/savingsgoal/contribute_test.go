package savingsgoal

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
	domainerror "github.com/smart-finance/backend/internal/domain/error"
)

type stubGoalRepo struct {
	adapter.SavingsGoalRepository
	goal    *entity.SavingsGoal
	updated int
}

func (r *stubGoalRepo) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.SavingsGoal, error) {
	if r.goal == nil || r.goal.ID != id || r.goal.UserID != userID {
		return nil, domainerror.ErrGoalNotFound
	}
	return r.goal, nil
}

func (r *stubGoalRepo) Update(_ context.Context, goal *entity.SavingsGoal) error {
	r.goal = goal
	r.updated++
	return nil
}

type recordingNotifier struct {
	calls          int
	beforeProgress float64
}

func (n *recordingNotifier) GoalContributionRecorded(_ uuid.UUID, _ *entity.SavingsGoal, before float64) {
	n.calls++
	n.beforeProgress = before
}

func newGoal(target int64) *entity.SavingsGoal {
	return entity.NewSavingsGoal(
		uuid.New(),
		"Emergency Fund",
		"",
		decimal.NewFromInt(target),
		time.Now().UTC().AddDate(1, 0, 0),
		entity.GoalCategoryEmergencyFund,
		entity.GoalPriorityHigh,
		decimal.Zero,
		false,
		entity.ReminderNever,
	)
}

func TestContribute_RecordsAndNotifies(t *testing.T) {
	g := newGoal(1000)
	g.CurrentAmount = decimal.NewFromInt(200) // 20%
	repo := &stubGoalRepo{goal: g}
	notifier := &recordingNotifier{}

	uc := NewContributeUseCase(repo, notifier)
	out, err := uc.Execute(context.Background(), ContributeInput{
		UserID: g.UserID,
		GoalID: g.ID,
		Amount: decimal.NewFromInt(350), // 55%
		Note:   "bonus",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Goal.CurrentAmount.Equal(decimal.NewFromInt(550)) {
		t.Errorf("expected current amount 550, got %s", out.Goal.CurrentAmount)
	}
	if len(out.Goal.Contributions) != 1 {
		t.Fatalf("expected 1 recorded contribution, got %d", len(out.Goal.Contributions))
	}
	if out.Goal.Contributions[0].Note != "bonus" {
		t.Errorf("expected contribution note kept, got %q", out.Goal.Contributions[0].Note)
	}
	if !reflect.DeepEqual(out.MilestonesCrossed, []int{25, 50}) {
		t.Errorf("expected milestones [25 50], got %v", out.MilestonesCrossed)
	}
	if repo.updated != 1 {
		t.Errorf("expected a single persist, got %d", repo.updated)
	}
	if notifier.calls != 1 {
		t.Fatalf("expected one notifier call, got %d", notifier.calls)
	}
	if notifier.beforeProgress != 20 {
		t.Errorf("expected pre-contribution progress 20, got %f", notifier.beforeProgress)
	}
}

func TestContribute_CompletesGoal(t *testing.T) {
	g := newGoal(1000)
	g.CurrentAmount = decimal.NewFromInt(900)
	repo := &stubGoalRepo{goal: g}

	uc := NewContributeUseCase(repo, nil)
	out, err := uc.Execute(context.Background(), ContributeInput{
		UserID: g.UserID,
		GoalID: g.ID,
		Amount: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Goal.IsCompleted {
		t.Error("expected goal marked completed at 100%")
	}
	if out.ProgressPercentage != 100 {
		t.Errorf("expected progress 100, got %f", out.ProgressPercentage)
	}
	if !reflect.DeepEqual(out.MilestonesCrossed, []int{100}) {
		t.Errorf("expected milestone [100], got %v", out.MilestonesCrossed)
	}
}

func TestContribute_RejectsNonPositiveAmount(t *testing.T) {
	g := newGoal(1000)
	repo := &stubGoalRepo{goal: g}
	uc := NewContributeUseCase(repo, nil)

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := uc.Execute(context.Background(), ContributeInput{
			UserID: g.UserID,
			GoalID: g.ID,
			Amount: amount,
		})
		if err == nil {
			t.Fatalf("expected error for amount %s", amount)
		}
	}
	if repo.updated != 0 {
		t.Errorf("expected no persist on rejected contribution, got %d", repo.updated)
	}
}

func TestContribute_UnknownGoal(t *testing.T) {
	repo := &stubGoalRepo{}
	uc := NewContributeUseCase(repo, nil)

	_, err := uc.Execute(context.Background(), ContributeInput{
		UserID: uuid.New(),
		GoalID: uuid.New(),
		Amount: decimal.NewFromInt(10),
	})
	if err == nil {
		t.Fatal("expected an error for an unknown goal")
	}
}

func TestMilestonesCrossed(t *testing.T) {
	tests := []struct {
		name   string
		before float64
		after  float64
		want   []int
	}{
		{"no movement", 30, 30, nil},
		{"single milestone", 20, 30, []int{25}},
		{"lands exactly on milestone", 40, 50, []int{50}},
		{"multiple at once", 10, 80, []int{25, 50, 75}},
		{"overshoot past 100", 90, 130, []int{100}},
		{"already past stays silent", 60, 70, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MilestonesCrossed(tt.before, tt.after)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MilestonesCrossed(%f, %f) = %v, want %v", tt.before, tt.after, got, tt.want)
			}
		})
	}
}
