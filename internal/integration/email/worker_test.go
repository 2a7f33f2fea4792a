package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/domain/entity"
	"github.com/smart-finance/backend/internal/integration/email/templates"
)

// memQueue is an in-memory EmailQueueRepository for worker tests.
type memQueue struct {
	jobs map[uuid.UUID]*entity.EmailJob
}

func newMemQueue() *memQueue {
	return &memQueue{jobs: make(map[uuid.UUID]*entity.EmailJob)}
}

func (q *memQueue) Create(ctx context.Context, job *entity.EmailJob) error {
	copied := *job
	q.jobs[job.ID] = &copied
	return nil
}

func (q *memQueue) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	var pending []*entity.EmailJob
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending && !job.ScheduledAt.After(time.Now().UTC()) {
			copied := *job
			pending = append(pending, &copied)
			if len(pending) == limit {
				break
			}
		}
	}
	return pending, nil
}

func (q *memQueue) Update(ctx context.Context, job *entity.EmailJob) error {
	copied := *job
	q.jobs[job.ID] = &copied
	return nil
}

func (q *memQueue) CountByStatus(ctx context.Context) (map[entity.EmailStatus]int64, error) {
	counts := make(map[entity.EmailStatus]int64)
	for _, job := range q.jobs {
		counts[job.Status]++
	}
	return counts, nil
}

func (q *memQueue) GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	job, ok := q.jobs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	copied := *job
	return &copied, nil
}

func newTestWorker(t *testing.T, queue *memQueue, sender *MockEmailSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func queueDueJob(t *testing.T, queue *memQueue, templateType entity.EmailTemplateType, data map[string]interface{}) *entity.EmailJob {
	t.Helper()
	job := entity.NewEmailJob(templateType, "user@example.com", "Alex", "Test subject", data)
	job.ScheduledAt = time.Now().UTC().Add(-time.Minute)
	if err := queue.Create(context.Background(), job); err != nil {
		t.Fatalf("failed to queue job: %v", err)
	}
	return job
}

func TestWorkerSendsPendingJob(t *testing.T) {
	queue := newMemQueue()
	sender := NewMockEmailSender()
	worker := newTestWorker(t, queue, sender)

	job := queueDueJob(t, queue, entity.TemplateWelcome, map[string]interface{}{
		"user_name":     "Alex",
		"dashboard_url": "https://app.example.com/dashboard",
	})

	worker.ProcessNow(context.Background())

	if len(sender.SentEmails) != 1 {
		t.Fatalf("expected 1 sent email, got %d", len(sender.SentEmails))
	}
	if !strings.Contains(sender.SentEmails[0].HTML, "Alex") {
		t.Error("expected rendered HTML to contain the user name")
	}
	if !strings.Contains(sender.SentEmails[0].Text, "https://app.example.com/dashboard") {
		t.Error("expected rendered text to contain the dashboard link")
	}

	stored, err := queue.GetByID(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Status != entity.EmailStatusSent {
		t.Errorf("expected status sent, got %s", stored.Status)
	}
	if stored.ResendID == "" {
		t.Error("expected resend id to be recorded")
	}
}

func TestWorkerRendersBudgetAlert(t *testing.T) {
	queue := newMemQueue()
	sender := NewMockEmailSender()
	worker := newTestWorker(t, queue, sender)

	queueDueJob(t, queue, entity.TemplateBudgetAlert, map[string]interface{}{
		"user_name":     "Alex",
		"category_name": "Groceries",
		"spent_amount":  "480.00",
		"budget_amount": "600.00",
		"percentage":    "80",
		"budgets_url":   "https://app.example.com/budgets",
	})

	worker.ProcessNow(context.Background())

	if len(sender.SentEmails) != 1 {
		t.Fatalf("expected 1 sent email, got %d", len(sender.SentEmails))
	}
	html := sender.SentEmails[0].HTML
	for _, want := range []string{"Groceries", "80", "480.00", "600.00"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected HTML to contain %q", want)
		}
	}
}

func TestWorkerRetriesTransientFailure(t *testing.T) {
	queue := newMemQueue()
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("rate limited: 429"), false)
	worker := newTestWorker(t, queue, sender)

	job := queueDueJob(t, queue, entity.TemplateWelcome, map[string]interface{}{"user_name": "Alex"})

	worker.ProcessNow(context.Background())

	stored, err := queue.GetByID(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Status != entity.EmailStatusPending {
		t.Errorf("expected transient failure back in pending, got %s", stored.Status)
	}
	if stored.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", stored.Attempts)
	}
	if !stored.ScheduledAt.After(time.Now().UTC()) {
		t.Error("expected retry to be scheduled in the future")
	}
}

func TestWorkerMarksPermanentFailure(t *testing.T) {
	queue := newMemQueue()
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("validation error: 422"), true)
	worker := newTestWorker(t, queue, sender)

	job := queueDueJob(t, queue, entity.TemplateWelcome, map[string]interface{}{"user_name": "Alex"})

	worker.ProcessNow(context.Background())

	stored, err := queue.GetByID(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Status != entity.EmailStatusFailed {
		t.Errorf("expected permanent failure marked failed, got %s", stored.Status)
	}
	if stored.LastError == "" {
		t.Error("expected last error to be recorded")
	}
}

func TestWorkerRejectsUnknownTemplate(t *testing.T) {
	queue := newMemQueue()
	sender := NewMockEmailSender()
	worker := newTestWorker(t, queue, sender)

	job := queueDueJob(t, queue, entity.EmailTemplateType("bogus"), nil)

	worker.ProcessNow(context.Background())

	if len(sender.SentEmails) != 0 {
		t.Errorf("expected no emails sent, got %d", len(sender.SentEmails))
	}
	stored, err := queue.GetByID(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Status != entity.EmailStatusFailed {
		t.Errorf("expected unknown template marked failed, got %s", stored.Status)
	}
}
