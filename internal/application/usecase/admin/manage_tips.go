package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
	domainerror "github.com/smart-finance/backend/internal/domain/error"
)

// CreateTipInput represents the input for tip creation.
type CreateTipInput struct {
	CreatedBy uuid.UUID
	Title     string
	Content   string
	Category  string
	Tags      []string
}

// CreateTipOutput represents the output of tip creation.
type CreateTipOutput struct {
	Tip *entity.Tip
}

// CreateTipUseCase handles tip creation logic.
type CreateTipUseCase struct {
	tipRepo adapter.TipRepository
}

// NewCreateTipUseCase creates a new CreateTipUseCase instance.
func NewCreateTipUseCase(tipRepo adapter.TipRepository) *CreateTipUseCase {
	return &CreateTipUseCase{
		tipRepo: tipRepo,
	}
}

// Execute performs the tip creation.
func (uc *CreateTipUseCase) Execute(ctx context.Context, input CreateTipInput) (*CreateTipOutput, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return nil, domainerror.ErrMissingTipFields
	}

	tip := entity.NewTip(input.CreatedBy, title, content, strings.TrimSpace(input.Category), input.Tags)

	if err := uc.tipRepo.Create(ctx, tip); err != nil {
		return nil, fmt.Errorf("failed to create tip: %w", err)
	}

	return &CreateTipOutput{Tip: tip}, nil
}

// ListTipsInput represents the input for tip listing.
type ListTipsInput struct {
	OnlyActive bool
}

// ListTipsOutput represents the output of tip listing.
type ListTipsOutput struct {
	Tips []*entity.Tip
}

// ListTipsUseCase handles tip listing logic.
type ListTipsUseCase struct {
	tipRepo adapter.TipRepository
}

// NewListTipsUseCase creates a new ListTipsUseCase instance.
func NewListTipsUseCase(tipRepo adapter.TipRepository) *ListTipsUseCase {
	return &ListTipsUseCase{
		tipRepo: tipRepo,
	}
}

// Execute retrieves tips, newest first.
func (uc *ListTipsUseCase) Execute(ctx context.Context, input ListTipsInput) (*ListTipsOutput, error) {
	tips, err := uc.tipRepo.List(ctx, input.OnlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list tips: %w", err)
	}

	return &ListTipsOutput{Tips: tips}, nil
}

// UpdateTipInput represents a partial tip update. Nil fields are unchanged.
type UpdateTipInput struct {
	TipID    uuid.UUID
	Title    *string
	Content  *string
	Category *string
	Tags     *[]string
	IsActive *bool
}

// UpdateTipOutput represents the output of a tip update.
type UpdateTipOutput struct {
	Tip *entity.Tip
}

// UpdateTipUseCase handles tip update logic.
type UpdateTipUseCase struct {
	tipRepo adapter.TipRepository
}

// NewUpdateTipUseCase creates a new UpdateTipUseCase instance.
func NewUpdateTipUseCase(tipRepo adapter.TipRepository) *UpdateTipUseCase {
	return &UpdateTipUseCase{
		tipRepo: tipRepo,
	}
}

// Execute applies the partial tip update.
func (uc *UpdateTipUseCase) Execute(ctx context.Context, input UpdateTipInput) (*UpdateTipOutput, error) {
	tip, err := uc.tipRepo.FindByID(ctx, input.TipID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerror.ErrMissingTipFields
		}
		tip.Title = title
	}
	if input.Content != nil {
		content := strings.TrimSpace(*input.Content)
		if content == "" {
			return nil, domainerror.ErrMissingTipFields
		}
		tip.Content = content
	}
	if input.Category != nil {
		tip.Category = strings.TrimSpace(*input.Category)
	}
	if input.Tags != nil {
		tip.Tags = *input.Tags
	}
	if input.IsActive != nil {
		tip.IsActive = *input.IsActive
	}

	tip.UpdatedAt = time.Now().UTC()

	if err := uc.tipRepo.Update(ctx, tip); err != nil {
		return nil, fmt.Errorf("failed to update tip: %w", err)
	}

	return &UpdateTipOutput{Tip: tip}, nil
}

// DeleteTipInput represents the input for tip deletion.
type DeleteTipInput struct {
	TipID uuid.UUID
}

// DeleteTipUseCase handles tip deletion logic.
type DeleteTipUseCase struct {
	tipRepo adapter.TipRepository
}

// NewDeleteTipUseCase creates a new DeleteTipUseCase instance.
func NewDeleteTipUseCase(tipRepo adapter.TipRepository) *DeleteTipUseCase {
	return &DeleteTipUseCase{
		tipRepo: tipRepo,
	}
}

// Execute removes the tip.
func (uc *DeleteTipUseCase) Execute(ctx context.Context, input DeleteTipInput) error {
	return uc.tipRepo.Delete(ctx, input.TipID)
}
