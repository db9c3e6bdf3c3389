package validator

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"content-workflow/internal/domain"
)

const (
	// MaxInstructionLength bounds the free-text instruction of an item.
	MaxInstructionLength = 4000
	// MaxStyleSampleLength bounds the style sample passed to the generator.
	MaxStyleSampleLength = 8000
	// MaxKeywords bounds the keyword list of an item.
	MaxKeywords = 20
	// MaxVariantLength bounds one variant's text.
	MaxVariantLength = 3000
	// MaxSessionItems caps max_count for enqueue and session requests.
	MaxSessionItems = 100
)

// Validator provides validation methods for workflow inputs.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSource validates the fields an item is created from.
func (v *Validator) ValidateSource(s *domain.SourceFields) error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Instruction,
			validation.By(notBlankRule("instruction_required")),
			validation.RuneLength(0, MaxInstructionLength).Error("instruction_too_long"),
		),
		validation.Field(&s.StyleSample,
			validation.RuneLength(0, MaxStyleSampleLength).Error("style_sample_too_long"),
		),
		validation.Field(&s.Keywords,
			validation.Length(0, MaxKeywords).Error("too_many_keywords"),
			validation.Each(validation.By(notBlankRule("keyword_blank"))),
		),
	)
}

// ValidateDraft validates a generator answer before it is stored on an item.
func (v *Validator) ValidateDraft(d *domain.Draft) error {
	if d == nil {
		return fmt.Errorf("%w: no draft returned", domain.ErrInvalidDraft)
	}
	err := validation.ValidateStruct(d,
		validation.Field(&d.Variants,
			validation.Required.Error("variants_required"),
			validation.Length(1, domain.MaxVariants).Error(fmt.Sprintf("at_most_%d_variants", domain.MaxVariants)),
			validation.Each(
				validation.By(notBlankRule("variant_blank")),
				validation.RuneLength(0, MaxVariantLength).Error("variant_too_long"),
			),
		),
		validation.Field(&d.ImageDescriptions,
			validation.Length(0, domain.MaxImageCandidates).Error(fmt.Sprintf("at_most_%d_image_descriptions", domain.MaxImageCandidates)),
			validation.Each(validation.By(notBlankRule("image_description_blank"))),
		),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidDraft, err)
	}
	return nil
}

// ValidateMaxCount validates the max_count of an enqueue or session request.
func (v *Validator) ValidateMaxCount(maxCount int) error {
	return validation.Validate(maxCount,
		validation.Required.Error("max_count_required"),
		validation.Min(1).Error("max_count_too_small"),
		validation.Max(MaxSessionItems).Error("max_count_too_large"),
	)
}

// TransitionRequest is the decoded body of a review transition call.
type TransitionRequest struct {
	Event                string
	SelectedVariantIndex *int
	SelectedImageIndices []int
}

// ValidateTransitionRequest validates the shape of a review transition request.
// Whether the event is accepted in the item's current status is decided by the workflow.
func (v *Validator) ValidateTransitionRequest(r *TransitionRequest) error {
	event, _ := domain.ParseEvent(r.Event)
	approve := event == domain.EventApprove

	return validation.ValidateStruct(r,
		validation.Field(&r.Event,
			validation.Required.Error("event_required"),
			validation.By(eventRule),
		),
		validation.Field(&r.SelectedVariantIndex,
			validation.When(approve, validation.NotNil.Error("selected_variant_index_required")),
			validation.Min(0).Error("selected_variant_index_negative"),
			validation.Max(domain.MaxVariants-1).Error("selected_variant_index_out_of_range"),
		),
		validation.Field(&r.SelectedImageIndices,
			validation.When(approve, validation.Required.Error("selected_image_indices_required")),
			validation.Length(0, domain.MaxImageCandidates).Error(fmt.Sprintf("at_most_%d_images", domain.MaxImageCandidates)),
			validation.Each(
				validation.Min(0).Error("image_index_negative"),
				validation.Max(domain.MaxImageCandidates-1).Error("image_index_out_of_range"),
			),
		),
	)
}

// ValidateVariantText validates a manual variant edit.
func (v *Validator) ValidateVariantText(text string) error {
	return validation.Validate(text,
		validation.By(notBlankRule("text_required")),
		validation.RuneLength(0, MaxVariantLength).Error("text_too_long"),
	)
}

func eventRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	e, err := domain.ParseEvent(s)
	if err != nil {
		return validation.NewError("invalid_event", "unknown event")
	}
	if !domain.IsReviewEvent(e) {
		return validation.NewError("event_not_allowed", "event is not a review event")
	}
	return nil
}

// notBlankRule rejects strings that are empty after trimming.
func notBlankRule(code string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		if strings.TrimSpace(s) == "" {
			return validation.NewError(code, strings.ReplaceAll(code, "_", " "))
		}
		return nil
	}
}

// FieldErrors flattens ozzo validation errors into a field to reason map for API responses.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	out := make(map[string]string)
	var ve validation.Errors
	if errors.As(err, &ve) {
		for field, fieldErr := range ve {
			out[field] = fieldErr.Error()
		}
		return out
	}
	var e validation.Error
	if errors.As(err, &e) {
		out["value"] = e.Error()
		return out
	}
	out["unknown"] = err.Error()
	return out
}
