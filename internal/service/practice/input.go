package practice

import (
	"fmt"

	"github.com/heartmarshall/artikel-backend/internal/domain"
)

// StartSessionInput holds the user's session configuration. Zero values are
// replaced by the configured defaults before validation.
type StartSessionInput struct {
	QuestionCount      int
	SecondsPerQuestion int
}

func (i *StartSessionInput) applyDefaults(l Limits) {
	if i.QuestionCount == 0 {
		i.QuestionCount = l.DefaultQuestionCount
	}
	if i.SecondsPerQuestion == 0 {
		i.SecondsPerQuestion = l.DefaultSecondsPerQuestion
	}
}

// Validate checks all fields against l and collects all errors.
func (i *StartSessionInput) Validate(l Limits) error {
	var errs []domain.FieldError

	if i.QuestionCount < 1 || i.QuestionCount > l.MaxQuestionCount {
		errs = append(errs, domain.FieldError{
			Field:   "question_count",
			Message: fmt.Sprintf("must be between 1 and %d", l.MaxQuestionCount),
		})
	}
	if i.SecondsPerQuestion < 1 || i.SecondsPerQuestion > l.MaxSecondsPerQuestion {
		errs = append(errs, domain.FieldError{
			Field:   "seconds_per_question",
			Message: fmt.Sprintf("must be between 1 and %d", l.MaxSecondsPerQuestion),
		})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SubmitAnswerInput holds the article the user picked and the position of
// the question it answers. An answer for any question other than the open
// one is rejected, never carried over to the next question.
type SubmitAnswerInput struct {
	Position int
	Article  string
}

// Validate parses the article and collects all errors.
func (i *SubmitAnswerInput) Validate() (domain.Article, error) {
	var errs []domain.FieldError

	if i.Position < 0 {
		errs = append(errs, domain.FieldError{Field: "position", Message: "must be non-negative"})
	}
	a, ok := domain.ParseArticle(i.Article)
	if !ok {
		errs = append(errs, domain.FieldError{Field: "article", Message: "must be der, die, or das"})
	}

	if len(errs) > 0 {
		return "", domain.NewValidationErrors(errs)
	}
	return a, nil
}
