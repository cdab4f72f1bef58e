package risk

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FeaturesInput is the boundary form of Features as it arrives in a request
// body. Pointer fields let validation tell a missing value apart from a zero.
type FeaturesInput struct {
	PHQ9              *float64 `json:"phq9" validate:"required,gte=0,lte=27"`
	GAD7              *float64 `json:"gad7" validate:"required,gte=0,lte=21"`
	GHQ12             *float64 `json:"ghq12" validate:"required,gte=0,lte=12"`
	AvgMood7Days      *float64 `json:"avgMood7Days" validate:"required,gte=1,lte=5"`
	MoodTrend         *string  `json:"moodTrend" validate:"required,oneof=improving stable declining"`
	NegativeChatRatio *float64 `json:"negativeChatRatio" validate:"required,gte=0,lte=1"`
	QuizRiskScore     *float64 `json:"quizRiskScore" validate:"required,gte=0,lte=1"`
}

// Issue is one itemized validation failure.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError carries every issue found in a FeaturesInput.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		parts[i] = is.Path + ": " + is.Message
	}
	return "invalid features: " + strings.Join(parts, "; ")
}

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Features validates the input and returns the checked Features. A failure is
// always a *ValidationError listing every offending field.
func (in FeaturesInput) Features() (Features, error) {
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Features{}, fmt.Errorf("risk: validate features: %w", err)
		}
		issues := make([]Issue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, Issue{Path: fe.Field(), Message: issueMessage(fe)})
		}
		return Features{}, &ValidationError{Issues: issues}
	}

	return Features{
		PHQ9:              *in.PHQ9,
		GAD7:              *in.GAD7,
		GHQ12:             *in.GHQ12,
		AvgMood7Days:      *in.AvgMood7Days,
		MoodTrend:         MoodTrend(*in.MoodTrend),
		NegativeChatRatio: *in.NegativeChatRatio,
		QuizRiskScore:     *in.QuizRiskScore,
	}, nil
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "failed " + fe.Tag() + " check"
	}
}
