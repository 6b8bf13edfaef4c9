package validation

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"tams-dashboard/internal/models"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ValidationError describes a single rejected field.
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", ve[0].Message)
}

// Quality flags requests that are accepted but carry missing context.
type Quality struct {
	Degraded bool     `json:"degraded"`
	Reasons  []string `json:"reasons,omitempty"`
}

type Validator struct {
	validate *validator.Validate
	logger   *zap.Logger
}

func NewValidator(logger *zap.Logger) *Validator {
	return &Validator{
		validate: validator.New(),
		logger:   logger,
	}
}

// ValidateAlert checks an alert before it is sent to the analysis service.
// Empty merchant or user id are tolerated and reported through Quality.
func (v *Validator) ValidateAlert(req *models.AlertRequest) (Quality, error) {
	if req == nil {
		return Quality{}, ValidationErrors{{Field: "request", Tag: "required", Message: "request body is required"}}
	}

	var errs ValidationErrors

	// validator's gte lets +Inf through
	if req.Amount != nil && (math.IsNaN(*req.Amount) || math.IsInf(*req.Amount, 0)) {
		errs = append(errs, ValidationError{Field: "amount", Tag: "finite", Message: "amount must be a finite number"})
	}

	if err := v.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return Quality{}, fmt.Errorf("failed to validate alert: %w", err)
		}
		for _, fe := range fieldErrs {
			if fe.Field() == "Amount" && len(errs) > 0 {
				continue
			}
			errs = append(errs, ValidationError{
				Field:   jsonFieldName(fe.Field()),
				Tag:     fe.Tag(),
				Message: errorMessage(fe),
			})
		}
	}

	if req.Timestamp != "" {
		if _, err := time.Parse(time.RFC3339, req.Timestamp); err != nil {
			errs = append(errs, ValidationError{Field: "timestamp", Tag: "rfc3339", Message: "timestamp must be an ISO-8601 date-time"})
		}
	}

	if len(errs) > 0 {
		v.logger.Debug("Alert rejected", zap.Int("errors", len(errs)), zap.String("first", errs[0].Message))
		return Quality{}, errs
	}

	var q Quality
	if strings.TrimSpace(req.Merchant) == "" {
		q.Reasons = append(q.Reasons, "merchant is empty")
	}
	if strings.TrimSpace(req.UserID) == "" {
		q.Reasons = append(q.Reasons, "user_id is empty")
	}
	q.Degraded = len(q.Reasons) > 0

	return q, nil
}

func jsonFieldName(field string) string {
	switch field {
	case "TransactionType":
		return "transaction_type"
	case "UserID":
		return "user_id"
	default:
		return strings.ToLower(field)
	}
}

func errorMessage(fe validator.FieldError) string {
	name := jsonFieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}
