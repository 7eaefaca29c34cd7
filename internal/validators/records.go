package validators

import (
	"context"

	"github.com/MKhiriev/go-budget-sync/models"
)

// Field name constants used to specify which fields should be validated.
// They are passed to Validate to restrict validation to a subset of fields
// (field-level scoping).
const (
	// FieldID targets the client-generated unique identifier of a record.
	FieldID = "id"

	// FieldName targets the display name of a budget.
	FieldName = "name"

	// FieldGoal targets the target amount of a budget.
	FieldGoal = "goal"

	// FieldAmountSpent targets the spent total of a budget, which must stay
	// within the goal.
	FieldAmountSpent = "amount_spent"

	// FieldBudgetName targets the budget reference of a transaction.
	FieldBudgetName = "budget_name"

	// FieldAmount targets the amount of a transaction.
	FieldAmount = "amount"

	// FieldMessage targets the text of a notification.
	FieldMessage = "message"

	// FieldLogin targets the login of a user credential pair.
	FieldLogin = "login"

	// FieldPassword targets the plaintext password of a user credential pair.
	FieldPassword = "password"
)

// RecordValidator implements the Validator interface for the budgeting
// domain models: Budget, Transaction, Notification, and User. Both value and
// pointer forms are accepted, and optional field-level scoping is supported
// via variadic field name arguments.
type RecordValidator struct {
}

// NewRecordValidator constructs a new RecordValidator
// and returns it as the Validator interface.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Supported types:
//   - models.Budget / *models.Budget
//   - models.Transaction / *models.Transaction
//   - models.Notification / *models.Notification
//   - models.User / *models.User
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Budget:
		return v.validateBudget(ctx, value, fields...)
	case *models.Budget:
		return v.validateBudget(ctx, *value, fields...)

	case models.Transaction:
		return v.validateTransaction(ctx, value, fields...)
	case *models.Transaction:
		return v.validateTransaction(ctx, *value, fields...)

	case models.Notification:
		return v.validateNotification(ctx, value, fields...)
	case *models.Notification:
		return v.validateNotification(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateBudget(_ context.Context, b models.Budget, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldGoal, FieldAmountSpent}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if b.ID == "" {
				return ErrInvalidID
			}
		case FieldName:
			if b.Name == "" {
				return ErrEmptyName
			}
		case FieldGoal:
			if b.Goal <= 0 {
				return ErrInvalidGoal
			}
		case FieldAmountSpent:
			if b.AmountSpent < 0 {
				return ErrInvalidAmount
			}
			if b.AmountSpent > b.Goal {
				return ErrAmountExceedsGoal
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RecordValidator) validateTransaction(_ context.Context, t models.Transaction, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBudgetName, FieldAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if t.ID == "" {
				return ErrInvalidID
			}
		case FieldBudgetName:
			if t.BudgetName == "" {
				return ErrEmptyBudgetName
			}
		case FieldAmount:
			if t.Amount <= 0 {
				return ErrInvalidAmount
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RecordValidator) validateNotification(_ context.Context, n models.Notification, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if n.ID == "" {
				return ErrInvalidID
			}
		case FieldMessage:
			if n.Message == "" {
				return ErrEmptyMessage
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RecordValidator) validateUser(_ context.Context, u models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if u.Login == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if u.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}
