package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Constraint messages shown to the user when a field fails its rule.
const (
	MessageNameConstraints            = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	MessagePhoneConstraints           = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	MessageEmailConstraints           = "Emails should be of the format local-part@domain"
	MessageAddressConstraints         = "Addresses can take any values, and it should not be blank"
	MessageTagConstraints             = "Tags names should be alphanumeric"
	MessageTitleConstraints           = "Titles should only contain alphanumeric characters, spaces and ( ) & / ' . -, and it should not be blank"
	MessageDateConstraints            = "Date should be in correct DD/MM/YYYY format."
	MessageTimeConstraints            = "Time should be in correct HHMM format."
	MessageDurationConstraints        = "Duration should be a positive number of minutes, at most 153722867."
	MessageInterviewStatusConstraints = "Interview status can only take the values: PENDING, COMPLETED"
	MessagePositionStatusConstraints  = "Position status can only take the values: OPEN, CLOSED"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"Name":       "Name",
	"Phone":      "Phone",
	"Email":      "Email",
	"Address":    "Address",
	"Tags":       "Tag",
	"Remark":     "Remark",
	"Positions":  "Position",
	"Title":      "Title",
	"Status":     "Status",
	"Position":   "Interview position",
	"Candidates": "Interview candidate",
	"Date":       "Date",
	"StartTime":  "Start time",
	"Duration":   "Duration",
}

var tagMessages = map[string]string{
	"valid_name":       MessageNameConstraints,
	"valid_phone":      MessagePhoneConstraints,
	"email":            MessageEmailConstraints,
	"not_blank":        MessageAddressConstraints,
	"valid_tag":        MessageTagConstraints,
	"valid_title":      MessageTitleConstraints,
	"hr_date":          MessageDateConstraints,
	"hr_time":          MessageTimeConstraints,
	"positive_minutes": MessageDurationConstraints,
	"interview_status": MessageInterviewStatusConstraints,
	"position_status":  MessagePositionStatusConstraints,
}

// Field pairs a validation rule with the message reported when a single
// value fails it.
type Field struct {
	Rule    string
	Message string
}

var (
	NameField            = Field{RuleName, MessageNameConstraints}
	PhoneField           = Field{RulePhone, MessagePhoneConstraints}
	EmailField           = Field{RuleEmail, MessageEmailConstraints}
	AddressField         = Field{RuleAddress, MessageAddressConstraints}
	TagField             = Field{RuleTag, MessageTagConstraints}
	TitleField           = Field{RuleTitle, MessageTitleConstraints}
	DateField            = Field{RuleDate, MessageDateConstraints}
	TimeField            = Field{RuleTime, MessageTimeConstraints}
	DurationField        = Field{RuleDuration, MessageDurationConstraints}
	InterviewStatusField = Field{RuleInterviewStatus, MessageInterviewStatusConstraints}
	PositionStatusField  = Field{RulePositionStatus, MessagePositionStatusConstraints}
)

// Check validates value against the field rule.
func (f Field) Check(v *validator.Validate, value any) error {
	if err := v.Var(value, f.Rule); err != nil {
		return errors.New(f.Message)
	}
	return nil
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	if msg, ok := tagMessages[e.Tag()]; ok {
		return prefixLabel(e.StructField(), msg)
	}

	label := getFieldLabel(e.StructField())
	switch e.Tag() {
	case "required":
		if label == "" {
			return "Value must not be blank"
		}
		return fmt.Sprintf("%s: must not be blank", label)
	case "min":
		return fmt.Sprintf("%s: must have at least %s value(s)", label, e.Param())
	case "dive":
		return fmt.Sprintf("%s: invalid entry", label)
	default:
		return fmt.Sprintf("%s: validation failed (%s)", label, e.Tag())
	}
}

// prefixLabel prefixes msg with the field label when the error came from a
// struct field. Single-value checks have no field name and return msg as is.
func prefixLabel(field, msg string) string {
	if field == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", getFieldLabel(field), msg)
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
