package validation

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Layouts for the date and time formats accepted on the command line and in
// the persisted documents.
const (
	DateLayout = "02/01/2006"
	TimeLayout = "1504"
)

// MaxDurationMinutes is the longest interview a time.Duration can hold.
const MaxDurationMinutes = math.MaxInt64 / int64(time.Minute)

// Field rules. The parser and the JSON storage both validate through these
// so a value that can be typed in can always be loaded back.
const (
	RuleName            = "required,valid_name"
	RulePhone           = "required,valid_phone"
	RuleEmail           = "required,email"
	RuleAddress         = "required,not_blank"
	RuleTag             = "required,valid_tag"
	RuleTitle           = "required,valid_title"
	RuleDate            = "required,hr_date"
	RuleTime            = "required,hr_time"
	RuleDuration        = "required,positive_minutes"
	RuleInterviewStatus = "interview_status"
	RulePositionStatus  = "position_status"
)

// Regex patterns
var (
	// Letters and digits separated by spaces, must not start with a space
	nameRegex = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)

	// Digits only, at least 3 of them
	phoneRegex = regexp.MustCompile(`^[0-9]{3,}$`)

	// Single alphanumeric word
	tagRegex = regexp.MustCompile(`^[\p{L}\p{N}]+$`)

	// Job titles allow common punctuation: ( ) & / ' . -
	titleRegex = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ()&/'.-]*$`)

	dateRegex = regexp.MustCompile(`^[0-9]{2}/[0-9]{2}/[0-9]{4}$`)
	timeRegex = regexp.MustCompile(`^[0-9]{4}$`)
)

// New returns a validator with the HR manager's custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("valid_tag", ValidTag)
	_ = v.RegisterValidation("valid_title", ValidTitle)
	_ = v.RegisterValidation("not_blank", NotBlank)
	_ = v.RegisterValidation("hr_date", ValidDate)
	_ = v.RegisterValidation("hr_time", ValidTime)
	_ = v.RegisterValidation("positive_minutes", PositiveMinutes)
	_ = v.RegisterValidation("interview_status", InterviewStatus)
	_ = v.RegisterValidation("position_status", PositionStatus)
}

func ValidName(fl validator.FieldLevel) bool {
	return nameRegex.MatchString(fl.Field().String())
}

func ValidPhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func ValidTag(fl validator.FieldLevel) bool {
	return tagRegex.MatchString(fl.Field().String())
}

func ValidTitle(fl validator.FieldLevel) bool {
	return titleRegex.MatchString(fl.Field().String())
}

// NotBlank rejects values made only of whitespace and values with leading whitespace.
func NotBlank(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	return strings.TrimSpace(val) != "" && strings.TrimLeft(val, " \t") == val
}

// ValidDate accepts a real calendar date in DD/MM/YYYY form.
func ValidDate(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if !dateRegex.MatchString(val) {
		return false
	}
	_, err := time.Parse(DateLayout, val)
	return err == nil
}

// ValidTime accepts a 24-hour HHMM time.
func ValidTime(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if !timeRegex.MatchString(val) {
		return false
	}
	_, err := time.Parse(TimeLayout, val)
	return err == nil
}

// PositiveMinutes accepts a whole number of minutes between 1 and
// MaxDurationMinutes, either as a number or as its decimal string.
func PositiveMinutes(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		n, err := strconv.ParseInt(field.String(), 10, 64)
		return err == nil && n > 0 && n <= MaxDurationMinutes
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := field.Int()
		return n > 0 && n <= MaxDurationMinutes
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := field.Uint()
		return n > 0 && n <= uint64(MaxDurationMinutes)
	default:
		return false
	}
}

// InterviewStatus accepts PENDING, COMPLETED, or empty (meaning PENDING).
func InterviewStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "PENDING", "COMPLETED":
		return true
	}
	return false
}

// PositionStatus accepts OPEN, CLOSED, or empty (meaning OPEN).
func PositionStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "OPEN", "CLOSED":
		return true
	}
	return false
}
