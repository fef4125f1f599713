package validator

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
)

const MaxAnswerLength = 2000

// AnswerError explains why an answer was rejected. Message is user-facing.
type AnswerError struct {
	Field   string
	Message string
}

func (e *AnswerError) Error() string {
	return fmt.Sprintf("invalid answer for %s: %s", e.Field, e.Message)
}

// ValidateAnswer checks raw input against the field's answer kind and returns
// the normalized value to store.
//
// Single-choice fields accept either the choice text or its 1-based number.
func ValidateAnswer(field models.QuestionnaireField, raw string) (string, error) {
	value := strings.TrimSpace(raw)

	switch field.Kind {
	case models.SingleChoice:
		return validateChoice(field, value)
	case models.NumericRange:
		return validateNumber(field, value)
	case models.FreeText:
		return validateText(field, value)
	default:
		return "", &AnswerError{Field: field.Key, Message: "نوع السؤال غير معروف"}
	}
}

func validateChoice(field models.QuestionnaireField, value string) (string, error) {
	for _, c := range field.Choices {
		if c == value {
			return c, nil
		}
	}
	if n, err := strconv.Atoi(value); err == nil && n >= 1 && n <= len(field.Choices) {
		return field.Choices[n-1], nil
	}
	return "", &AnswerError{
		Field:   field.Key,
		Message: "يرجى اختيار أحد الخيارات المتاحة: " + strings.Join(field.Choices, "، "),
	}
}

func validateNumber(field models.QuestionnaireField, value string) (string, error) {
	n, err := strconv.Atoi(normalizeDigits(value))
	if err != nil {
		return "", &AnswerError{Field: field.Key, Message: "يرجى إدخال رقم صحيح"}
	}
	if n < field.Min || n > field.Max {
		return "", &AnswerError{
			Field:   field.Key,
			Message: fmt.Sprintf("يجب أن يكون الرقم بين %d و %d", field.Min, field.Max),
		}
	}
	return strconv.Itoa(n), nil
}

func validateText(field models.QuestionnaireField, value string) (string, error) {
	if value == "" {
		return "", &AnswerError{Field: field.Key, Message: "يرجى كتابة إجابة"}
	}
	if utf8.RuneCountInString(value) > MaxAnswerLength {
		return "", &AnswerError{
			Field:   field.Key,
			Message: fmt.Sprintf("الإجابة طويلة جداً، الحد الأقصى %d حرف", MaxAnswerLength),
		}
	}
	return value, nil
}

// normalizeDigits converts Arabic-Indic digits so "٥" parses like "5".
func normalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		}
		return r
	}, s)
}

// ValidateAnswerKeys makes sure every key belongs to the project type's catalog.
func ValidateAnswerKeys(fields []models.QuestionnaireField, answers *models.Answers) error {
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f.Key] = true
	}
	var unknown []string
	for _, k := range answers.Keys() {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown questionnaire fields: %s", strings.Join(unknown, ", "))
	}
	return nil
}

// ValidateQuestion rejects blank direct questions. Length is left to the model.
func ValidateQuestion(question string) error {
	if strings.TrimSpace(question) == "" {
		return fmt.Errorf("question must not be empty")
	}
	return nil
}
