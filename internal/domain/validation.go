package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Сообщения об ошибках валидации (возвращаются клиенту в details)
const (
	MsgInvalidDate     = "invalid date, expected format YYYY-MM-DD"
	MsgInvalidTime     = "invalid time, expected format HH:MM"
	MsgTimeNotInSlots  = "time is not one of the available slots"
	MsgInvalidName     = "name must be at least 2 characters"
	MsgInvalidLastName = "last name must be at least 2 characters"
	MsgNameTooLong     = "name must be at most 100 characters"
	MsgLastNameTooLong = "last name must be at most 100 characters"
	MsgInvalidPhone    = "invalid phone number"
	MsgPhoneTooLong    = "phone must be at most 32 characters"
	MsgInvalidEmail    = "invalid email"
	MsgEmailTooLong    = "email must be at most 255 characters"
	MsgInvalidStatus   = "invalid status, expected one of: confirmed, cancelled, completed"
	MsgEmptyUpdate     = "no fields to update"
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern  = regexp.MustCompile(`^\d{2}:\d{2}$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-+()]{8,}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidationError ошибка валидации со списком всех нарушений
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// Add добавляет сообщение, если оно не пустое
func (e *ValidationError) Add(msg string) {
	if msg != "" {
		e.Details = append(e.Details, msg)
	}
}

// OrNil возвращает nil, если нарушений нет
func (e *ValidationError) OrNil() error {
	if len(e.Details) == 0 {
		return nil
	}
	return e
}

// NewValidationError создает ошибку валидации из списка сообщений
func NewValidationError(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}

// IsValidDate проверяет формат YYYY-MM-DD и существование даты в календаре
func IsValidDate(date string) bool {
	if !datePattern.MatchString(date) {
		return false
	}
	_, err := ParseDate(date)
	return err == nil
}

// CheckDate возвращает сообщение об ошибке или пустую строку
func CheckDate(date string) string {
	if !IsValidDate(date) {
		return MsgInvalidDate
	}
	return ""
}

// CheckTime проверяет формат HH:MM и принадлежность расписанию
func CheckTime(t string) string {
	if !timePattern.MatchString(t) {
		return MsgInvalidTime
	}
	if !IsValidSlot(t) {
		return MsgTimeNotInSlots
	}
	return ""
}

// CheckName проверяет имя (после обрезки пробелов)
func CheckName(name string) string {
	return checkLength(name, MsgInvalidName, MsgNameTooLong)
}

// CheckLastName проверяет фамилию (после обрезки пробелов)
func CheckLastName(lastName string) string {
	return checkLength(lastName, MsgInvalidLastName, MsgLastNameTooLong)
}

func checkLength(value, tooShort, tooLong string) string {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	switch {
	case n < MinNameLength:
		return tooShort
	case n > MaxNameLength:
		return tooLong
	}
	return ""
}

// CheckPhone проверяет телефон: цифры, пробелы, + - ( ), не короче 8 символов
func CheckPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if !phonePattern.MatchString(phone) {
		return MsgInvalidPhone
	}
	if utf8.RuneCountInString(phone) > MaxPhoneLength {
		return MsgPhoneTooLong
	}
	return ""
}

// CheckEmail проверяет email; пустой email допустим
func CheckEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	if !emailPattern.MatchString(email) {
		return MsgInvalidEmail
	}
	if utf8.RuneCountInString(email) > MaxEmailLength {
		return MsgEmailTooLong
	}
	return ""
}
