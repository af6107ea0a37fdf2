package notification

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	phonePattern = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)
	ugandaPhone  = regexp.MustCompile(`^(\+256)(\d{3})(\d{3})(\d{3})`)
	localPhone   = regexp.MustCompile(`^(\d{4})(\d{3})(\d{3})`)
	notDialable  = regexp.MustCompile(`[^\d+]`)
)

// IsValidPhoneNumber проверяет номер после удаления пробельных символов
func IsValidPhoneNumber(phone string) bool {
	return phonePattern.MatchString(stripSpaces(phone))
}

// ValidatePhoneNumber возвращает ErrInvalidPhoneNumber для некорректного номера
func ValidatePhoneNumber(phone string) error {
	if !IsValidPhoneNumber(phone) {
		return ErrInvalidPhoneNumber
	}
	return nil
}

// FormatPhoneNumber форматирует номер для отображения: +256 XXX XXX XXX или 0XXX XXX XXX.
// Номера других форматов возвращаются без изменений.
func FormatPhoneNumber(phone string) string {
	cleaned := notDialable.ReplaceAllString(phone, "")

	switch {
	case strings.HasPrefix(cleaned, "+256"):
		return ugandaPhone.ReplaceAllString(cleaned, "$1 $2 $3 $4")
	case strings.HasPrefix(cleaned, "0"):
		return localPhone.ReplaceAllString(cleaned, "$1 $2 $3")
	}
	return phone
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
