// Package validation содержит функции валидации входных данных.
package validation

import "time"

// DateRequestLayout определяет обязательный формат поля date_request.
const DateRequestLayout = "2006-01-02 15:04:05"

// IsValidName проверяет, что имя задано непустой строкой.
func IsValidName(name string) bool {
	return name != ""
}

// IsValidDateRequest проверяет, что значение строго соответствует формату
// YYYY-MM-DD HH:MM:SS.
func IsValidDateRequest(value string) bool {
	if len(value) != len(DateRequestLayout) {
		return false
	}

	_, err := time.Parse(DateRequestLayout, value)
	return err == nil
}
