package notification

import "errors"

var (
	// ErrInvalidPhoneNumber - номер не проходит проверку формата
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
	// ErrIntentUnavailable - ОС не может открыть sms:, tel: или maps ссылку
	ErrIntentUnavailable = errors.New("intent unavailable")
)

// Причины отказа в отчете о рассылке
const (
	ReasonInvalidPhone = "Invalid phone number"
	ReasonSendFailed   = "SMS failed to send"
)
