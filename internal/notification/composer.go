package notification

import "context"

//go:generate mockgen -source=composer.go -destination=mocks/mock_composer.go -package=mocks

// Composer передает ссылку sms:, tel: или maps в ОС устройства.
// Успешный вызов означает только, что ОС приняла ссылку, а не доставку сообщения.
type Composer interface {
	Open(ctx context.Context, uri string) error
}

// ComposerFunc позволяет использовать функцию как Composer
type ComposerFunc func(ctx context.Context, uri string) error

func (f ComposerFunc) Open(ctx context.Context, uri string) error {
	return f(ctx, uri)
}
