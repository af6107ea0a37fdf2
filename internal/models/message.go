package models

import "time"

// Platform - семейство ОС устройства, от него зависит формат sms: ссылки
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
)

type MessageStatus string

const (
	MessagePending MessageStatus = "pending"
	MessageSent    MessageStatus = "sent"
	MessageFailed  MessageStatus = "failed"
)

// QueuedMessage - сообщение, передачу которого не удалось подтвердить
type QueuedMessage struct {
	ID          string        `json:"id"`
	PhoneNumber string        `json:"phone_number"`
	Message     string        `json:"message"`
	Platform    Platform      `json:"platform"`
	Timestamp   time.Time     `json:"timestamp"`
	RetryCount  int           `json:"retry_count"`
	Status      MessageStatus `json:"status"`
}

// Recipient - получатель экстренного оповещения
type Recipient struct {
	Name     string       `json:"name"`
	Phone    string       `json:"phone"`
	Category FacilityKind `json:"category"`
}

type DeliveryFailure struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Reason string `json:"reason"`
}

// NotificationResult - итог рассылки. Success означает лишь, что ОС приняла
// все запросы на открытие окна отправки SMS, а не факт доставки.
type NotificationResult struct {
	Success bool              `json:"success"`
	Sent    []Recipient       `json:"sent"`
	Failed  []DeliveryFailure `json:"failed"`
}

// RetryReport - итог повторной отправки очереди
type RetryReport struct {
	Processed  int `json:"processed"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// FallbackAction - альтернативное действие, если SMS отправить не удалось
type FallbackAction struct {
	Label string `json:"label"`
	URI   string `json:"uri,omitempty"`
}
