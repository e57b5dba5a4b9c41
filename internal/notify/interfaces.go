package notify

// DeliveryStatus - явный результат попытки доставки уведомления
type DeliveryStatus string

const (
	// DeliveryDelivered - провайдер подтвердил доставку
	DeliveryDelivered DeliveryStatus = "delivered"
	// DeliverySimulated - провайдер отклонил номер, доставка имитирована
	DeliverySimulated DeliveryStatus = "simulated"
	// DeliveryFailed - доставка не удалась
	DeliveryFailed DeliveryStatus = "failed"
)

// Notifier определяет интерфейс для отправки уведомлений о мошенничестве
type Notifier interface {
	// SendAlert отправляет текстовое уведомление на указанный номер
	SendAlert(phone, message string) (DeliveryStatus, error)
}
