package gateway

import "github.com/google/uuid"

// UUIDReceiptSource — криптослучайный receipt на каждый заказ.
// Timestamp-подделки не годятся: они схлопываются в почти одинаковые
// значения при параллельных заказах.
type UUIDReceiptSource struct{}

func NewUUIDReceiptSource() *UUIDReceiptSource {
	return &UUIDReceiptSource{}
}

func (s *UUIDReceiptSource) NewReceipt() string {
	return "rcpt_" + uuid.New().String()
}
