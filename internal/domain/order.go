package domain

// Order — дескриптор заказа из платежного шлюза. Локально не хранится:
// живет только в шлюзе и в сессии клиента до верификации.
type Order struct {
	ID       string
	Amount   int // В минимальных единицах валюты (пайсы)
	Currency string
	Receipt  string
}
