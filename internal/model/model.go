// Package model содержит доменные сущности сервиса customer-api.
package model

import "time"

// Customer представляет клиента, для которого хранятся позиции с оценочной стоимостью.
type Customer struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// LineItem описывает позицию клиента в том виде, в котором она хранится в БД.
type LineItem struct {
	NameCustomers string
	Items         string
	EstimatePrice float64
}

// PricedLineItem описывает позицию клиента после применения скидочных правил.
// Discount — ставка скидки, FixPrice — итоговая цена, округлённая до целого.
type PricedLineItem struct {
	NameCustomers string
	Items         string
	Discount      float64
	FixPrice      int64
}
