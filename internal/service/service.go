// Package service реализует бизнес-логику сервиса customer-api.
package service

import (
	"context"

	"github.com/mmeshcher/customer-api/internal/model"
	"github.com/mmeshcher/customer-api/internal/pricing"
)

// Repository описывает контракт доступа к данным, используемый сервисом.
type Repository interface {
	Close() error
	GetCustomerItems(ctx context.Context, nameCustomers string) ([]model.LineItem, error)
}

// Service содержит бизнес-логику сервиса customer-api.
type Service struct {
	repo Repository
}

// NewService создаёт новый сервис с указанным репозиторием.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Close закрывает ресурсы сервиса.
func (s *Service) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}

// GetCustomerItems возвращает позиции указанного клиента со ставкой скидки
// и итоговой ценой. Порядок позиций соответствует порядку выборки из хранилища.
// Отсутствие позиций не является ошибкой: возвращается пустой список.
func (s *Service) GetCustomerItems(ctx context.Context, nameCustomers string) ([]model.PricedLineItem, error) {
	items, err := s.repo.GetCustomerItems(ctx, nameCustomers)
	if err != nil {
		return nil, err
	}

	priced := make([]model.PricedLineItem, 0, len(items))
	for _, item := range items {
		rate, fixPrice := pricing.Price(item.EstimatePrice)
		priced = append(priced, model.PricedLineItem{
			NameCustomers: item.NameCustomers,
			Items:         item.Items,
			Discount:      rate,
			FixPrice:      fixPrice,
		})
	}

	return priced, nil
}
