package services

import (
	"context"
	"errors"

	"atelier_backend/internal/dto"
	"atelier_backend/internal/logger"
	"atelier_backend/internal/models"
	"atelier_backend/internal/repositories"
	"atelier_backend/pkg/apperrors"
)

const orderDomain = "orders"

type OrderService interface {
	Create(ctx context.Context, req *dto.CreateOrderRequest) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	Get(ctx context.Context, id uint) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error)
}

type orderService struct {
	repo     repositories.OrderRepository
	notifier NotificationService
}

func NewOrderService(repo repositories.OrderRepository, notifier NotificationService) OrderService {
	return &orderService{repo: repo, notifier: notifier}
}

func (s *orderService) Create(ctx context.Context, req *dto.CreateOrderRequest) (*models.Order, error) {
	order, err := s.repo.CreateOrder(ctx, req.ToModel())
	if err != nil {
		return nil, apperrors.FailedTo(orderDomain, "create order", err)
	}
	logger.CtxInfo(ctx, "order created", "order_id", order.ID, "service_type", order.ServiceType)

	s.notifier.NotifyNewOrder(ctx, order)
	return order, nil
}

func (s *orderService) List(ctx context.Context) ([]models.Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, apperrors.FailedTo(orderDomain, "fetch orders", err)
	}
	return orders, nil
}

func (s *orderService) Get(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.repo.FindOrderByID(ctx, id)
	if err != nil {
		return nil, mapOrderError(err, "fetch order")
	}
	return order, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus(orderDomain, "Invalid order status: "+string(status))
	}

	order, err := s.repo.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return nil, mapOrderError(err, "update order status")
	}
	logger.CtxInfo(ctx, "order status updated", "order_id", id, "status", status)
	return order, nil
}

func mapOrderError(err error, action string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.ErrNotFound(orderDomain, "Order", err)
	}
	return apperrors.FailedTo(orderDomain, action, err)
}
