package confirm_order

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
	orderRepo "github.com/m04kA/SMC-LaundryBooking/internal/infra/storage/order"
	counterRepo "github.com/m04kA/SMC-LaundryBooking/internal/infra/storage/slotcounter"
	"github.com/m04kA/SMC-LaundryBooking/internal/service/slots"
)

// UseCase use case подтверждения заказа с занятием места в часе записи
type UseCase struct {
	orderRepo   OrderRepository
	counterRepo CounterRepository
	txManager   TransactionManager
	settings    Settings
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orderRepo OrderRepository,
	counterRepo CounterRepository,
	txManager TransactionManager,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo:   orderRepo,
		counterRepo: counterRepo,
		txManager:   txManager,
		settings:    settings,
		logger:      logger,
	}
}

// Execute подтверждает заказ и увеличивает счетчик его часа записи
// Использует сериализуемую транзакцию, чтобы счетчик не превысил потолок при гонке
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmOrder: customer=%d, order=%d", req.CustomerID, req.OrderID)

	if req.CustomerID <= 0 || req.OrderID <= 0 {
		uc.logger.Warn("ConfirmOrder: invalid ids customer=%d, order=%d", req.CustomerID, req.OrderID)
		return nil, ErrInvalidInput
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Заказ под блокировкой
		order, err := uc.orderRepo.GetByID(txCtx, req.OrderID)
		if err != nil {
			if errors.Is(err, orderRepo.ErrOrderNotFound) {
				uc.logger.Warn("ConfirmOrder: order id=%d not found", req.OrderID)
				return ErrOrderNotFound
			}
			uc.logger.Error("ConfirmOrder: failed to get order id=%d: %v", req.OrderID, err)
			return fmt.Errorf("%w: failed to get order: %v", ErrInternal, err)
		}

		if !order.BelongsTo(req.CustomerID) {
			uc.logger.Warn("ConfirmOrder: order id=%d does not belong to customer=%d", req.OrderID, req.CustomerID)
			return ErrAccessDenied
		}

		if !order.CanBeConfirmed() {
			uc.logger.Warn("ConfirmOrder: order id=%d has status %s", req.OrderID, order.Status)
			return ErrInvalidStatus
		}

		// 2. Текущий счетчик часа
		appointment := domain.TruncateToHour(order.Appointment, uc.settings.Location)

		counter, err := uc.counterRepo.GetByAppointment(txCtx, appointment)
		if err != nil && !errors.Is(err, counterRepo.ErrCounterNotFound) {
			uc.logger.Error("ConfirmOrder: failed to get counter for %v: %v", appointment, err)
			return fmt.Errorf("%w: failed to get counter: %v", ErrInternal, err)
		}

		if counter != nil && counter.IsFull(uc.settings.MaxAppointmentsPerHour) {
			uc.logger.Warn("ConfirmOrder: slot %v is full, %d/%d",
				appointment, counter.Counter, uc.settings.MaxAppointmentsPerHour)
			return ErrSlotNotAvailable
		}

		// 3. Занимаем место
		updated, err := uc.counterRepo.Increment(txCtx, appointment)
		if err != nil {
			uc.logger.Error("ConfirmOrder: failed to increment counter for %v: %v", appointment, err)
			return fmt.Errorf("%w: failed to increment counter: %v", ErrInternal, err)
		}

		if err := uc.orderRepo.UpdateStatus(txCtx, order.ID, domain.OrderStatusConfirmed); err != nil {
			uc.logger.Error("ConfirmOrder: failed to update order id=%d status: %v", order.ID, err)
			return fmt.Errorf("%w: failed to update order status: %v", ErrInternal, err)
		}

		result = &Response{
			OrderID:     order.ID,
			Status:      domain.OrderStatusConfirmed,
			Appointment: appointment,
			Slot:        slots.FormatSessionSlot(appointment, uc.settings.Location),
			SlotCounter: updated.Counter,
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConfirmOrder: order id=%d confirmed, slot %s now %d/%d",
		result.OrderID, result.Slot, result.SlotCounter, uc.settings.MaxAppointmentsPerHour)

	return result, nil
}
