package addresses

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
	orderRepo "github.com/m04kA/SMC-LaundryBooking/internal/infra/storage/order"
	"github.com/m04kA/SMC-LaundryBooking/pkg/postcode"
	"github.com/m04kA/SMC-LaundryBooking/pkg/ptr"
)

// Service подбор адреса клиента по истории его заказов
// Внешний справочник индексов не используется
type Service struct {
	orderRepo OrderRepository
	parser    PostcodeParser
	logger    Logger
}

// NewService создает новый экземпляр сервиса адресов
func NewService(orderRepo OrderRepository, parser PostcodeParser, logger Logger) *Service {
	return &Service{
		orderRepo: orderRepo,
		parser:    parser,
		logger:    logger,
	}
}

// PostcodeFromLastOrder возвращает индекс адреса из последнего заказа клиента с заполненным индексом
// Индекс возвращается как сохранен. nil - у клиента нет таких заказов
func (s *Service) PostcodeFromLastOrder(ctx context.Context, customerID int64) (*string, error) {
	if customerID <= 0 {
		return nil, fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	order, err := s.orderRepo.GetLastWithPostcode(ctx, customerID)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Info("PostcodeFromLastOrder: no orders with postcode for customer=%d", customerID)
			return nil, nil
		}
		s.logger.Error("PostcodeFromLastOrder: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: PostcodeFromLastOrder - repository error: %v", ErrInternal, err)
	}

	if order.Address == nil || !order.Address.HasPostcode() {
		return nil, nil
	}

	return ptr.Ptr(order.Address.Postcode), nil
}

// OrderAddressLookup ищет адрес из прошлых заказов клиента по введенному фрагменту индекса
//
// - полный индекс (outcode + incode): совпадение всего индекса без учета регистра и пробелов
// - только outcode: совпадение outcode сохраненного индекса
//
// Из подходящих возвращается адрес самого нового заказа. nil - совпадений нет
// или фрагмент не является индексом
func (s *Service) OrderAddressLookup(ctx context.Context, customerID int64, fragment string) (*domain.Address, error) {
	if customerID <= 0 {
		return nil, fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	wanted, ok := s.parser.Parse(fragment)
	if !ok {
		s.logger.Info("OrderAddressLookup: fragment %q is not a postcode, customer=%d", fragment, customerID)
		return nil, nil
	}

	// Сужаем выборку в БД по outcode, точное сравнение ниже
	orders, err := s.orderRepo.GetByCustomerAndPostcodePrefix(ctx, customerID, wanted.Outcode)
	if err != nil {
		s.logger.Error("OrderAddressLookup: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: OrderAddressLookup - repository error: %v", ErrInternal, err)
	}

	for _, order := range orders {
		if order.Address == nil {
			continue
		}
		if s.matches(wanted, order.Address.Postcode) {
			s.logger.Info("OrderAddressLookup: matched address id=%d from order id=%d for customer=%d",
				order.Address.ID, order.ID, customerID)
			return order.Address, nil
		}
	}

	s.logger.Info("OrderAddressLookup: no address matches %s for customer=%d", wanted.String(), customerID)
	return nil, nil
}

func (s *Service) matches(wanted postcode.Postcode, stored string) bool {
	if wanted.IsFull() {
		return postcode.Normalize(stored) == wanted.Normalized()
	}

	parsed, ok := s.parser.Parse(stored)
	return ok && parsed.Outcode == wanted.Outcode
}
