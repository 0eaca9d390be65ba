package service

import (
	"sync"

	"go.uber.org/zap"

	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/navigation"
)

// OrderService держит страницу оформления заказа. Открытие страницы создаёт
// новый checkout.Flow, если прежний завершён или закрыт; уход со страницы
// закрывает его вместе с отложенными таймерами.
type OrderService struct {
	cart cart.Store
	nav  navigation.Navigator
	opts []checkout.Option
	log  *zap.Logger

	mu       sync.Mutex
	flow     *checkout.Flow
	doneSeen bool
}

func NewOrderService(store cart.Store, nav navigation.Navigator, logger *zap.Logger, opts ...checkout.Option) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts = append([]checkout.Option{checkout.WithLogger(logger)}, opts...)
	return &OrderService{cart: store, nav: nav, opts: opts, log: logger}
}

// mount returns the active flow or a fresh one. A flow that finished on its
// own timer is kept until its Done view has been rendered once, unless
// keepDone is false.
func (s *OrderService) mount(keepDone bool) *checkout.Flow {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flow != nil && !s.flow.Closed() {
		return s.flow
	}
	if s.flow != nil && keepDone && !s.doneSeen {
		s.doneSeen = true
		return s.flow
	}
	if s.flow != nil {
		s.flow.Close()
	}
	s.flow = checkout.NewFlow(s.cart, s.nav, s.opts...)
	s.doneSeen = false
	s.log.Debug("checkout mounted")
	return s.flow
}

func (s *OrderService) current() *checkout.Flow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flow
}

func (s *OrderService) markSeen(v checkout.View) {
	if v.State != checkout.StateDone {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doneSeen = true
}

// Open renders the checkout page, mounting it first if needed.
func (s *OrderService) Open() checkout.View {
	v := s.mount(true).Render()
	s.markSeen(v)
	return v
}

// Status renders the mounted page without mounting a new one.
func (s *OrderService) Status() (checkout.View, error) {
	f := s.current()
	if f == nil {
		return checkout.View{}, checkout.ErrInvalidState
	}
	v := f.Render()
	s.markSeen(v)
	return v, nil
}

// PlaceOrder starts the submission on the mounted page.
func (s *OrderService) PlaceOrder() (checkout.View, error) {
	f := s.mount(false)
	if err := f.Submit(); err != nil {
		return f.Render(), err
	}
	return f.Render(), nil
}

// ContinueShopping dismisses the confirmation and navigates home.
func (s *OrderService) ContinueShopping() (checkout.View, error) {
	f := s.current()
	if f == nil {
		return checkout.View{}, checkout.ErrInvalidState
	}
	if err := f.Continue(); err != nil {
		return f.Render(), err
	}
	v := f.Render()
	s.markSeen(v)
	return v, nil
}

// Leave tears the page down.
func (s *OrderService) Leave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flow != nil {
		s.flow.Close()
		s.flow = nil
		s.doneSeen = false
	}
}
