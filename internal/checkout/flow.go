package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/cart"
	"storefront/internal/domain"
	"storefront/internal/navigation"
)

// State состояние оформления заказа
type State string

const (
	StateIdle       State = "idle"
	StateProcessing State = "processing"
	StateSuccess    State = "success"
	StateDone       State = "done"
)

var (
	ErrBusy         = errors.New("order is already being placed")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrClosed       = errors.New("checkout is closed")
	ErrInvalidState = errors.New("invalid state")
)

// Default delays of the simulated submission.
const (
	DefaultProcessingDelay = 2 * time.Second
	DefaultRedirectDelay   = 3 * time.Second
)

const (
	successTitle       = "Order Placed Successfully!"
	successDescription = "Thank you for your purchase. You will be redirected to the home page shortly."
)

// Submitter отправляет заказ. Вызывается по истечении задержки обработки;
// ошибка возвращает оформление в Idle.
type Submitter func(ctx context.Context, items []domain.CartItem, totals Totals) error

// SimulatedSubmitter always succeeds: the processing delay is the whole simulation.
func SimulatedSubmitter(ctx context.Context, items []domain.CartItem, totals Totals) error {
	return ctx.Err()
}

// Dialog уведомление об успешном заказе
type Dialog struct {
	Open        bool   `json:"open"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// View отрисовываемое состояние страницы оформления. Location куда этот
// поток переходил последним, пусто если переходов не было.
type View struct {
	Visible     bool    `json:"visible"`
	State       State   `json:"state"`
	Busy        bool    `json:"busy"`
	CanSubmit   bool    `json:"canSubmit"`
	ButtonLabel string  `json:"buttonLabel"`
	Lines       []Line  `json:"lines"`
	Summary     Summary `json:"summary"`
	Dialog      Dialog  `json:"dialog"`
	Error       string  `json:"error,omitempty"`
	OrderRef    string  `json:"orderRef,omitempty"`
	Redirect    string  `json:"redirect,omitempty"`
	Location    string  `json:"location,omitempty"`
}

type Option func(*Flow)

func WithScheduler(s Scheduler) Option { return func(f *Flow) { f.sched = s } }

func WithDelays(processing, redirect time.Duration) Option {
	return func(f *Flow) {
		f.processingDelay = processing
		f.redirectDelay = redirect
	}
}

func WithSubmitter(s Submitter) Option { return func(f *Flow) { f.submit = s } }

func WithLogger(l *zap.Logger) Option { return func(f *Flow) { f.log = l } }

// Flow машина состояний оформления заказа: idle -> processing -> success -> done.
// Все переходы сериализуются мьютексом; отложенные продолжения после Close
// ничего не делают.
type Flow struct {
	cart  cart.Store
	nav   navigation.Navigator
	calc  *Calculator
	sched Scheduler
	log   *zap.Logger

	submit          Submitter
	processingDelay time.Duration
	redirectDelay   time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	state      State
	dialog     Dialog
	err        error
	orderRef   string
	pending    Task
	closed     bool
	redirected bool
	location   string
}

func NewFlow(store cart.Store, nav navigation.Navigator, opts ...Option) *Flow {
	f := &Flow{
		cart:            store,
		nav:             nav,
		calc:            NewCalculator(),
		sched:           TimerScheduler{},
		log:             zap.NewNop(),
		submit:          SimulatedSubmitter,
		processingDelay: DefaultProcessingDelay,
		redirectDelay:   DefaultRedirectDelay,
		state:           StateIdle,
	}
	for _, o := range opts {
		o(f)
	}
	f.ctx, f.cancel = context.WithCancel(context.Background())
	return f
}

// Submit places the order: Idle -> Processing.
func (f *Flow) Submit() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	if f.state != StateIdle {
		return ErrBusy
	}
	if f.cart.Totals().TotalItems == 0 {
		return ErrEmptyCart
	}
	f.state = StateProcessing
	f.err = nil
	f.pending = f.sched.AfterFunc(f.processingDelay, f.finishProcessing)
	f.log.Info("order processing started")
	return nil
}

func (f *Flow) finishProcessing() {
	f.mu.Lock()
	if f.closed || f.state != StateProcessing {
		f.mu.Unlock()
		return
	}
	items := f.cart.Items()
	totals := f.calc.Totals(f.cart.Totals().TotalPrice)
	submit, ctx := f.submit, f.ctx
	f.mu.Unlock()

	err := submit(ctx, items, totals)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.state != StateProcessing {
		return
	}
	f.pending = nil
	if err != nil {
		f.state = StateIdle
		f.err = err
		f.log.Warn("order submission failed", zap.Error(err))
		return
	}

	// the cart is empty before success becomes visible
	f.cart.Clear()
	f.state = StateSuccess
	f.orderRef = uuid.NewString()
	f.dialog = Dialog{Open: true, Title: successTitle, Description: successDescription}
	f.pending = f.sched.AfterFunc(f.redirectDelay, f.dismissFromTimer)
	f.log.Info("order placed", zap.String("order_ref", f.orderRef), zap.String("total", totals.Total.StringFixed(2)))
}

func (f *Flow) dismissFromTimer() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.state != StateSuccess {
		return
	}
	f.pending = nil
	f.dismissLocked()
}

// Continue is the manual "Continue Shopping" action; it supersedes the timer.
func (f *Flow) Continue() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	if f.state != StateSuccess {
		return ErrInvalidState
	}
	if f.pending != nil {
		f.pending.Stop()
		f.pending = nil
	}
	f.dismissLocked()
	return nil
}

func (f *Flow) dismissLocked() {
	f.dialog.Open = false
	f.state = StateDone
	f.navigateLocked(navigation.Home)
	f.log.Info("checkout finished", zap.String("order_ref", f.orderRef))
}

// CheckRedirect runs the empty-cart guard and reports whether it navigated.
func (f *Flow) CheckRedirect() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.checkRedirectLocked()
}

// The guard fires once per entry into "no items and no confirmation showing".
// A finished flow has already navigated home, so it never redirects.
func (f *Flow) checkRedirectLocked() bool {
	if f.closed || f.state == StateDone {
		return false
	}
	if f.cart.Totals().TotalItems != 0 || f.dialog.Open {
		f.redirected = false
		return false
	}
	if f.redirected {
		return false
	}
	f.redirected = true
	f.navigateLocked(navigation.Cart)
	f.log.Debug("empty cart, redirecting", zap.String("to", navigation.Cart))
	return true
}

func (f *Flow) navigateLocked(dest string) {
	f.location = dest
	f.nav.Navigate(dest)
}

// Render evaluates the redirect guard and returns the page state.
func (f *Flow) Render() View {
	f.mu.Lock()
	defer f.mu.Unlock()

	v := View{State: f.state, Dialog: f.dialog, OrderRef: f.orderRef}
	if f.checkRedirectLocked() {
		v.Redirect = navigation.Cart
	}
	if f.err != nil {
		v.Error = f.err.Error()
	}
	totals := f.cart.Totals()
	v.Visible = totals.TotalItems != 0 || f.dialog.Open
	v.Busy = f.state == StateProcessing
	v.CanSubmit = f.state == StateIdle && !f.closed && totals.TotalItems != 0
	v.ButtonLabel = "Place Order"
	if v.Busy {
		v.ButtonLabel = "Processing..."
	}
	v.Location = f.location
	v.Lines = Lines(f.cart.Items())
	v.Summary = f.calc.Totals(totals.TotalPrice).Summary()
	return v
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Close tears the flow down. Pending continuations are stopped, and any that
// already started find the flow closed and do nothing.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	if f.pending != nil {
		f.pending.Stop()
		f.pending = nil
	}
	f.cancel()
	f.log.Debug("checkout closed", zap.String("state", string(f.state)))
}

// Closed reports whether the flow was torn down or has finished.
func (f *Flow) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed || f.state == StateDone
}
