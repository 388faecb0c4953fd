package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nexus_settlement/internal/domain/entities"
	"nexus_settlement/internal/usecase/interfaces"
	"nexus_settlement/internal/usecase/settlement"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidOrder            = errors.New("invalid order")
	ErrInsufficientStock       = errors.New("insufficient product quantity")
	ErrInvalidOrderStatus      = errors.New("invalid order status")
	ErrInvalidStatusTransition = errors.New("order status can only move forward")
	ErrEscrowNotConfigured     = errors.New("escrow account not configured")
)

const (
	subjectOrderPlaced   = "Order Placed Successfully"
	subjectOrderReceived = "New Order Received"
	notifyTimeout        = 10 * time.Second
)

type PlaceOrderInput struct {
	ProductID  string
	Quantity   int
	FunderID   string
	SupplierID string
	RequestID  string
}

// IOrderUseCase is the order settlement engine.
//
// Money rules:
//   - Place debits the funder for the order total before the order exists.
//   - DELIVERED moves the total from the escrow account to the supplier.

type IOrderUseCase interface {
	Place(ctx context.Context, in PlaceOrderInput) (entities.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (entities.Order, error)
	GetByID(ctx context.Context, orderID string) (entities.OrderView, error)
	ListByUser(ctx context.Context, userID string) ([]entities.OrderView, error)
}

// OrderDependencies groups the collaborators of OrderUseCase.
type OrderDependencies struct {
	Orders   interfaces.IOrderRepository
	Views    interfaces.IOrderViewRepository
	Funding  interfaces.IFundingRequestLookup
	Products interfaces.IProductCatalog
	Users    interfaces.IUserDirectory
	Wallet   interfaces.IWalletLedger
	Notifier interfaces.INotificationPublisher
	EscrowID string
	Logger   *zap.Logger
	// Dispatch runs notification work off the request path. Defaults to a goroutine.
	Dispatch func(func())
}

type OrderUseCase struct {
	orders   interfaces.IOrderRepository
	views    interfaces.IOrderViewRepository
	funding  interfaces.IFundingRequestLookup
	products interfaces.IProductCatalog
	users    interfaces.IUserDirectory
	wallet   interfaces.IWalletLedger
	notifier interfaces.INotificationPublisher
	escrow   entities.LedgerAccount
	log      *zap.Logger
	dispatch func(func())
	now      func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(deps OrderDependencies) *OrderUseCase {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	dispatch := deps.Dispatch
	if dispatch == nil {
		dispatch = func(f func()) { go f() }
	}
	return &OrderUseCase{
		orders:   deps.Orders,
		views:    deps.Views,
		funding:  deps.Funding,
		products: deps.Products,
		users:    deps.Users,
		wallet:   deps.Wallet,
		notifier: deps.Notifier,
		escrow:   entities.EscrowAccount(strings.TrimSpace(deps.EscrowID)),
		log:      log,
		dispatch: dispatch,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *OrderUseCase) Place(ctx context.Context, in PlaceOrderInput) (entities.Order, error) {
	in.ProductID = strings.TrimSpace(in.ProductID)
	in.FunderID = strings.TrimSpace(in.FunderID)
	in.SupplierID = strings.TrimSpace(in.SupplierID)
	in.RequestID = strings.TrimSpace(in.RequestID)
	u.log.Info("[order][usecase] place start", zap.String("product_id", in.ProductID), zap.Int("quantity", in.Quantity),
		zap.String("funder_id", in.FunderID), zap.String("supplier_id", in.SupplierID), zap.String("request_id", in.RequestID))

	if err := requireNonBlank(ErrInvalidOrder, map[string]string{
		"productId":  in.ProductID,
		"funderId":   in.FunderID,
		"supplierId": in.SupplierID,
		"requestId":  in.RequestID,
	}); err != nil {
		return entities.Order{}, err
	}
	if in.Quantity <= 0 {
		return entities.Order{}, fmt.Errorf("%w: quantity must be positive", ErrInvalidOrder)
	}

	fr, err := u.funding.GetByID(ctx, in.RequestID)
	if err != nil {
		return entities.Order{}, err
	}
	if fr.ID == "" {
		return entities.Order{}, ErrFundingRequestNotFound
	}
	if !fr.IsFunded() {
		u.log.Warn("[order][usecase] funding request not funded", zap.String("request_id", fr.ID), zap.String("status", string(fr.Status)))
		return entities.Order{}, ErrFundingRequestNotFunded
	}

	product, err := u.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return entities.Order{}, err
	}
	if !product.IsAvailable() || in.Quantity > product.Quantity {
		return entities.Order{}, fmt.Errorf("%w: available %d, requested %d", ErrInsufficientStock, product.Quantity, in.Quantity)
	}

	order := entities.NewOrder(uuid.NewString(), in.RequestID, in.ProductID, product.Name, in.Quantity, product.Price, in.FunderID, in.SupplierID, u.now())
	remaining := product.Quantity - in.Quantity

	var created entities.Order
	saga := settlement.New("place:"+order.ID, u.log)
	err = saga.Run(ctx,
		settlement.WalletStep(u.wallet, entities.WalletAdjustment{
			Account:          entities.FunderAccount(order.FunderID),
			Delta:            order.TotalAmount.Neg(),
			FundingRequestID: order.RequestID,
		}),
		settlement.Step{
			Name: "decrement inventory " + product.ID,
			Apply: func(ctx context.Context) error {
				return u.products.UpdateQuantity(ctx, product, remaining)
			},
			Compensate: func(ctx context.Context) error {
				after := product
				after.Quantity = remaining
				return u.products.UpdateQuantity(ctx, after, product.Quantity)
			},
		},
		settlement.Step{
			Name: "persist order " + order.ID,
			Apply: func(ctx context.Context) error {
				var err error
				created, err = u.orders.Create(ctx, order)
				return err
			},
		},
	)
	if err != nil {
		u.log.Warn("[order][usecase] place failed", zap.String("order_id", order.ID), zap.Error(err))
		return entities.Order{}, err
	}
	u.log.Info("[order][usecase] placed", zap.String("order_id", created.ID),
		zap.String("unit_price", created.UnitPrice.StringFixed(2)), zap.String("total_amount", created.TotalAmount.StringFixed(2)))

	u.project(ctx, created)
	u.dispatch(func() { u.notifyPlaced(created, product) })
	return created, nil
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID, status string) (entities.Order, error) {
	next := entities.OrderStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !next.IsValid() {
		return entities.Order{}, fmt.Errorf("%w: %q", ErrInvalidOrderStatus, status)
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !o.Status.CanAdvanceTo(next) {
		return entities.Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, o.Status, next)
	}
	u.log.Info("[order][usecase] status change", zap.String("order_id", o.ID), zap.String("from", string(o.Status)), zap.String("to", string(next)))

	saga := settlement.New("deliver:"+o.ID, u.log)
	if next == entities.OrderStatusDelivered {
		if u.escrow.ID == "" {
			return entities.Order{}, ErrEscrowNotConfigured
		}
		err := saga.Run(ctx,
			settlement.WalletStep(u.wallet, entities.WalletAdjustment{Account: u.escrow, Delta: o.TotalAmount.Neg()}),
			settlement.WalletStep(u.wallet, entities.WalletAdjustment{Account: entities.SupplierAccount(o.SupplierID), Delta: o.TotalAmount}),
		)
		if err != nil {
			u.log.Warn("[order][usecase] supplier payout failed", zap.String("order_id", o.ID), zap.Error(err))
			return entities.Order{}, err
		}
		now := u.now()
		o.DeliveredAt = &now
		o.PaidAt = &now
		o.SupplierPaid = true
	}
	o.Status = next

	saved, err := u.orders.Save(ctx, o)
	if err != nil {
		u.log.Warn("[order][usecase] save failed", zap.String("order_id", o.ID), zap.Error(err))
		_ = saga.Compensate(ctx)
		return entities.Order{}, mapSaveError(err)
	}
	u.log.Info("[order][usecase] status updated", zap.String("order_id", saved.ID), zap.String("status", string(saved.Status)),
		zap.Bool("supplier_paid", saved.SupplierPaid))

	u.project(ctx, saved)
	return saved, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, orderID string) (entities.OrderView, error) {
	v, err := u.views.GetByID(ctx, strings.TrimSpace(orderID))
	if err != nil {
		return entities.OrderView{}, err
	}
	if v.OrderID == "" {
		return entities.OrderView{}, ErrOrderNotFound
	}
	return v, nil
}

func (u *OrderUseCase) ListByUser(ctx context.Context, userID string) ([]entities.OrderView, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidOrder)
	}
	return u.views.ListByUserID(ctx, userID)
}

func (u *OrderUseCase) project(ctx context.Context, o entities.Order) {
	if u.views == nil {
		return
	}
	if err := u.views.Upsert(ctx, entities.NewOrderView(o, u.now())); err != nil {
		u.log.Warn("[order][usecase] view projection failed", zap.String("order_id", o.ID), zap.Error(err))
	}
}

func (u *OrderUseCase) notifyPlaced(o entities.Order, product entities.Product) {
	if u.users == nil || u.notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	contacts, err := u.users.GetContacts(ctx, []string{o.FunderID, o.SupplierID})
	if err != nil {
		u.log.Warn("[order][notify] contact lookup failed", zap.String("order_id", o.ID), zap.Error(err))
		return
	}
	emails := make(map[string]string, len(contacts))
	for _, c := range contacts {
		emails[c.ID] = c.Email
	}

	ts := u.now().Format(time.RFC3339)
	total := o.TotalAmount.StringFixed(2)
	msgs := []entities.NotificationMessage{
		{
			OrderID: o.ID,
			Email:   emails[o.FunderID],
			Subject: subjectOrderPlaced,
			Body: fmt.Sprintf("Your order #%s has been placed successfully. Product: %s, Quantity: %d, Total Amount: %s",
				o.ID, product.Name, o.Quantity, total),
			Timestamp: ts,
		},
		{
			OrderID: o.ID,
			Email:   emails[o.SupplierID],
			Subject: subjectOrderReceived,
			Body: fmt.Sprintf("You have received a new order #%s. Product: %s, Quantity: %d, Total Amount: %s",
				o.ID, product.Name, o.Quantity, total),
			Timestamp: ts,
		},
	}
	for _, m := range msgs {
		if m.Email == "" {
			u.log.Warn("[order][notify] no email for recipient", zap.String("order_id", o.ID), zap.String("subject", m.Subject))
			continue
		}
		if err := u.notifier.Publish(ctx, m); err != nil {
			u.log.Warn("[order][notify] publish failed", zap.String("order_id", o.ID), zap.String("subject", m.Subject), zap.Error(err))
		}
	}
}
