package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/woedy/weekend-chef-backend/entity"
	"github.com/woedy/weekend-chef-backend/pkg/apperr"
	"github.com/woedy/weekend-chef-backend/repository"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
	Notify   Notifier
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, userRepo *repository.UserRepository, notify Notifier) *OrderService {
	if notify == nil {
		notify = LogNotifier{}
	}
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo, Notify: notify}
}

// ----- DTOs -----

type PlaceOrderIn struct {
	DeliveryFee    decimal.Decimal `json:"deliveryFee"`
	Tax            decimal.Decimal `json:"tax"`
	LocationName   string          `json:"locationName"`
	DigitalAddress string          `json:"digitalAddress"`
}

type PlaceOrderOut struct {
	ID         uint            `json:"id"`
	OrderID    string          `json:"orderId"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Status     string          `json:"status"`
}

type OrderItemOut struct {
	ID           uint            `json:"id"`
	Dish         string          `json:"dish"`
	Quantity     int             `json:"quantity"`
	SpecialNotes string          `json:"specialNotes"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
}

type OrderDetail struct {
	ID            uint                  `json:"id"`
	OrderID       string                `json:"orderId"`
	TotalPrice    decimal.Decimal       `json:"totalPrice"`
	Paid          bool                  `json:"paid"`
	CurrentStatus string                `json:"currentStatus"`
	CreatedAt     time.Time             `json:"createdAt"`
	Items         []OrderItemOut        `json:"items"`
	StatusLog     []entity.OrderStatus  `json:"statusLog"`
	Payments      []entity.OrderPayment `json:"payments"`
}

// ----- Placement -----

// PlaceOrder converts the client's open cart into an order in one
// all-or-nothing transaction: order row, one order item per cart item,
// freshly computed total, the initial Pending status row, and the cart
// flipped to purchased. Any failure mid-sequence aborts the whole thing.
func (s *OrderService) PlaceOrder(clientID uint, in *PlaceOrderIn) (*PlaceOrderOut, error) {
	cart, err := s.CartRepo.GetOpenCartWithItems(clientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Field("cart", "No active cart available for placing an order.")
	}
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperr.Field("cart", "The cart does not contain any items.")
	}

	var out PlaceOrderOut
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			OrderID:        uuid.NewString(),
			ClientID:       clientID,
			TotalPrice:     decimal.Zero,
			DeliveryFee:    in.DeliveryFee,
			Tax:            in.Tax,
			LocationName:   in.LocationName,
			DigitalAddress: in.DigitalAddress,
			CurrentStatus:  entity.StatusPending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		total := decimal.Zero
		for i := range cart.Items {
			ci := &cart.Items[i]
			t, err := CartItemTotal(ci)
			if err != nil {
				return err
			}
			oi := entity.OrderItem{
				OrderID:    order.ID,
				CartItemID: ci.ID,
				Quantity:   ci.Quantity,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			total = total.Add(t)
		}
		if err := s.Repo.SaveTotal(tx, order.ID, total.Round(2)); err != nil {
			return err
		}

		if err := s.Repo.AppendStatus(tx, order.ID, entity.StatusPending); err != nil {
			return err
		}

		affected, err := s.CartRepo.MarkPurchased(tx, cart.ID, cart.Version)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.New(apperr.Conflict, "cart was modified concurrently")
		}

		out = PlaceOrderOut{
			ID:         order.ID,
			OrderID:    order.OrderID,
			TotalPrice: total.Round(2),
			Status:     entity.StatusPending,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Notify.OrderPlaced(out.OrderID, clientID, out.TotalPrice)
	return &out, nil
}

// ----- Reads -----

func (s *OrderService) ListForClient(clientID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForClient(clientID, limit)
}

type OrderListOut struct {
	Items []repository.OrderSummary `json:"items"`
	Total int64                     `json:"total"`
	Page  int                       `json:"page"`
	Limit int                       `json:"limit"`
}

func (s *OrderService) List(clientID, dispatchID *uint, page, limit int) (*OrderListOut, error) {
	items, total, err := s.Repo.ListOrders(clientID, dispatchID, page, limit)
	if err != nil {
		return nil, err
	}
	return &OrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// Detail returns the order with live-priced items, the append-only status
// log, and the payment rows. Only participants may look.
func (s *OrderService) Detail(orderID uint, userID uint, role string) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "order not found")
	}
	if err != nil {
		return nil, err
	}
	return s.detail(o, userID, role)
}

// DetailByPublicID resolves the public order token shared with clients.
func (s *OrderService) DetailByPublicID(publicID string, userID uint, role string) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderByPublicID(publicID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "order not found")
	}
	if err != nil {
		return nil, err
	}
	return s.detail(o, userID, role)
}

func (s *OrderService) detail(o *entity.Order, userID uint, role string) (*OrderDetail, error) {
	if err := s.authorizeParticipant(o, userID, role); err != nil {
		return nil, err
	}

	items, err := s.Repo.GetOrderItemsPriced(s.DB, o.ID)
	if err != nil {
		return nil, err
	}
	outItems := make([]OrderItemOut, 0, len(items))
	for i := range items {
		t, err := OrderItemTotal(&items[i])
		if err != nil {
			return nil, err
		}
		outItems = append(outItems, OrderItemOut{
			ID:           items[i].ID,
			Dish:         items[i].CartItem.Dish.Name,
			Quantity:     items[i].Quantity,
			SpecialNotes: items[i].CartItem.SpecialNotes,
			TotalPrice:   t,
		})
	}

	statusLog, err := s.Repo.GetStatusLog(o.ID)
	if err != nil {
		return nil, err
	}
	payments, err := s.Repo.ListPayments(o.ID, false)
	if err != nil {
		return nil, err
	}

	return &OrderDetail{
		ID:            o.ID,
		OrderID:       o.OrderID,
		TotalPrice:    o.TotalPrice,
		Paid:          o.Paid,
		CurrentStatus: o.CurrentStatus,
		CreatedAt:     o.CreatedAt,
		Items:         outItems,
		StatusLog:     statusLog,
		Payments:      payments,
	}, nil
}

// RecomputeTotal re-derives the stored total from the live item rows and
// persists it. Reads and recomputes must always agree; a desync would be an
// InvalidState bug in whoever mutated items without calling this.
func (s *OrderService) RecomputeTotal(tx *gorm.DB, orderID uint) (decimal.Decimal, error) {
	items, err := s.Repo.GetOrderItemsPriced(tx, orderID)
	if err != nil {
		return decimal.Zero, err
	}
	total, err := OrderTotal(items)
	if err != nil {
		return decimal.Zero, err
	}
	if err := s.Repo.SaveTotal(tx, orderID, total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// authorizeParticipant allows the order's client, its assigned driver, and
// chef/admin staff.
func (s *OrderService) authorizeParticipant(o *entity.Order, userID uint, role string) error {
	switch role {
	case entity.RoleAdmin, entity.RoleChef:
		return nil
	case entity.RoleDispatch:
		d, err := s.UserRepo.DriverForUser(userID)
		if err != nil {
			return apperr.New(apperr.Forbidden, "you do not have permission to view this order")
		}
		if o.DispatchDriverID == nil || *o.DispatchDriverID != d.ID {
			return apperr.New(apperr.Forbidden, "you do not have permission to view this order")
		}
		return nil
	default:
		c, err := s.UserRepo.ClientForUser(userID)
		if err != nil || c.ID != o.ClientID {
			return apperr.New(apperr.Forbidden, "you do not have permission to view this order")
		}
		return nil
	}
}
