package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/woedy/weekend-chef-backend/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderByPublicID resolves the public order token.
func (r *OrderRepository) GetOrderByPublicID(publicID string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("order_id = ?", publicID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID            uint            `json:"id"`
	OrderID       string          `json:"orderId"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	Paid          bool            `json:"paid"`
	CurrentStatus string          `json:"currentStatus"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForClient(clientID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, order_id, total_price, paid, current_status, created_at").
		Where("client_id = ?", clientID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) ListOrders(clientID, dispatchID *uint, page, limit int) ([]OrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	q := r.DB.Model(&entity.Order{})
	if clientID != nil && *clientID != 0 {
		q = q.Where("client_id = ?", *clientID)
	}
	if dispatchID != nil && *dispatchID != 0 {
		q = q.Where("dispatch_driver_id = ?", *dispatchID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []OrderSummary
	err := q.Select("id, order_id, total_price, paid, current_status, created_at").
		Order("id DESC").Limit(limit).Offset(offset).
		Scan(&out).Error
	return out, total, err
}

// GetOrderItemsPriced preloads the snapshotted cart items and their live
// dish/customization rows so totals can be derived without copied prices.
// Takes the handle explicitly so recomputation can read inside a write
// transaction.
func (r *OrderRepository) GetOrderItemsPriced(db *gorm.DB, orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := db.Where("order_id = ?", orderID).
		Preload("CartItem").
		Preload("CartItem.Dish").
		Preload("CartItem.Customizations").
		Preload("CartItem.Customizations.CustomizationOption").
		Find(&items).Error
	return items, err
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// SaveTotal persists a freshly recomputed total onto the order row.
func (r *OrderRepository) SaveTotal(tx *gorm.DB, orderID uint, total decimal.Decimal) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("total_price", total).Error
}

func (r *OrderRepository) SetPaid(tx *gorm.DB, orderID uint, paid bool) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("paid", paid).Error
}

func (r *OrderRepository) AssignDriver(tx *gorm.DB, orderID, driverID uint) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("dispatch_driver_id", driverID).Error
}

// ---------------- Status log ----------------

func (r *OrderRepository) AppendStatus(tx *gorm.DB, orderID uint, status string) error {
	return tx.Create(&entity.OrderStatus{OrderID: orderID, Status: status}).Error
}

// UpdateStatusGuard advances the denormalized current status only when the
// order still sits in the expected state. Zero rows affected means the
// transition lost a race or was never legal.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND current_status = ?", orderID, from).
		Update("current_status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) GetStatusLog(orderID uint) ([]entity.OrderStatus, error) {
	var rows []entity.OrderStatus
	err := r.DB.Where("order_id = ?", orderID).Order("id ASC").Find(&rows).Error
	return rows, err
}

// ---------------- Payments ----------------

func (r *OrderRepository) CreatePayment(tx *gorm.DB, p *entity.OrderPayment) error {
	return tx.Create(p).Error
}

func (r *OrderRepository) GetPayment(paymentID uint) (*entity.OrderPayment, error) {
	var p entity.OrderPayment
	if err := r.DB.First(&p, paymentID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *OrderRepository) SavePayment(tx *gorm.DB, p *entity.OrderPayment) error {
	return tx.Save(p).Error
}

// DeactivatePayment soft-deletes; the row stays for reconciliation.
func (r *OrderRepository) DeactivatePayment(tx *gorm.DB, paymentID uint) error {
	return tx.Model(&entity.OrderPayment{}).Where("id = ?", paymentID).
		Update("active", false).Error
}

func (r *OrderRepository) ListPayments(orderID uint, activeOnly bool) ([]entity.OrderPayment, error) {
	q := r.DB.Where("order_id = ?", orderID)
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var rows []entity.OrderPayment
	err := q.Order("id ASC").Find(&rows).Error
	return rows, err
}

// ---------------- Order item lookups ----------------

func (r *OrderRepository) GetOrderItemPriced(orderID, itemID uint) (*entity.OrderItem, error) {
	var oi entity.OrderItem
	err := r.DB.Where("id = ? AND order_id = ?", itemID, orderID).
		Preload("CartItem").
		Preload("CartItem.Dish").
		Preload("CartItem.Dish.Ingredients").
		Preload("CartItem.Customizations").
		Preload("CartItem.Customizations.CustomizationOption").
		First(&oi).Error
	if err != nil {
		return nil, err
	}
	return &oi, nil
}
