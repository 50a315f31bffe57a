package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/woedy/weekend-chef-backend/entity"
	"github.com/woedy/weekend-chef-backend/pkg/apperr"
)

// Payments are additive bookkeeping against an order. Recording one never
// subtracts from the total and never flips the paid flag; that stays a
// manual admin step (MarkPaid).

type RecordPaymentIn struct {
	PaymentMethod string          `json:"paymentMethod" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
}

type UpdatePaymentIn struct {
	PaymentMethod *string          `json:"paymentMethod"`
	Amount        *decimal.Decimal `json:"amount"`
}

type PaymentOut struct {
	ID            uint            `json:"id"`
	OrderID       uint            `json:"orderId"`
	PaymentMethod string          `json:"paymentMethod"`
	Amount        decimal.Decimal `json:"amount"`
	Active        bool            `json:"active"`
	OrderTotal    decimal.Decimal `json:"orderTotal"`
}

// RecordPayment creates a payment row for the order and recomputes the
// stored total from the live items, reconciling any drift on the way.
func (s *OrderService) RecordPayment(orderID uint, userID uint, role string, in *RecordPaymentIn) (*PaymentOut, error) {
	fields := map[string][]string{}
	if in.PaymentMethod == "" {
		fields["paymentMethod"] = append(fields["paymentMethod"], "Payment method is required.")
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		fields["amount"] = append(fields["amount"], "Payment amount must be greater than 0.")
	}
	if len(fields) > 0 {
		return nil, apperr.FieldErrors(fields)
	}

	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "order not found")
	}
	if err != nil {
		return nil, err
	}
	if err := s.authorizePaymentActor(o, userID, role); err != nil {
		return nil, err
	}

	p := entity.OrderPayment{
		OrderID:       o.ID,
		PaymentMethod: in.PaymentMethod,
		Amount:        in.Amount.Round(2),
		Active:        true,
	}
	var total decimal.Decimal
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreatePayment(tx, &p); err != nil {
			return err
		}
		total, err = s.RecomputeTotal(tx, o.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &PaymentOut{
		ID:            p.ID,
		OrderID:       o.ID,
		PaymentMethod: p.PaymentMethod,
		Amount:        p.Amount,
		Active:        p.Active,
		OrderTotal:    total,
	}, nil
}

// UpdatePayment edits method and/or amount on an active payment.
func (s *OrderService) UpdatePayment(paymentID uint, userID uint, role string, in *UpdatePaymentIn) (*PaymentOut, error) {
	p, err := s.Repo.GetPayment(paymentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "payment not found")
	}
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, apperr.New(apperr.Conflict, "payment has been deleted")
	}

	o, err := s.Repo.GetOrder(p.OrderID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizePaymentActor(o, userID, role); err != nil {
		return nil, err
	}

	if in.Amount != nil && in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperr.Field("amount", "Payment amount must be greater than 0.")
	}
	if in.PaymentMethod != nil {
		p.PaymentMethod = *in.PaymentMethod
	}
	if in.Amount != nil {
		p.Amount = in.Amount.Round(2)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.SavePayment(tx, p)
	})
	if err != nil {
		return nil, err
	}

	return &PaymentOut{
		ID:            p.ID,
		OrderID:       p.OrderID,
		PaymentMethod: p.PaymentMethod,
		Amount:        p.Amount,
		Active:        p.Active,
		OrderTotal:    o.TotalPrice,
	}, nil
}

// DeletePayment soft-deletes: the row flips inactive and stays around.
func (s *OrderService) DeletePayment(paymentID uint, userID uint, role string) error {
	p, err := s.Repo.GetPayment(paymentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "payment not found")
	}
	if err != nil {
		return err
	}

	o, err := s.Repo.GetOrder(p.OrderID)
	if err != nil {
		return err
	}
	if err := s.authorizePaymentActor(o, userID, role); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeactivatePayment(tx, p.ID)
	})
}

// authorizePaymentActor allows admins and the order's own client.
func (s *OrderService) authorizePaymentActor(o *entity.Order, userID uint, role string) error {
	if role == entity.RoleAdmin {
		return nil
	}
	c, err := s.UserRepo.ClientForUser(userID)
	if err != nil || c.ID != o.ClientID {
		return apperr.New(apperr.Forbidden, "you do not have permission to manage payments for this order")
	}
	return nil
}
