package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/woedy/weekend-chef-backend/entity"
	"github.com/woedy/weekend-chef-backend/pkg/apperr"
)

// The one true state machine. Delivered and Cancelled are terminal.
var statusTransitions = map[string][]string{
	entity.StatusPending:   {entity.StatusShipped, entity.StatusCancelled},
	entity.StatusShipped:   {entity.StatusDelivered},
	entity.StatusDelivered: {},
	entity.StatusCancelled: {},
}

func transitionAllowed(from, to string) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ChangeStatus appends an OrderStatus row and advances the denormalized
// current status with a compare-and-swap on the expected source state.
// Staff (admin, chef) may drive any legal transition; a dispatch actor must
// be the driver assigned to the order.
func (s *OrderService) ChangeStatus(orderID uint, newStatus string, userID uint, role string) error {
	if _, ok := statusTransitions[newStatus]; !ok {
		return apperr.Field("status", "Unknown order status.")
	}

	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "order not found")
	}
	if err != nil {
		return err
	}

	switch role {
	case entity.RoleAdmin, entity.RoleChef:
	case entity.RoleDispatch:
		d, err := s.UserRepo.DriverForUser(userID)
		if err != nil || o.DispatchDriverID == nil || *o.DispatchDriverID != d.ID {
			return apperr.New(apperr.Forbidden, "you are not assigned to this order")
		}
	default:
		return apperr.New(apperr.Forbidden, "only staff may change order status")
	}

	from := o.CurrentStatus
	if !transitionAllowed(from, newStatus) {
		return apperr.Newf(apperr.Conflict, "cannot transition order from %s to %s", from, newStatus)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, from, newStatus)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.New(apperr.Conflict, "order status changed concurrently")
		}
		return s.Repo.AppendStatus(tx, o.ID, newStatus)
	})
	if err != nil {
		return err
	}

	s.Notify.OrderStatusChanged(o.OrderID, from, newStatus)
	return nil
}

// AssignDriver attaches a dispatch driver to an undelivered order.
func (s *OrderService) AssignDriver(orderID, driverID uint, role string) error {
	if role != entity.RoleAdmin && role != entity.RoleChef {
		return apperr.New(apperr.Forbidden, "only staff may assign drivers")
	}

	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "order not found")
	}
	if err != nil {
		return err
	}
	if o.CurrentStatus == entity.StatusDelivered || o.CurrentStatus == entity.StatusCancelled {
		return apperr.Newf(apperr.Conflict, "order is already %s", o.CurrentStatus)
	}

	if _, err := s.UserRepo.GetDriver(driverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Field("driverId", "Dispatch driver does not exist.").WithKind(apperr.NotFound)
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.AssignDriver(tx, o.ID, driverID)
	})
}

// MarkPaid flips the paid flag. Payments never do this automatically; it is
// a manual reconciliation step for admins.
func (s *OrderService) MarkPaid(orderID uint, paid bool, role string) error {
	if role != entity.RoleAdmin {
		return apperr.New(apperr.Forbidden, "only admins may reconcile payments")
	}
	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "order not found")
	}
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.SetPaid(tx, o.ID, paid)
	})
}
