package services

import (
	"log"

	"github.com/shopspring/decimal"
)

// Notifier is the boundary to the external email/SMS sink. Delivery is
// fire-and-forget: it runs after the transaction commits and its failure
// never rolls anything back.
type Notifier interface {
	OrderPlaced(orderID string, clientID uint, total decimal.Decimal)
	OrderStatusChanged(orderID string, from, to string)
}

// LogNotifier writes the events to the process log. The real delivery
// channel lives outside this service.
type LogNotifier struct{}

func (LogNotifier) OrderPlaced(orderID string, clientID uint, total decimal.Decimal) {
	log.Printf("notify: order %s placed by client %d, total %s", orderID, clientID, total.StringFixed(2))
}

func (LogNotifier) OrderStatusChanged(orderID string, from, to string) {
	log.Printf("notify: order %s status %s -> %s", orderID, from, to)
}
