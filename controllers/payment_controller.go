package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/woedy/weekend-chef-backend/pkg/resp"
	"github.com/woedy/weekend-chef-backend/services"
	"github.com/woedy/weekend-chef-backend/utils"
)

type PaymentController struct{ Svc *services.OrderService }

func NewPaymentController(s *services.OrderService) *PaymentController {
	return &PaymentController{Svc: s}
}

// POST /orders/:id/payments
func (h *PaymentController) Record(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req services.RecordPaymentIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.RecordPayment(uint(orderID), utils.CurrentUserID(c), utils.CurrentRole(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// PATCH /payments/:id
func (h *PaymentController) Update(c *gin.Context) {
	paymentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid payment id")
		return
	}
	var req services.UpdatePaymentIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.UpdatePayment(uint(paymentID), utils.CurrentUserID(c), utils.CurrentRole(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /payments/:id — soft delete, the row stays for reconciliation.
func (h *PaymentController) Delete(c *gin.Context) {
	paymentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid payment id")
		return
	}
	if err := h.Svc.DeletePayment(uint(paymentID), utils.CurrentUserID(c), utils.CurrentRole(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
