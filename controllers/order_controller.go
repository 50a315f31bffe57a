package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/woedy/weekend-chef-backend/entity"
	"github.com/woedy/weekend-chef-backend/pkg/resp"
	"github.com/woedy/weekend-chef-backend/services"
	"github.com/woedy/weekend-chef-backend/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders — place an order from the caller's open cart.
func (h *OrderController) Place(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	client, err := h.Svc.UserRepo.ClientForUser(uid)
	if err != nil {
		resp.Forbidden(c, "no client profile for this user")
		return
	}

	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.PlaceOrder(client.ID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders — clients see their own orders; staff can filter.
func (h *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	switch role {
	case entity.RoleAdmin, entity.RoleChef:
		var clientID *uint
		if v, err := strconv.ParseUint(c.Query("clientId"), 10, 32); err == nil {
			id := uint(v)
			clientID = &id
		}
		out, err := h.Svc.List(clientID, nil, page, limit)
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, out)
	case entity.RoleDispatch:
		d, err := h.Svc.UserRepo.DriverForUser(uid)
		if err != nil {
			resp.Forbidden(c, "no driver profile for this user")
			return
		}
		out, err := h.Svc.List(nil, &d.ID, page, limit)
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, out)
	default:
		client, err := h.Svc.UserRepo.ClientForUser(uid)
		if err != nil {
			resp.Forbidden(c, "no client profile for this user")
			return
		}
		items, err := h.Svc.ListForClient(client.ID, limit)
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, gin.H{"items": items})
	}
}

// GET /orders/:id — accepts the numeric id or the public order token.
func (h *OrderController) Detail(c *gin.Context) {
	idParam := c.Param("id")
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	var out *services.OrderDetail
	orderID, err := strconv.ParseUint(idParam, 10, 32)
	if err == nil {
		out, err = h.Svc.Detail(uint(orderID), uid, role)
	} else {
		out, err = h.Svc.DetailByPublicID(idParam, uid, role)
	}
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /orders/:id/status
func (h *OrderController) ChangeStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.ChangeStatus(uint(orderID), body.Status, utils.CurrentUserID(c), utils.CurrentRole(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": body.Status})
}

// PATCH /orders/:id/driver
func (h *OrderController) AssignDriver(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var body struct {
		DriverID uint `json:"driverId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.AssignDriver(uint(orderID), body.DriverID, utils.CurrentRole(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"driverId": body.DriverID})
}

// PATCH /orders/:id/paid
func (h *OrderController) MarkPaid(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var body struct {
		Paid bool `json:"paid"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.MarkPaid(uint(orderID), body.Paid, utils.CurrentRole(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"paid": body.Paid})
}

// GET /orders/:id/items/:itemId/shopping-list
func (h *OrderController) ShoppingList(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	out, err := h.Svc.ShoppingList(uint(orderID), uint(itemID), utils.CurrentRole(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
