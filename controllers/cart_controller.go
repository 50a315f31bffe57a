package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/woedy/weekend-chef-backend/pkg/resp"
	"github.com/woedy/weekend-chef-backend/services"
	"github.com/woedy/weekend-chef-backend/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

func (h *CartController) clientID(c *gin.Context) (uint, bool) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return 0, false
	}
	client, err := h.Svc.UserRepo.ClientForUser(uid)
	if err != nil {
		resp.Forbidden(c, "no client profile for this user")
		return 0, false
	}
	return client.ID, true
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	clientID, ok := h.clientID(c)
	if !ok {
		return
	}
	cart, err := h.Svc.Get(clientID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /cart/items
func (h *CartController) AddItem(c *gin.Context) {
	clientID, ok := h.clientID(c)
	if !ok {
		return
	}
	var req services.AddItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, cartTotal, err := h.Svc.AddItem(clientID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"item": item, "cartTotal": cartTotal})
}

// PATCH /cart/items/:id
func (h *CartController) EditItem(c *gin.Context) {
	clientID, ok := h.clientID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var req services.EditItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, cartTotal, err := h.Svc.EditItem(clientID, uint(itemID), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"item": item, "cartTotal": cartTotal})
}

// DELETE /cart/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	clientID, ok := h.clientID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	cartTotal, err := h.Svc.RemoveItem(clientID, uint(itemID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cartTotal": cartTotal})
}

// DELETE /carts/:id
func (h *CartController) DeleteCart(c *gin.Context) {
	clientID, ok := h.clientID(c)
	if !ok {
		return
	}
	cartID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid cart id")
		return
	}
	if err := h.Svc.DeleteCart(clientID, uint(cartID)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
