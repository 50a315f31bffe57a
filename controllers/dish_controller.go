package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/woedy/weekend-chef-backend/pkg/resp"
	"github.com/woedy/weekend-chef-backend/services"
	"github.com/woedy/weekend-chef-backend/utils"
)

type DishController struct{ Svc *services.CatalogService }

func NewDishController(s *services.CatalogService) *DishController { return &DishController{Svc: s} }

// GET /categories
func (h *DishController) ListCategories(c *gin.Context) {
	cats, err := h.Svc.ListCategories()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /categories
func (h *DishController) CreateCategory(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.CreateCategory(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cat)
}

// GET /dishes — ?search= &categoryId= &archived=true &page= &limit=
func (h *DishController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	archived := c.Query("archived") == "true"

	var categoryID *uint
	if v, err := strconv.ParseUint(c.Query("categoryId"), 10, 32); err == nil {
		id := uint(v)
		categoryID = &id
	}

	out, err := h.Svc.ListDishes(c.Query("search"), categoryID, archived, page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /dishes/:id
func (h *DishController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	dish, err := h.Svc.DishDetail(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, dish)
}

// POST /dishes
func (h *DishController) Create(c *gin.Context) {
	var req services.DishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dish, err := h.Svc.CreateDish(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, dish)
}

// PATCH /dishes/:id
func (h *DishController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	var req services.DishUpdateIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dish, err := h.Svc.UpdateDish(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, dish)
}

// PATCH /dishes/:id/archive
func (h *DishController) Archive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	if err := h.Svc.SetDishArchived(uint(id), true); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"archived": true})
}

// PATCH /dishes/:id/unarchive
func (h *DishController) Unarchive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	if err := h.Svc.SetDishArchived(uint(id), false); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"archived": false})
}

// DELETE /dishes/:id — soft delete via active=false.
func (h *DishController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	if err := h.Svc.DeleteDish(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
