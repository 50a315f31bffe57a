package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/woedy/weekend-chef-backend/pkg/resp"
	"github.com/woedy/weekend-chef-backend/services"
)

type CustomOptionController struct{ Svc *services.CatalogService }

func NewCustomOptionController(s *services.CatalogService) *CustomOptionController {
	return &CustomOptionController{Svc: s}
}

// GET /custom-options — ?archived=true &search=
func (h *CustomOptionController) List(c *gin.Context) {
	archived := c.Query("archived") == "true"
	opts, err := h.Svc.ListOptions(archived, c.Query("search"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, opts)
}

// GET /custom-options/:optionId
func (h *CustomOptionController) Detail(c *gin.Context) {
	opt, err := h.Svc.OptionDetail(c.Param("optionId"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, opt)
}

// POST /custom-options
func (h *CustomOptionController) Create(c *gin.Context) {
	var req services.OptionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	opt, err := h.Svc.CreateOption(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, opt)
}

// PATCH /custom-options/:optionId
func (h *CustomOptionController) Update(c *gin.Context) {
	var req services.OptionUpdateIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	opt, err := h.Svc.UpdateOption(c.Param("optionId"), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, opt)
}

// PATCH /custom-options/:optionId/archive
func (h *CustomOptionController) Archive(c *gin.Context) {
	if err := h.Svc.SetOptionArchived(c.Param("optionId"), true); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"archived": true})
}

// PATCH /custom-options/:optionId/unarchive
func (h *CustomOptionController) Unarchive(c *gin.Context) {
	if err := h.Svc.SetOptionArchived(c.Param("optionId"), false); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"archived": false})
}

// DELETE /custom-options/:optionId — soft delete via active=false.
func (h *CustomOptionController) Delete(c *gin.Context) {
	if err := h.Svc.DeleteOption(c.Param("optionId")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
