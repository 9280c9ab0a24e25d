package pricing

import (
	"github.com/gin-gonic/gin"
	"github.com/jawa-agence/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	plans := rg.Group("/pricing")
	plans.GET("", h.list)
	plans.GET("/:id", h.get)

	// join resolution for a service's public pricing section
	rg.GET("/services/:id/pricing", h.forService)

	authed := plans.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.PATCH("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

// list GET /pricing?category=Web%20Design — category is an exact match.
func (h *Handler) list(c *gin.Context) {
	var category *string
	if v, ok := c.GetQuery("category"); ok {
		category = &v
	}
	plans, err := h.svc.List(category)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, plans)
}

func (h *Handler) forService(c *gin.Context) {
	plans, err := h.svc.ResolveForServiceID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, plans)
}

func (h *Handler) get(c *gin.Context) {
	plan, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, plan)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreatePlanDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	plan, err := h.svc.Create(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, plan)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdatePlanDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	plan, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, plan)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
