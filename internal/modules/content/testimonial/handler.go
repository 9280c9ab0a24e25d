package testimonial

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jawa-agence/core/internal/middleware"
	"github.com/jawa-agence/core/internal/pkg/pagination"
	"github.com/jawa-agence/core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	testimonials := rg.Group("/testimonials")
	testimonials.GET("", h.list)
	testimonials.POST("/submit", h.submit) // public submission form

	authed := testimonials.Group("", authMW)
	authed.GET("/all", h.listAll)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.PATCH("/:id", h.update)
	authed.PATCH("/:id/approve", h.approve)
	authed.DELETE("/:id", h.delete)
}

// list GET /testimonials — approved records only, for the public site.
func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.ListVisible()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// listAll GET /testimonials/all?approved=false — moderation queue.
func (h *Handler) listAll(c *gin.Context) {
	q := pagination.FromContext(c)
	var approved *bool
	if raw, ok := c.GetQuery("approved"); ok {
		if v, err := strconv.ParseBool(raw); err == nil {
			approved = &v
		}
	}
	items, pag, err := h.svc.ListAll(q, approved)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, pag)
}

// submit POST /testimonials/submit — visitor path, never pre-approved.
func (h *Handler) submit(c *gin.Context) {
	var dto CreateTestimonialDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.svc.Create(&dto, false)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateTestimonialDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.svc.Create(&dto, middleware.IsAuthenticated(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateTestimonialDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item)
}

// approve PATCH /testimonials/:id/approve?approved=true
func (h *Handler) approve(c *gin.Context) {
	approved := true
	if raw, ok := c.GetQuery("approved"); ok {
		if v, err := strconv.ParseBool(raw); err == nil {
			approved = v
		}
	}
	item, err := h.svc.SetApproved(c.Param("id"), approved)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
