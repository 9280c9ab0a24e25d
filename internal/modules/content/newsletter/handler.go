package newsletter

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jawa-agence/core/internal/pkg/pagination"
	"github.com/jawa-agence/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/newsletter/subscribe", h.subscribe)

	admin := rg.Group("/newsletter", authMW)
	{
		admin.GET("/subscribers", h.list)
		admin.GET("/subscribers/export", h.exportCSV)
		admin.PATCH("/subscribers/:id/active", h.setActive)
		admin.DELETE("/subscribers/:id", h.delete)
	}
}

func (h *Handler) subscribe(c *gin.Context) {
	var dto SubscribeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	sub, err := h.svc.Subscribe(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, sub)
}

func (h *Handler) list(c *gin.Context) {
	subs, p, err := h.svc.List(pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, subs, p)
}

func (h *Handler) exportCSV(c *gin.Context) {
	subs, err := h.svc.ListAll()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	filename := "subscribers-" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(ExportCSV(subs)))
}

func (h *Handler) setActive(c *gin.Context) {
	active, err := strconv.ParseBool(c.DefaultQuery("active", "true"))
	if err != nil {
		response.BadRequest(c, "active must be a boolean")
		return
	}
	sub, err := h.svc.SetActive(c.Param("id"), active)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sub)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
