package post

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jawa-agence/core/internal/middleware"
	"github.com/jawa-agence/core/internal/pkg/pagination"
	"github.com/jawa-agence/core/internal/pkg/response"
)

// Handler handles blog post HTTP requests.
type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts post routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	posts := rg.Group("/blog/posts")

	posts.GET("", h.list)
	posts.GET("/:identifier", h.get)

	authed := posts.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:identifier", h.update)
	authed.PATCH("/:identifier", h.update)
	authed.PATCH("/:identifier/publish", h.publish)
	authed.DELETE("/:identifier", h.delete)
}

// list GET /blog/posts?category=design&q=seo
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	isAdmin := middleware.IsAuthenticated(c)
	posts, pag, err := h.svc.List(q, lq, isAdmin)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	items := make([]postResponse, len(posts))
	for i, p := range posts {
		items[i] = toResponse(&p, false)
	}
	response.Paged(c, items, pag)
}

// get GET /blog/posts/:identifier — id or slug; public reads get the
// rendered HTML body.
func (h *Handler) get(c *gin.Context) {
	isAdmin := middleware.IsAuthenticated(c)
	post, err := h.svc.GetByIdentifier(c.Param("identifier"), isAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toResponse(post, !isAdmin))
}

func (h *Handler) create(c *gin.Context) {
	var dto CreatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.svc.Create(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toResponse(post, false))
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.svc.Update(c.Param("identifier"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toResponse(post, false))
}

// publish PATCH /blog/posts/:identifier/publish?published=false
func (h *Handler) publish(c *gin.Context) {
	published := true
	if raw, ok := c.GetQuery("published"); ok {
		if v, err := strconv.ParseBool(raw); err == nil {
			published = v
		}
	}
	post, err := h.svc.SetPublished(c.Param("identifier"), published)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toResponse(post, false))
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("identifier")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
