package asset

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/jawa-agence/core/internal/config"
	"github.com/jawa-agence/core/internal/pkg/apperr"
	"github.com/jawa-agence/core/internal/pkg/response"
)

// Handler exposes asset uploads to the admin editor. The upload and the
// record write that follows are two independent round trips: when the
// upload fails nothing is written, when the record write fails the
// uploaded object remains as an orphan.
type Handler struct {
	store Store
	opts  config.S3Options
}

func NewHandler(store Store, opts config.S3Options) *Handler {
	return &Handler{store: store, opts: opts}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/assets")
	g.POST("", authMW, h.upload)
}

// upload POST /assets?namespace=blog-covers
func (h *Handler) upload(c *gin.Context) {
	ns := NamespaceUploads
	if c.Query("namespace") == string(NamespaceBlogCovers) {
		ns = NamespaceBlogCovers
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if err := validateFile(fileHeader.Filename, fileHeader.Size, h.opts.AllowedFormats, h.opts.MaxSizeMB); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer file.Close()
	payload, err := io.ReadAll(file)
	if err != nil {
		response.Error(c, apperr.Upload(err))
		return
	}

	contentType := detectContentType(fileHeader.Filename, payload, fileHeader.Header.Get("Content-Type"))
	url, err := h.store.Upload(c.Request.Context(), ns, fileHeader.Filename, payload, contentType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"url":       url,
		"namespace": string(ns),
	})
}
