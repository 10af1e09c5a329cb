package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Showcase/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Showcase/internal/usecase/contract"
)

// GalleryHandler serves the public portfolio feed.
type GalleryHandler struct {
	galleryUC usecasecontract.IGalleryUseCase
	logger    usecasecontract.IAppLogger
}

func NewGalleryHandler(galleryUC usecasecontract.IGalleryUseCase, logger usecasecontract.IAppLogger) *GalleryHandler {
	return &GalleryHandler{galleryUC: galleryUC, logger: logger}
}

// ListGallery handles GET /gallery?search=&type=&category=&page=&page_size=
func (h *GalleryHandler) ListGallery(c *gin.Context) {
	var q dto.GalleryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "page and page_size must be integers")
		return
	}

	page, err := h.galleryUC.ListGalleryItems(c.Request.Context(), q.ToFilter())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, page)
}

func (h *GalleryHandler) ListCategories(c *gin.Context) {
	categories, err := h.galleryUC.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"categories": categories})
}
