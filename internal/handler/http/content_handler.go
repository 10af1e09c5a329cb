package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
	"github.com/mikiasgoitom/Showcase/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Showcase/internal/usecase/contract"
)

// ContentHandler exposes projects and videos. Public reads only see
// published items; the admin routes see everything.
type ContentHandler struct {
	contentUC usecasecontract.IContentUseCase
	logger    usecasecontract.IAppLogger
}

func NewContentHandler(contentUC usecasecontract.IContentUseCase, logger usecasecontract.IAppLogger) *ContentHandler {
	return &ContentHandler{contentUC: contentUC, logger: logger}
}

// statusQuery reads ?status=; the usecase rejects values outside the
// content type's status set.
func statusQuery(c *gin.Context) *entity.ContentStatus {
	raw := c.Query("status")
	if raw == "" {
		return nil
	}
	s := entity.ContentStatus(raw)
	return &s
}

// Public reads

func (h *ContentHandler) ListPublicProjects(c *gin.Context) {
	projects, err := h.contentUC.ListProjects(c.Request.Context(), nil)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	public := make([]*entity.Project, 0, len(projects))
	for _, p := range projects {
		if p.IsPublic() {
			public = append(public, p)
		}
	}
	SuccessHandler(c, http.StatusOK, gin.H{"projects": public})
}

func (h *ContentHandler) GetPublicProject(c *gin.Context) {
	project, err := h.contentUC.GetProject(c.Request.Context(), c.Param("id"))
	if err == nil && !project.IsPublic() {
		err = entity.ErrNotFound
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, project)
}

func (h *ContentHandler) ListPublicVideos(c *gin.Context) {
	active := entity.ContentStatusActive
	videos, err := h.contentUC.ListVideos(c.Request.Context(), &active)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"videos": videos})
}

func (h *ContentHandler) GetPublicVideo(c *gin.Context) {
	video, err := h.contentUC.GetVideo(c.Request.Context(), c.Param("id"))
	if err == nil && !video.IsPublic() {
		err = entity.ErrNotFound
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, video)
}

// Admin projects

func (h *ContentHandler) ListProjects(c *gin.Context) {
	projects, err := h.contentUC.ListProjects(c.Request.Context(), statusQuery(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"projects": projects})
}

func (h *ContentHandler) GetProject(c *gin.Context) {
	project, err := h.contentUC.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, project)
}

func (h *ContentHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	project, err := h.contentUC.CreateProject(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, project)
}

func (h *ContentHandler) UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	project, err := h.contentUC.UpdateProject(c.Request.Context(), c.Param("id"), req.ToPatch())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, project)
}

func (h *ContentHandler) DeleteProject(c *gin.Context) {
	if err := h.contentUC.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Project deleted")
}

// Admin videos

func (h *ContentHandler) ListVideos(c *gin.Context) {
	videos, err := h.contentUC.ListVideos(c.Request.Context(), statusQuery(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"videos": videos})
}

func (h *ContentHandler) GetVideo(c *gin.Context) {
	video, err := h.contentUC.GetVideo(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, video)
}

func (h *ContentHandler) CreateVideo(c *gin.Context) {
	var req dto.CreateVideoRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	video, err := h.contentUC.CreateVideo(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, video)
}

func (h *ContentHandler) UpdateVideo(c *gin.Context) {
	var req dto.UpdateVideoRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	video, err := h.contentUC.UpdateVideo(c.Request.Context(), c.Param("id"), req.ToPatch())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, video)
}

func (h *ContentHandler) DeleteVideo(c *gin.Context) {
	if err := h.contentUC.DeleteVideo(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Video deleted")
}
