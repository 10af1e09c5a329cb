package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
	dto "github.com/mikiasgoitom/Showcase/internal/handler/http/dto"
)

func strPtr(s string) *string { return &s }

func TestPublicProjects_HideUnpublished(t *testing.T) {
	r := setupRouter(newTestDeps())

	w := doRequest(r, http.MethodGet, "/api/v1/projects", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	projects := decode(t, w)["projects"].([]interface{})
	require.Len(t, projects, 1)
	assert.Equal(t, "p-pub", projects[0].(map[string]interface{})["id"])

	w = doRequest(r, http.MethodGet, "/api/v1/projects/p-pub", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/projects/p-draft", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicVideos_OnlyActive(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doRequest(r, http.MethodGet, "/api/v1/videos", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, d.content.LastStatus)
	assert.Equal(t, entity.ContentStatusActive, *d.content.LastStatus)
	assert.Len(t, decode(t, w)["videos"], 1)

	w = doRequest(r, http.MethodGet, "/api/v1/videos/v-off", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminProjects(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doRequest(r, http.MethodGet, "/api/v1/admin/projects", nil, "admin-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["projects"], 2)

	w = doRequest(r, http.MethodGet, "/api/v1/admin/projects?status=draft", nil, "admin-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["projects"], 1)

	w = doRequest(r, http.MethodGet, "/api/v1/admin/projects/p-draft", nil, "admin-token")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/admin/projects", nil, "user-token")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateProject(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doRequest(r, http.MethodPost, "/api/v1/admin/projects", dto.CreateProjectRequest{
		Title:    "Rebrand",
		Category: "Branding",
		ImageURL: "https://cdn.example.com/rebrand.jpg",
	}, "admin-token")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "p-new", decode(t, w)["id"])

	w = doRequest(r, http.MethodPost, "/api/v1/admin/projects", dto.CreateProjectRequest{Category: "Branding"}, "admin-token")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title is required")

	w = doRequest(r, http.MethodPost, "/api/v1/admin/projects", dto.CreateProjectRequest{Title: "x", Category: "Branding", Status: "live"}, "admin-token")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	d.content.ShouldFailCreate = true
	w = doRequest(r, http.MethodPost, "/api/v1/admin/projects", dto.CreateProjectRequest{Title: "x", Category: "All"}, "admin-token")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProject(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doRequest(r, http.MethodPut, "/api/v1/admin/projects/p-draft", dto.UpdateProjectRequest{
		Title:  strPtr("Renamed"),
		Status: strPtr("published"),
	}, "admin-token")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Renamed", decode(t, w)["title"])
	require.NotNil(t, d.content.LastProjectPatch.Status)
	assert.Equal(t, entity.ContentStatusPublished, *d.content.LastProjectPatch.Status)
	assert.Nil(t, d.content.LastProjectPatch.Category)

	w = doRequest(r, http.MethodPut, "/api/v1/admin/projects/missing", dto.UpdateProjectRequest{Title: strPtr("x")}, "admin-token")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProject(t *testing.T) {
	r := setupRouter(newTestDeps())

	w := doRequest(r, http.MethodDelete, "/api/v1/admin/projects/p-pub", nil, "admin-token")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodDelete, "/api/v1/admin/projects/p-pub", nil, "admin-token")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminVideos(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doRequest(r, http.MethodPost, "/api/v1/admin/videos", dto.CreateVideoRequest{
		Title:     "Launch film",
		Category:  "Film",
		SourceURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	}, "admin-token")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodPost, "/api/v1/admin/videos", dto.CreateVideoRequest{Title: "x", Category: "Film", SourceURL: "not a url"}, "admin-token")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "source_url must be a valid url")

	w = doRequest(r, http.MethodPut, "/api/v1/admin/videos/v-on", dto.UpdateVideoRequest{SourceURL: strPtr("https://youtu.be/dQw4w9WgXcQ")}, "admin-token")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, d.content.LastVideoPatch.SourceURL)

	w = doRequest(r, http.MethodGet, "/api/v1/admin/videos?status=inactive", nil, "admin-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["videos"], 1)

	w = doRequest(r, http.MethodDelete, "/api/v1/admin/videos/v-off", nil, "admin-token")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContent_StorageFailure(t *testing.T) {
	d := newTestDeps()
	d.content.ShouldFailList = true
	r := setupRouter(d)

	w := doRequest(r, http.MethodGet, "/api/v1/projects", nil, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decode(t, w)["error"])
}
