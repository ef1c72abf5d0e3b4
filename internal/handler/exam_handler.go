package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/study-planner-api/internal/models"
	"github.com/noah-isme/study-planner-api/internal/syllabus"
	"github.com/noah-isme/study-planner-api/pkg/response"
)

type examCatalog interface {
	FindByID(id string) (models.Exam, error)
	List(category string) []models.Exam
	Search(query string) []models.Exam
	Categories() []models.ExamCategory
}

// ExamHandler exposes the built-in exam syllabus catalog.
type ExamHandler struct {
	catalog examCatalog
}

// NewExamHandler constructs the handler.
func NewExamHandler(provider *syllabus.Provider) *ExamHandler {
	return &ExamHandler{catalog: provider}
}

// List godoc
// @Summary List available exams
// @Tags Exams
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} response.Envelope
// @Router /exams [get]
func (h *ExamHandler) List(c *gin.Context) {
	exams := h.catalog.List(c.Query("category"))
	response.JSON(c, http.StatusOK, exams, nil)
}

// Get godoc
// @Summary Get one exam with its full syllabus
// @Tags Exams
// @Produce json
// @Param id path string true "Exam ID"
// @Success 200 {object} response.Envelope
// @Router /exams/{id} [get]
func (h *ExamHandler) Get(c *gin.Context) {
	exam, err := h.catalog.FindByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exam, nil)
}

// Search godoc
// @Summary Search exams by name, code or subject
// @Tags Exams
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} response.Envelope
// @Router /exams/search [get]
func (h *ExamHandler) Search(c *gin.Context) {
	exams := h.catalog.Search(c.Query("q"))
	response.JSON(c, http.StatusOK, exams, nil)
}

// Categories godoc
// @Summary List exam categories with counts
// @Tags Exams
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /exam-categories [get]
func (h *ExamHandler) Categories(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.catalog.Categories(), nil)
}
