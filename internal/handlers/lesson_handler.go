package handlers

import (
	"net/http"

	"lms_backend/internal/middleware"
	"lms_backend/internal/services"
	"lms_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type LessonHandler struct {
	*BaseHandler
	lessonService services.LessonService
}

func NewLessonHandler(base *BaseHandler, lessonService services.LessonService) *LessonHandler {
	return &LessonHandler{
		BaseHandler:   base,
		lessonService: lessonService,
	}
}

func (h *LessonHandler) RegisterRoutes(r *gin.RouterGroup) {
	lessons := r.Group("/lessons")
	lessons.Use(middleware.AuthMiddleware())
	{
		lessons.POST("", h.Create)
		lessons.GET("", h.List)
		lessons.GET("/:lessonId", h.Get)
		lessons.PATCH("/:lessonId", h.Update)
		lessons.DELETE("/:lessonId", h.Delete)
	}
}

func (h *LessonHandler) Create(c *gin.Context) {
	userID, role, ok := h.GetCallerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateLessonRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.lessonService.Create(userID, role, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *LessonHandler) List(c *gin.Context) {
	userID, role, ok := h.GetCallerIdentity(c)
	if !ok {
		return
	}
	page, pageSize := ParsePagination(c)

	resp, err := h.lessonService.List(userID, role, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *LessonHandler) Get(c *gin.Context) {
	userID, role, ok := h.GetCallerIdentity(c)
	if !ok {
		return
	}
	lessonID := c.Param("lessonId")

	resp, err := h.lessonService.Get(userID, role, lessonID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *LessonHandler) Update(c *gin.Context) {
	userID, role, ok := h.GetCallerIdentity(c)
	if !ok {
		return
	}
	lessonID := c.Param("lessonId")

	var req dto.UpdateLessonRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.lessonService.Update(userID, role, lessonID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *LessonHandler) Delete(c *gin.Context) {
	userID, role, ok := h.GetCallerIdentity(c)
	if !ok {
		return
	}
	lessonID := c.Param("lessonId")

	if err := h.lessonService.Delete(userID, role, lessonID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lesson deleted successfully"})
}
