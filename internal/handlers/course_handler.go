package handlers

import (
	"net/http"

	"lms_backend/internal/middleware"
	"lms_backend/internal/services"
	"lms_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	*BaseHandler
	courseService services.CourseService
}

func NewCourseHandler(base *BaseHandler, courseService services.CourseService) *CourseHandler {
	return &CourseHandler{
		BaseHandler:   base,
		courseService: courseService,
	}
}

func (h *CourseHandler) RegisterRoutes(r *gin.RouterGroup) {
	courses := r.Group("/courses")
	courses.Use(middleware.AuthMiddleware())
	{
		courses.POST("", h.Create)
		courses.GET("", h.List)
		courses.GET("/:courseId", h.Get)
		courses.PATCH("/:courseId", h.Update)
		courses.DELETE("/:courseId", h.Delete)
	}
}

func (h *CourseHandler) Create(c *gin.Context) {
	userID, role, ok := h.GetCallerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateCourseRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.courseService.Create(userID, role, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *CourseHandler) List(c *gin.Context) {
	userID, role, ok := h.GetCallerIdentity(c)
	if !ok {
		return
	}
	page, pageSize := ParsePagination(c)

	resp, err := h.courseService.List(userID, role, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CourseHandler) Get(c *gin.Context) {
	userID, role, ok := h.GetCallerIdentity(c)
	if !ok {
		return
	}
	courseID := c.Param("courseId")

	resp, err := h.courseService.Get(userID, role, courseID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CourseHandler) Update(c *gin.Context) {
	userID, role, ok := h.GetCallerIdentity(c)
	if !ok {
		return
	}
	courseID := c.Param("courseId")

	var req dto.UpdateCourseRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.courseService.Update(userID, role, courseID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CourseHandler) Delete(c *gin.Context) {
	userID, role, ok := h.GetCallerIdentity(c)
	if !ok {
		return
	}
	courseID := c.Param("courseId")

	if err := h.courseService.Delete(userID, role, courseID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course deleted successfully"})
}
