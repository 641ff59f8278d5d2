package handlers

import (
	"net/http"

	"lms_backend/internal/middleware"
	"lms_backend/internal/models"
	"lms_backend/internal/repositories"
	"lms_backend/internal/services"
	"lms_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.POST("", h.Create)
		payments.GET("", h.List)
		payments.GET("/sessions/:sessionId", h.CheckStatus)
	}
}

func (h *PaymentHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.paymentService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// List returns the caller's payments. Supports filtering by paid course,
// paid lesson and payment type, plus ordering by creation date.
func (h *PaymentHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	page, pageSize := ParsePagination(c)

	filter := repositories.PaymentFilter{
		PaidCourseID: c.Query("paid_course"),
		PaidLessonID: c.Query("paid_lesson"),
		PaymentType:  models.PaymentType(c.Query("payment_type")),
		OrderDesc:    c.Query("ordering") == "-created_at",
		Page:         page,
		PageSize:     pageSize,
	}

	resp, err := h.paymentService.List(userID, filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) CheckStatus(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}
	sessionID := c.Param("sessionId")

	resp, err := h.paymentService.CheckStatus(sessionID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
