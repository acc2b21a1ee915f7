package handlers

import (
	"errors"
	"net/http"

	"studyhub-backend/internal/application/usecase"
	"studyhub-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	payments *usecase.PaymentUseCase
}

func NewPaymentHandler(payments *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// currentUser достает ID пользователя, который положил AuthMiddleware
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return uuid.Nil, false
	}
	return id, true
}

func parseCourseIDs(raw []string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (h *PaymentHandler) Capture(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Courses []string `json:"courses"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide Course IDs."})
		return
	}

	courseIDs, err := parseCourseIDs(req.Courses)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide Course IDs."})
		return
	}

	order, err := h.payments.Capture(c, userID, courseIDs)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyOrder):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide Course IDs."})
		case errors.Is(err, domain.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Course not found."})
		case errors.Is(err, domain.ErrAlreadyEnrolled):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Already enrolled."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Order initiation failed."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":       order.ID,
			"amount":   order.Amount,
			"currency": order.Currency,
		},
	})
}

func (h *PaymentHandler) Verify(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		OrderID   string   `json:"razorpay_order_id"`
		PaymentID string   `json:"razorpay_payment_id"`
		Signature string   `json:"razorpay_signature"`
		Courses   []string `json:"courses"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment verification failed."})
		return
	}

	courseIDs, err := parseCourseIDs(req.Courses)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment verification failed."})
		return
	}

	outcome, err := h.payments.Verify(c, userID, req.OrderID, req.PaymentID, req.Signature, courseIDs)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment verification failed."})
		case errors.Is(err, domain.ErrInvalidSignature):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid signature."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		}
		return
	}

	enrolled := make([]string, 0, len(outcome.Enrolled))
	for _, id := range outcome.Enrolled {
		enrolled = append(enrolled, id.String())
	}
	failed := make([]gin.H, 0, len(outcome.Failed))
	for _, f := range outcome.Failed {
		failed = append(failed, gin.H{"course_id": f.CourseID.String(), "reason": f.Reason})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": outcome.AllSucceeded(),
		"message": "Payment verified.",
		"data": gin.H{
			"enrolled": enrolled,
			"failed":   failed,
		},
	})
}

func (h *PaymentHandler) SendSuccessEmail(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		OrderID   string `json:"orderId"`
		PaymentID string `json:"paymentId"`
		Amount    int    `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Incomplete payment details."})
		return
	}

	err := h.payments.SendSuccessEmail(c, userID, req.OrderID, req.PaymentID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Incomplete payment details."})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not send email."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email sent successfully."})
}
