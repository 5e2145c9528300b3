// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// CheckoutHandler handles the checkout wizard endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// SelectShippingMethodRequest represents a shipping method selection
type SelectShippingMethodRequest struct {
	MethodID string `json:"method_id" binding:"required"`
}

// Begin handles POST /checkout
func (h *CheckoutHandler) Begin(c *gin.Context) {
	session, err := h.checkoutService.Begin(middleware.GetSessionID(c))
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Your cart is empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to start checkout",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Checkout started",
		"data":    checkoutResponse(session),
	})
}

// GetCheckout handles GET /checkout
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	session, ok := h.checkoutService.Current(middleware.GetSessionID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No checkout in progress",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout retrieved successfully",
		"data":    checkoutResponse(session),
	})
}

// Abandon handles DELETE /checkout
func (h *CheckoutHandler) Abandon(c *gin.Context) {
	h.checkoutService.Abandon(middleware.GetSessionID(c))

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout abandoned",
	})
}

// Advance handles POST /checkout/advance
func (h *CheckoutHandler) Advance(c *gin.Context) {
	session, ok := h.checkoutService.Current(middleware.GetSessionID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No checkout in progress",
		})
		return
	}

	session.Advance()

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout advanced",
		"data":    checkoutResponse(session),
	})
}

// Back handles POST /checkout/back
func (h *CheckoutHandler) Back(c *gin.Context) {
	session, ok := h.checkoutService.Current(middleware.GetSessionID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No checkout in progress",
		})
		return
	}

	session.Retreat()

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout moved back",
		"data":    checkoutResponse(session),
	})
}

// SetInformation handles PUT /checkout/information
func (h *CheckoutHandler) SetInformation(c *gin.Context) {
	session, ok := h.checkoutService.Current(middleware.GetSessionID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No checkout in progress",
		})
		return
	}

	var info checkout.ContactInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data: " + err.Error(),
		})
		return
	}

	session.SetContact(info)

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact information saved",
		"data":    checkoutResponse(session),
	})
}

// SelectShippingMethod handles PUT /checkout/shipping-method
func (h *CheckoutHandler) SelectShippingMethod(c *gin.Context) {
	session, ok := h.checkoutService.Current(middleware.GetSessionID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No checkout in progress",
		})
		return
	}

	var req SelectShippingMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data: " + err.Error(),
		})
		return
	}

	if err := session.SelectShippingMethod(req.MethodID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown shipping method: " + req.MethodID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Shipping method selected",
		"data":    checkoutResponse(session),
	})
}

// GetShippingMethods handles GET /checkout/shipping-methods
func (h *CheckoutHandler) GetShippingMethods(c *gin.Context) {
	methods := h.checkoutService.ShippingMethods(middleware.GetSessionID(c))

	c.JSON(http.StatusOK, gin.H{
		"message": "Shipping methods retrieved successfully",
		"data": gin.H{
			"methods": methods,
		},
	})
}

func checkoutResponse(session *checkout.Session) gin.H {
	resp := gin.H{
		"step":            session.Step(),
		"completed":       session.Completed(),
		"contact":         session.Contact(),
		"shipping_method": session.ShippingMethodID(),
		"summary":         session.Summary(),
	}
	if order := session.Order(); order != nil {
		resp["order"] = order
	}
	return resp
}
