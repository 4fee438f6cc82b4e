package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type placeOrderRequest struct {
	ShippingAddress string `json:"shippingAddress" binding:"required"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func placeOrderHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req placeOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		order, err := orders.PlaceOrder(c.Request.Context(), currentUserID(c), req.ShippingAddress)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

func listOrdersHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := orders.Orders(c.Request.Context(), parsePageRequest(c), currentUserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

func orderItemsHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := orders.Items(c.Request.Context(), c.Param("orderId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func orderItemInfoHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := orders.ItemInfo(c.Request.Context(), c.Param("orderId"), c.Param("itemId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func updateOrderStatusHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		order, err := orders.UpdateStatus(c.Request.Context(), c.Param("orderId"), req.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
