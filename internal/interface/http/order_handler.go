package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/heshafoods/hesha-api/internal/application"
	"github.com/heshafoods/hesha-api/internal/domain/entity"
	"github.com/heshafoods/hesha-api/pkg/response"
	"github.com/heshafoods/hesha-api/pkg/validation"
)

type OrderHandler struct {
	Svc    *application.OrderService
	Logger *logrus.Logger
}

func NewOrderHandler(svc *application.OrderService, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{Svc: svc, Logger: logger}
}

type orderItemPayload struct {
	Title    string  `json:"title" binding:"required"`
	Price    float64 `json:"price"`
	Img      string  `json:"img"`
	Quantity int     `json:"quantity"`
}

type addressPayload struct {
	FullName string `json:"fullname" binding:"required"`
	Street   string `json:"street" binding:"required"`
	City     string `json:"city" binding:"required"`
	Zip      string `json:"zip" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

type placeOrderRequest struct {
	UserID  *int64             `json:"user_id"`
	Items   []orderItemPayload `json:"items" binding:"required,dive"`
	Total   float64            `json:"total" binding:"gte=0"`
	Address addressPayload     `json:"address" binding:"required"`
}

type orderResponse struct {
	ID      string             `json:"id"`
	Total   float64            `json:"total"`
	Status  string             `json:"status"`
	Items   []entity.OrderItem `json:"items"`
	Address entity.Address     `json:"address"`
	Date    string             `json:"date"`
}

func (h *OrderHandler) Place(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	in := application.PlaceOrderInput{
		UserID: req.UserID,
		Items: lo.Map(req.Items, func(it orderItemPayload, _ int) entity.OrderItem {
			return entity.OrderItem{Title: it.Title, Price: it.Price, Img: it.Img, Quantity: it.Quantity}
		}),
		Total: req.Total,
		Address: entity.Address{
			FullName: req.Address.FullName,
			Street:   req.Address.Street,
			City:     req.Address.City,
			Zip:      req.Address.Zip,
			Phone:    req.Address.Phone,
		},
	}

	id, err := h.Svc.PlaceOrder(c.Request.Context(), in)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id}, "order placed successfully")
}

func (h *OrderHandler) ListForUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	orders, err := h.Svc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	out := lo.Map(orders, func(o entity.Order, _ int) orderResponse {
		return orderResponse{
			ID:      o.ID,
			Total:   o.Total,
			Status:  o.Status,
			Items:   o.Items,
			Address: o.Address,
			Date:    o.CreatedAt.Format(time.RFC3339),
		}
	})
	response.Success(c, http.StatusOK, out, "orders")
}
