package http

import (
	"net/http"
	"time"

	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/akozyrev/storepay/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type checkoutRequest struct {
	BuyerID       int64  `json:"buyer_id" binding:"required"`
	BuyerUsername string `json:"buyer_username"`
	ProductID     string `json:"product_id" binding:"required"`
	Method        string `json:"method" binding:"required"`
	Asset         string `json:"asset"`
}

type checkoutResponse struct {
	OrderID  string `json:"order_id"`
	TicketID string `json:"ticket_id"`
	PayURL   string `json:"pay_url"`
	Amount   string `json:"amount"`
	Asset    string `json:"asset"`
	PriceRUB int64  `json:"price_rub"`
}

func (oh *OrderHandler) CreateCheckout(ctx *gin.Context) {
	req := checkoutRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	result, err := oh.service.CreateCheckout(ctx, port.CheckoutRequest{
		BuyerID:       req.BuyerID,
		BuyerUsername: req.BuyerUsername,
		ProductID:     req.ProductID,
		Method:        domain.PaymentMethod(req.Method),
		Asset:         req.Asset,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, checkoutResponse{
		OrderID:  result.OrderID,
		TicketID: result.TicketID,
		PayURL:   result.PayURL,
		Amount:   result.Amount,
		Asset:    result.Asset,
		PriceRUB: result.PriceRUB,
	}, http.StatusCreated)
}

type orderResponse struct {
	OrderID    string    `json:"order_id"`
	TicketID   string    `json:"ticket_id"`
	BuyerID    int64     `json:"buyer_id"`
	ProductID  string    `json:"product_id"`
	PromoCode  string    `json:"promo_code,omitempty"`
	BonusSpent int64     `json:"bonus_spent,omitempty"`
	FinalPrice int64     `json:"final_price_rub"`
	Method     string    `json:"method"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		OrderID:    o.ID,
		TicketID:   o.TicketID,
		BuyerID:    o.BuyerID,
		ProductID:  o.ProductID,
		PromoCode:  o.PromoCode,
		BonusSpent: o.BonusSpent,
		FinalPrice: o.FinalPrice,
		Method:     string(o.Method),
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt,
	}
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	order, err := oh.service.GetOrder(ctx, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, toOrderResponse(order))
}

type selectionRequest struct {
	BuyerID    int64  `json:"buyer_id" binding:"required"`
	ProductID  string `json:"product_id" binding:"required"`
	PromoCode  string `json:"promo_code"`
	BonusSpent int64  `json:"bonus_spent"`
}

type selectionResponse struct {
	ProductID  string `json:"product_id"`
	PromoCode  string `json:"promo_code,omitempty"`
	Discount   int64  `json:"discount_rub"`
	BonusSpent int64  `json:"bonus_spent"`
	FinalPrice int64  `json:"final_price_rub"`
}

func (oh *OrderHandler) ApplySelection(ctx *gin.Context) {
	req := selectionRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	sel, err := oh.service.ApplySelection(ctx, port.SelectionRequest{
		BuyerID:    req.BuyerID,
		ProductID:  req.ProductID,
		PromoCode:  req.PromoCode,
		BonusSpent: req.BonusSpent,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, selectionResponse{
		ProductID:  sel.ProductID,
		PromoCode:  sel.PromoCode,
		Discount:   sel.Discount,
		BonusSpent: sel.BonusSpent,
		FinalPrice: sel.FinalPrice,
	})
}
