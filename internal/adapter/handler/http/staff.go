package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/akozyrev/storepay/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StaffHandler serves the operator API: token issue, order inspection and
// manual requeue of stuck orders.
type StaffHandler struct {
	Handler
	service      port.Service
	tokenService port.TokenService
	staffKey     string
}

func NewStaffHandler(
	service port.Service,
	tokenService port.TokenService,
	staffKey string,
	logger *zap.Logger,
) (*StaffHandler, error) {
	return &StaffHandler{
		Handler:      *NewHandler(logger),
		service:      service,
		tokenService: tokenService,
		staffKey:     staffKey,
	}, nil
}

type loginRequest struct {
	StaffID string `json:"staff_id" binding:"required"`
	Key     string `json:"key" binding:"required"`
}

func (sh *StaffHandler) Login(ctx *gin.Context) {
	req := loginRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		sh.handleValidationError(ctx, err)
		return
	}

	if sh.staffKey == "" ||
		subtle.ConstantTimeCompare([]byte(req.Key), []byte(sh.staffKey)) != 1 {
		sh.handleError(ctx, domain.ErrInvalidCredentials)
		return
	}

	token, err := sh.tokenService.CreateToken(req.StaffID)
	if err != nil {
		sh.handleError(ctx, domain.ErrTokenCreation)
		return
	}

	sh.handleSuccess(ctx, struct {
		Token string `json:"token"`
	}{Token: token})
}

func (sh *StaffHandler) ListOrders(ctx *gin.Context) {
	status := domain.OrderStatus(ctx.DefaultQuery("status", string(domain.OrderStatusPending)))
	switch status {
	case domain.OrderStatusPending, domain.OrderStatusPaid, domain.OrderStatusExpired:
	default:
		sh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	list, err := sh.service.ListOrdersByStatus(ctx, status)
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, o := range list {
		result = append(result, toOrderResponse(o))
	}

	sh.handleSuccess(ctx, result)
}

// RequeueOrder puts a pending order back on the polling queue. Paid and
// expired orders are left alone.
func (sh *StaffHandler) RequeueOrder(ctx *gin.Context) {
	staffID := getAuthPayload(ctx).StaffID

	orderID := ctx.Param("id")
	err := sh.service.RequeueOrder(ctx, orderID)
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	sh.logger.Info("order requeued by staff",
		zap.String("order", orderID), zap.String("staff", staffID))
	sh.handleSuccessWithStatus(ctx, nil, http.StatusAccepted)
}
