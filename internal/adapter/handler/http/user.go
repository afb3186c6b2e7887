package http

import (
	"strconv"

	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/akozyrev/storepay/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	Handler
	service port.Service
}

func NewUserHandler(service port.Service, logger *zap.Logger) (*UserHandler, error) {
	return &UserHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type referrerRequest struct {
	ReferrerID int64 `json:"referrer_id" binding:"required"`
}

type referrerResponse struct {
	Set bool `json:"set"`
}

// SetReferrer binds a referrer to a buyer. Binding is rejected once the
// buyer has any purchase or an earlier referrer, so the response carries
// whether this call actually took effect.
func (uh *UserHandler) SetReferrer(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		uh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	req := referrerRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	set, err := uh.service.SetReferrer(ctx, userID, req.ReferrerID)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, referrerResponse{Set: set})
}

type userResponse struct {
	ID             int64  `json:"id"`
	Username       string `json:"username,omitempty"`
	TotalPurchases int64  `json:"total_purchases"`
	TotalSpent     int64  `json:"total_spent_rub"`
	BonusBalance   int64  `json:"bonus_balance"`
	InvitedCount   int64  `json:"invited_count"`
	ReferrerID     *int64 `json:"referrer_id,omitempty"`
}

func (uh *UserHandler) GetUser(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		uh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	user, err := uh.service.GetUserProfile(ctx, userID)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, userResponse{
		ID:             user.ID,
		Username:       user.Username,
		TotalPurchases: user.TotalPurchases,
		TotalSpent:     user.TotalSpent,
		BonusBalance:   user.BonusBalance,
		InvitedCount:   user.InvitedCount,
		ReferrerID:     user.ReferrerID,
	})
}
