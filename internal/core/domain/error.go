package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid staff key")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")

	// * Business errors.
	ErrProductNotFound      = errors.New("product not found")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrPaymentCreateFailed  = errors.New("could not start payment")
	ErrRateUnavailable      = errors.New("no exchange rate available")
	ErrInsufficientBonus    = errors.New("bonus balance is not enough")

	// * Promo errors.
	ErrPromoNotFound     = errors.New("promo code not found")
	ErrPromoInactive     = errors.New("promo code is not active")
	ErrPromoExpired      = errors.New("promo code has expired")
	ErrPromoWrongProduct = errors.New("promo code is not valid for this product")
	ErrPromoLimitReached = errors.New("promo code usage limit reached")
	ErrPromoAlreadyUsed  = errors.New("promo code already used by this user")
)
