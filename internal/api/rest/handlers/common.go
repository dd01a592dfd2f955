package handlers

import (
	"errors"
	"log"

	"github.com/SundayYogurt/bank_service/internal/domain"
	"github.com/SundayYogurt/bank_service/internal/helper/utils"
	"github.com/gofiber/fiber/v2"
)

var notFoundErrs = []error{
	domain.ErrUserNotFound,
	domain.ErrUserTypeNotFound,
	domain.ErrAccountNotFound,
	domain.ErrAccountTypeNotFound,
	domain.ErrBranchNotFound,
	domain.ErrTransactionNotFound,
	domain.ErrTransactionTypeNotFound,
	domain.ErrFundTransferNotFound,
}

var badRequestErrs = []error{
	domain.ErrDuplicateEmail,
	domain.ErrDuplicateMobile,
	domain.ErrMinimumBalance,
	domain.ErrInsufficientFunds,
	domain.ErrSameAccountTransfer,
	domain.ErrInvalidBranchCode,
}

// respondError maps domain errors onto the envelope. Anything outside
// the taxonomy is logged and surfaced as a generic failure.
func respondError(ctx *fiber.Ctx, err error) error {
	for _, target := range notFoundErrs {
		if errors.Is(err, target) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
	}
	for _, target := range badRequestErrs {
		if errors.Is(err, target) {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
		}
	}
	if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrTokenRevoked) {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	log.Printf("unhandled error: %v", err)
	return utils.ResponseError(ctx, fiber.StatusInternalServerError, "internal server error")
}

func paramID(ctx *fiber.Ctx, name string) (uint, error) {
	id, err := ctx.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id parameter")
	}
	return uint(id), nil
}
