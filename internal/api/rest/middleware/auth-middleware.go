package middleware

import (
	"strings"

	"github.com/SundayYogurt/bank_service/internal/domain"
	"github.com/SundayYogurt/bank_service/internal/helper"
	"github.com/SundayYogurt/bank_service/internal/helper/utils"
	"github.com/SundayYogurt/bank_service/internal/repository"
	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware verifies the bearer token's signature and expiry, then
// rejects tokens whose jti sits on the block list. Logged out tokens
// stay rejected for their whole lifetime.
func AuthMiddleware(auth helper.Auth, tokens repository.TokenRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := strings.TrimSpace(ctx.Get(fiber.HeaderAuthorization))

		user, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
		}

		blocked, err := tokens.IsBlocked(user.Jti)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusInternalServerError, "could not verify token")
		}
		if blocked {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, domain.ErrTokenRevoked.Error())
		}

		ctx.Locals("userID", user.UserID)
		ctx.Locals("user", user)
		return ctx.Next()
	}
}
