package handlers

import (
	"github.com/SundayYogurt/bank_service/internal/dto"
	"github.com/SundayYogurt/bank_service/internal/helper"
	"github.com/SundayYogurt/bank_service/internal/helper/utils"
	"github.com/SundayYogurt/bank_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	svc  services.UserService
	auth helper.Auth
}

func NewAuthHandler(svc services.UserService, auth helper.Auth) *AuthHandler {
	return &AuthHandler{svc: svc, auth: auth}
}

// SetupRoutes registers the protected logout endpoint. POST /login is
// public and registered in server.go.
func (h *AuthHandler) SetupRoutes(app *fiber.App) {
	app.Delete("/logout", h.Logout)
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}
	if errs := dto.Validate(req); errs != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, errs)
	}

	token, err := h.svc.Login(req.EmailID, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"access_token": token}, "successfully logged in")
}

func (h *AuthHandler) Logout(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	if err := h.svc.Logout(user.Jti); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, struct{}{}, "logged out")
}
