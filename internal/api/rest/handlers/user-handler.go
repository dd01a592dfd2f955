package handlers

import (
	"github.com/SundayYogurt/bank_service/internal/dto"
	"github.com/SundayYogurt/bank_service/internal/helper/utils"
	"github.com/SundayYogurt/bank_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	svc services.UserService
}

func NewUserHandler(svc services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// SetupRoutes registers the protected user and user type endpoints.
// POST /user (registration) is public and registered in server.go.
func (h *UserHandler) SetupRoutes(app *fiber.App) {
	app.Get("/user", h.ListUsers)
	app.Get("/user/:id", h.GetUser)
	app.Put("/user/:id", h.UpdateUser)
	app.Delete("/user/:id", h.DeleteUser)

	app.Post("/usertype", h.CreateUserType)
	app.Get("/usertype", h.ListUserTypes)
	app.Get("/usertype/:id", h.GetUserType)
	app.Put("/usertype/:id", h.UpdateUserType)
	app.Delete("/usertype/:id", h.DeleteUserType)
}

func (h *UserHandler) CreateUser(ctx *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if errs := dto.Validate(req); errs != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, errs)
	}

	user, err := h.svc.Register(req)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, user, "user record inserted successfully")
}

func (h *UserHandler) ListUsers(ctx *fiber.Ctx) error {
	users, err := h.svc.ListUsers()
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, users, "user list return successfully")
}

func (h *UserHandler) GetUser(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	user, err := h.svc.GetUser(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, user, "user with this id return successfully")
}

func (h *UserHandler) UpdateUser(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if errs := dto.Validate(req); errs != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, errs)
	}

	user, err := h.svc.UpdateUser(id, req)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, user, "user with this id updated successfully")
}

func (h *UserHandler) DeleteUser(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	if err := h.svc.DeleteUser(id); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, struct{}{}, "user with this id deleted successfully")
}

func (h *UserHandler) CreateUserType(ctx *fiber.Ctx) error {
	var req dto.UserTypeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if errs := dto.Validate(req); errs != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, errs)
	}

	ut, err := h.svc.CreateUserType(req)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, ut, "user type record inserted successfully")
}

func (h *UserHandler) ListUserTypes(ctx *fiber.Ctx) error {
	types, err := h.svc.ListUserTypes()
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, types, "user type list return successfully")
}

func (h *UserHandler) GetUserType(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	ut, err := h.svc.GetUserType(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, ut, "user type with this id return successfully")
}

func (h *UserHandler) UpdateUserType(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateUserTypeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if errs := dto.Validate(req); errs != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, errs)
	}

	ut, err := h.svc.UpdateUserType(id, req)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, ut, "user type with this id updated successfully")
}

func (h *UserHandler) DeleteUserType(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	if err := h.svc.DeleteUserType(id); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, struct{}{}, "user type with this id deleted successfully")
}
