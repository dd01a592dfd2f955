package handlers

import (
	"github.com/SundayYogurt/bank_service/internal/dto"
	"github.com/SundayYogurt/bank_service/internal/helper/utils"
	"github.com/SundayYogurt/bank_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AccountHandler struct {
	svc services.AccountService
}

func NewAccountHandler(svc services.AccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

func (h *AccountHandler) SetupRoutes(app *fiber.App) {
	app.Post("/bankaccount", h.CreateBankAccount)
	app.Get("/bankaccount", h.ListBankAccounts)
	app.Get("/bankaccount/:id", h.GetBankAccount)
	app.Put("/bankaccount/:id", h.UpdateBankAccount)
	app.Delete("/bankaccount/:id", h.DeleteBankAccount)

	app.Post("/accounttype", h.CreateAccountType)
	app.Get("/accounttype", h.ListAccountTypes)
	app.Get("/accounttype/:id", h.GetAccountType)
	app.Put("/accounttype/:id", h.UpdateAccountType)

	app.Post("/branchdetails", h.CreateBranch)
	app.Get("/branchdetails", h.ListBranches)
	app.Get("/branchdetails/:id", h.GetBranch)
	app.Put("/branchdetails/:id", h.UpdateBranch)
	app.Delete("/branchdetails/:id", h.DeleteBranch)
}

func (h *AccountHandler) CreateBankAccount(ctx *fiber.Ctx) error {
	var req dto.CreateBankAccountRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if errs := dto.Validate(req); errs != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, errs)
	}

	account, err := h.svc.CreateBankAccount(req)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, account, "bank account record inserted successfully")
}

func (h *AccountHandler) ListBankAccounts(ctx *fiber.Ctx) error {
	accounts, err := h.svc.ListBankAccounts()
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, accounts, "bank account list return successfully")
}

func (h *AccountHandler) GetBankAccount(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	account, err := h.svc.GetBankAccount(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, account, "bank account with this id return successfully")
}

func (h *AccountHandler) UpdateBankAccount(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateBankAccountRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if errs := dto.Validate(req); errs != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, errs)
	}

	account, err := h.svc.UpdateBankAccount(id, req)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, account, "bank account with this id updated successfully")
}

func (h *AccountHandler) DeleteBankAccount(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	if err := h.svc.DeleteBankAccount(id); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, struct{}{}, "bank account with this id deleted successfully")
}

func (h *AccountHandler) CreateAccountType(ctx *fiber.Ctx) error {
	var req dto.AccountTypeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if errs := dto.Validate(req); errs != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, errs)
	}

	at, err := h.svc.CreateAccountType(req)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, at, "account type record inserted successfully")
}

func (h *AccountHandler) ListAccountTypes(ctx *fiber.Ctx) error {
	types, err := h.svc.ListAccountTypes()
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, types, "account type list return successfully")
}

func (h *AccountHandler) GetAccountType(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	at, err := h.svc.GetAccountType(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, at, "account type with this id return successfully")
}

func (h *AccountHandler) UpdateAccountType(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateAccountTypeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if errs := dto.Validate(req); errs != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, errs)
	}

	at, err := h.svc.UpdateAccountType(id, req)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, at, "account type with this id updated successfully")
}

func (h *AccountHandler) CreateBranch(ctx *fiber.Ctx) error {
	var req dto.BranchDetailsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if errs := dto.Validate(req); errs != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, errs)
	}

	b, err := h.svc.CreateBranch(req)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, b, "branch details record inserted successfully")
}

func (h *AccountHandler) ListBranches(ctx *fiber.Ctx) error {
	branches, err := h.svc.ListBranches()
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, branches, "branch details list return successfully")
}

func (h *AccountHandler) GetBranch(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	b, err := h.svc.GetBranch(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, b, "branch details with this id return successfully")
}

func (h *AccountHandler) UpdateBranch(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateBranchDetailsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if errs := dto.Validate(req); errs != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, errs)
	}

	b, err := h.svc.UpdateBranch(id, req)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, b, "branch details with this id updated successfully")
}

func (h *AccountHandler) DeleteBranch(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	if err := h.svc.DeleteBranch(id); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, struct{}{}, "branch details with this id deleted successfully")
}
