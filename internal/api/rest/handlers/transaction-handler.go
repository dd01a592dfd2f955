package handlers

import (
	"github.com/SundayYogurt/bank_service/internal/domain"
	"github.com/SundayYogurt/bank_service/internal/dto"
	"github.com/SundayYogurt/bank_service/internal/helper/utils"
	"github.com/SundayYogurt/bank_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	svc services.LedgerService
}

func NewTransactionHandler(svc services.LedgerService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

func (h *TransactionHandler) SetupRoutes(app *fiber.App) {
	app.Post("/accounttransactiondetails", h.PostTransaction)
	app.Get("/accounttransactiondetails", h.ListTransactions)
	app.Get("/accounttransactiondetails/:id", h.GetTransaction)
	app.Put("/accounttransactiondetails/:id", h.UpdateTransaction)
	app.Delete("/accounttransactiondetails/:id", h.DeleteTransaction)

	app.Post("/transactiontype", h.CreateTransactionType)
	app.Get("/transactiontype", h.ListTransactionTypes)
	app.Get("/transactiontype/:id", h.GetTransactionType)
	app.Put("/transactiontype/:id", h.UpdateTransactionType)
	app.Delete("/transactiontype/:id", h.DeleteTransactionType)

	app.Post("/fundtransfer", h.TransferFunds)
	app.Get("/fundtransfer", h.ListFundTransfers)
	app.Get("/fundtransfer/:id", h.GetFundTransfer)
	app.Put("/fundtransfer/:id", h.UpdateFundTransfer)
	app.Delete("/fundtransfer/:id", h.DeleteFundTransfer)

	app.Get("/ministatement/:bank_account_id", h.MiniStatement)
}

// PostTransaction applies a single credit or debit posting. A decline
// is reported with success=false but the recorded attempt is returned.
func (h *TransactionHandler) PostTransaction(ctx *fiber.Ctx) error {
	var req dto.PostTransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if errs := dto.Validate(req); errs != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, errs)
	}

	posted, err := h.svc.PostTransaction(req)
	if err != nil {
		return respondError(ctx, err)
	}
	if posted.TransactionStatus == domain.TransactionStatusFailed {
		return utils.ResponseDeclined(ctx, fiber.StatusBadRequest, posted, "transaction declined, insufficient funds")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, posted, "account transaction details added successfully")
}

func (h *TransactionHandler) ListTransactions(ctx *fiber.Ctx) error {
	txs, err := h.svc.ListTransactions()
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, txs, "account transaction details list return successfully")
}

func (h *TransactionHandler) GetTransaction(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	txd, err := h.svc.GetTransaction(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, txd, "account transaction details with this id return successfully")
}

func (h *TransactionHandler) UpdateTransaction(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if errs := dto.Validate(req); errs != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, errs)
	}

	txd, err := h.svc.UpdateTransaction(id, req)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, txd, "account transaction details with this id updated successfully")
}

func (h *TransactionHandler) DeleteTransaction(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	if err := h.svc.DeleteTransaction(id); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, struct{}{}, "account transaction details with this id deleted successfully")
}

func (h *TransactionHandler) CreateTransactionType(ctx *fiber.Ctx) error {
	var req dto.TransactionTypeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if errs := dto.Validate(req); errs != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, errs)
	}

	tt, err := h.svc.CreateTransactionType(req)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, tt, "transaction type record inserted successfully")
}

func (h *TransactionHandler) ListTransactionTypes(ctx *fiber.Ctx) error {
	types, err := h.svc.ListTransactionTypes()
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, types, "transaction type list return successfully")
}

func (h *TransactionHandler) GetTransactionType(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	tt, err := h.svc.GetTransactionType(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, tt, "transaction type with this id return successfully")
}

func (h *TransactionHandler) UpdateTransactionType(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateTransactionTypeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if errs := dto.Validate(req); errs != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, errs)
	}

	tt, err := h.svc.UpdateTransactionType(id, req)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, tt, "transaction type with this id updated successfully")
}

func (h *TransactionHandler) DeleteTransactionType(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	if err := h.svc.DeleteTransactionType(id); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, struct{}{}, "transaction type with this id deleted successfully")
}

// TransferFunds moves funds between two accounts; a declined transfer
// returns the recorded attempt with success=false.
func (h *TransactionHandler) TransferFunds(ctx *fiber.Ctx) error {
	var req dto.FundTransferRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if errs := dto.Validate(req); errs != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, errs)
	}

	result, err := h.svc.TransferFunds(req)
	if err != nil {
		return respondError(ctx, err)
	}
	if result.TransactionStatus == domain.TransactionStatusFailed {
		return utils.ResponseDeclined(ctx, fiber.StatusBadRequest, result, "fund transfer declined")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, result, "fund transfer successfully")
}

func (h *TransactionHandler) ListFundTransfers(ctx *fiber.Ctx) error {
	transfers, err := h.svc.ListFundTransfers()
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, transfers, "fund transfer list return successfully")
}

func (h *TransactionHandler) GetFundTransfer(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	ft, err := h.svc.GetFundTransfer(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, ft, "fund transfer with this id return successfully")
}

func (h *TransactionHandler) UpdateFundTransfer(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateFundTransferRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}
	if errs := dto.Validate(req); errs != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, errs)
	}

	ft, err := h.svc.UpdateFundTransfer(id, req)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, ft, "fund transfer with this id updated successfully")
}

func (h *TransactionHandler) DeleteFundTransfer(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	if err := h.svc.DeleteFundTransfer(id); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, struct{}{}, "fund transfer with this id deleted successfully")
}

func (h *TransactionHandler) MiniStatement(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "bank_account_id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	txs, err := h.svc.MiniStatement(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, txs, "mini statement return successfully")
}
