package utils

import "github.com/gofiber/fiber/v2"

// Envelope is the uniform response body. The HTTP status code is
// mirrored in the payload.
type Envelope struct {
	Data    interface{} `json:"data"`
	Message interface{} `json:"message"`
	Success bool        `json:"success"`
	Status  int         `json:"status"`
}

func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}, message string) error {
	return ctx.Status(status).JSON(Envelope{
		Data:    data,
		Message: message,
		Success: true,
		Status:  status,
	})
}

func ResponseError(ctx *fiber.Ctx, status int, message interface{}) error {
	return ctx.Status(status).JSON(Envelope{
		Data:    struct{}{},
		Message: message,
		Success: false,
		Status:  status,
	})
}

// ResponseDeclined reports a business rule decline: the operation was
// recorded, but success is false and the attempt's data is returned.
func ResponseDeclined(ctx *fiber.Ctx, status int, data interface{}, message string) error {
	return ctx.Status(status).JSON(Envelope{
		Data:    data,
		Message: message,
		Success: false,
		Status:  status,
	})
}
