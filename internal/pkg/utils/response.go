package utils

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/inspection-planner/internal/pkg/errors"
)

// SuccessResponse is the envelope for every 2xx payload.
type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

// ErrorResponse carries a machine-readable application error.
type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// Meta is optional result metadata attached to a success envelope.
type Meta struct {
	Total    int     `json:"total,omitempty"`
	Page     int     `json:"page,omitempty"`
	Limit    int     `json:"limit,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{Data: data, Meta: meta})
}

// SendError writes an AppError with its own status code. Anything else
// is masked as a 500 so internals never reach the client.
func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		appErr = errors.ErrInternalServer
	}
	return c.Status(appErr.StatusCode).JSON(ErrorResponse{Error: appErr})
}
