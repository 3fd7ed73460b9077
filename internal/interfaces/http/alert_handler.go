package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/usecase"
	"github.com/stockflow/stockflow-api/internal/domain"
)

// AlertHandler maneja las peticiones HTTP de alertas de stock bajo.
type AlertHandler struct {
	uc *usecase.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *usecase.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// LowStock godoc
// @Summary      Alertas de stock bajo por empresa
// @Description  Pares (producto, bodega) con ventas en la ventana y cantidad por debajo del umbral efectivo, de más a menos deficitario.
// @Tags         alerts
// @Produce      json
// @Param        company_id  path   int  true   "ID de la empresa"
// @Param        days        query  int  false  "Ventana de ventas en días"  default(30)
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	companyID, err := strconv.ParseInt(c.Params("company_id"), 10, 64)
	if err != nil || companyID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "company_id debe ser un entero positivo"})
	}

	days := usecase.DefaultAlertWindowDays
	if raw := c.Query("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "days debe ser un entero positivo"})
		}
	}

	out, err := h.uc.LowStock(c.Context(), companyID, days)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "days debe ser un entero positivo"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
