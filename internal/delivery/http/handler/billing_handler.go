package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/delivery/http/middleware"
	"clinic-management/internal/usecase"
	"clinic-management/pkg/response"
)

type BillingHandler struct {
	billingUsecase usecase.BillingUsecase
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
	}
}

// GetAllBillingEntries lists billing entries, filtered by ?status= when given.
func (h *BillingHandler) GetAllBillingEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.billingUsecase.GetAllBillingEntries(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		if err == usecase.ErrInvalidBillingStatus {
			response.BadRequest(w, "Status inválido")
			return
		}
		response.InternalServerError(w, "Erro ao buscar financeiro")
		return
	}

	response.JSON(w, http.StatusOK, entries)
}

func (h *BillingHandler) PayBillingEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "ID inválido")
		return
	}

	var req dto.PayBillingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "")
		return
	}

	actor, _ := middleware.GetIdentityFromContext(r.Context())
	if err := h.billingUsecase.PayBillingEntry(r.Context(), actor, id, &req); err != nil {
		switch err {
		case usecase.ErrPaymentMethodRequired:
			response.BadRequest(w, "Método de pagamento é obrigatório")
		case usecase.ErrBillingNotFound:
			response.NotFound(w, "Lançamento não encontrado")
		default:
			response.InternalServerError(w, "Erro ao confirmar pagamento")
		}
		return
	}

	response.Success(w, http.StatusOK, fmt.Sprintf("Pagamento confirmado via %s", strings.TrimSpace(req.Method)))
}

// GenerateBillingEntry adds an extra pending charge to an appointment.
func (h *BillingHandler) GenerateBillingEntry(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := pathID(r, "consultaId")
	if err != nil {
		response.BadRequest(w, "ID inválido")
		return
	}

	actor, _ := middleware.GetIdentityFromContext(r.Context())
	entry, err := h.billingUsecase.GenerateBillingEntry(r.Context(), actor, appointmentID)
	if err != nil {
		if err == usecase.ErrAppointmentNotFound {
			response.NotFound(w, "Consulta não encontrada")
			return
		}
		response.InternalServerError(w, "Erro ao gerar cobrança")
		return
	}

	response.Created(w, entry.ID, "Cobrança gerada com sucesso")
}
