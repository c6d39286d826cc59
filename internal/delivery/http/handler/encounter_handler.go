package handler

import (
	"encoding/json"
	"net/http"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/delivery/http/middleware"
	"clinic-management/internal/usecase"
	"clinic-management/pkg/response"
	"clinic-management/pkg/validator"
)

type EncounterHandler struct {
	encounterUsecase usecase.EncounterUsecase
	validator        *validator.CustomValidator
}

func NewEncounterHandler(encounterUsecase usecase.EncounterUsecase, validator *validator.CustomValidator) *EncounterHandler {
	return &EncounterHandler{
		encounterUsecase: encounterUsecase,
		validator:        validator,
	}
}

// CreateEncounter records an encounter and completes its appointment.
// An unknown appointment answers 200 with a null body.
func (h *EncounterHandler) CreateEncounter(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEncounterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor, _ := middleware.GetIdentityFromContext(r.Context())
	encounter, err := h.encounterUsecase.CreateEncounter(r.Context(), actor, &req)
	if err != nil {
		if err == usecase.ErrEncounterFields {
			response.BadRequest(w, "Consulta é obrigatória")
			return
		}
		response.InternalServerError(w, "Erro ao criar atendimento")
		return
	}
	if encounter == nil {
		response.JSON(w, http.StatusOK, nil)
		return
	}

	response.JSON(w, http.StatusCreated, response.Response{
		Success: true,
		Message: "Atendimento criado com sucesso",
		ID:      encounter.ID,
	})
}

func (h *EncounterHandler) GetAllEncounters(w http.ResponseWriter, r *http.Request) {
	encounters, err := h.encounterUsecase.GetAllEncounters(r.Context())
	if err != nil {
		response.InternalServerError(w, "Erro ao buscar atendimentos")
		return
	}

	response.JSON(w, http.StatusOK, encounters)
}

func (h *EncounterHandler) GetByAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := pathID(r, "consultaId")
	if err != nil {
		response.BadRequest(w, "ID inválido")
		return
	}

	encounter, err := h.encounterUsecase.GetEncounterByAppointment(r.Context(), appointmentID)
	if err != nil {
		if err == usecase.ErrEncounterNotFound {
			response.NotFound(w, "Atendimento não encontrado")
			return
		}
		response.InternalServerError(w, "Erro ao buscar atendimento")
		return
	}

	response.JSON(w, http.StatusOK, encounter)
}

func (h *EncounterHandler) UpdateEncounter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "ID inválido")
		return
	}

	var req dto.UpdateEncounterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "")
		return
	}

	actor, _ := middleware.GetIdentityFromContext(r.Context())
	if _, err := h.encounterUsecase.UpdateEncounter(r.Context(), actor, id, &req); err != nil {
		if err == usecase.ErrEncounterNotFound {
			response.NotFound(w, "Atendimento não encontrado")
			return
		}
		response.InternalServerError(w, "Erro ao atualizar atendimento")
		return
	}

	response.Success(w, http.StatusOK, "")
}

// GetHistory lists the caller's encounters, optionally for one patient.
func (h *EncounterHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	var patientID uint
	if _, ok := muxVar(r, "pacienteId"); ok {
		id, err := pathID(r, "pacienteId")
		if err != nil {
			response.BadRequest(w, "ID inválido")
			return
		}
		patientID = id
	}

	actor, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	encounters, err := h.encounterUsecase.GetHistory(r.Context(), actor, patientID)
	if err != nil {
		response.InternalServerError(w, "Erro ao buscar histórico")
		return
	}

	response.JSON(w, http.StatusOK, encounters)
}
