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

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor, _ := middleware.GetIdentityFromContext(r.Context())
	patient, err := h.patientUsecase.CreatePatient(r.Context(), actor, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNameRequired:
			response.BadRequest(w, "Nome é obrigatório")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Data de nascimento inválida")
		default:
			response.InternalServerError(w, "Erro ao criar paciente")
		}
		return
	}

	response.Created(w, patient.ID, "")
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAllPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Erro ao listar pacientes")
		return
	}

	response.JSON(w, http.StatusOK, patients)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "ID inválido")
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), id)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Paciente não encontrado")
			return
		}
		response.InternalServerError(w, "Erro ao buscar paciente")
		return
	}

	response.JSON(w, http.StatusOK, patient)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "ID inválido")
		return
	}

	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor, _ := middleware.GetIdentityFromContext(r.Context())
	if _, err := h.patientUsecase.UpdatePatient(r.Context(), actor, id, &req); err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Paciente não encontrado")
		case usecase.ErrPatientNameRequired:
			response.BadRequest(w, "Nome é obrigatório")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Data de nascimento inválida")
		default:
			response.InternalServerError(w, "Erro ao atualizar paciente")
		}
		return
	}

	response.Success(w, http.StatusOK, "")
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "ID inválido")
		return
	}

	actor, _ := middleware.GetIdentityFromContext(r.Context())
	if err := h.patientUsecase.DeletePatient(r.Context(), actor, id); err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Paciente não encontrado")
		case usecase.ErrPatientInUse:
			response.Conflict(w, "Paciente possui consultas")
		default:
			response.InternalServerError(w, "Erro ao excluir paciente")
		}
		return
	}

	response.Success(w, http.StatusOK, "")
}
