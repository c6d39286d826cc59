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

type ProfessionalHandler struct {
	professionalUsecase usecase.ProfessionalUsecase
	validator           *validator.CustomValidator
}

func NewProfessionalHandler(professionalUsecase usecase.ProfessionalUsecase, validator *validator.CustomValidator) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalUsecase: professionalUsecase,
		validator:           validator,
	}
}

// CreateProfessional creates the professional together with its login account.
func (h *ProfessionalHandler) CreateProfessional(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor, _ := middleware.GetIdentityFromContext(r.Context())
	professional, err := h.professionalUsecase.CreateProfessional(r.Context(), actor, &req)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalFields:
			response.BadRequest(w, "Campos obrigatórios faltando")
		case usecase.ErrInvalidRole:
			response.BadRequest(w, "Nível inválido")
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email já cadastrado")
		default:
			response.InternalServerError(w, "Erro ao cadastrar profissional")
		}
		return
	}

	response.Created(w, professional.ID, "")
}

func (h *ProfessionalHandler) GetAllProfessionals(w http.ResponseWriter, r *http.Request) {
	professionals, err := h.professionalUsecase.GetAllProfessionals(r.Context())
	if err != nil {
		response.InternalServerError(w, "Erro ao buscar profissionais")
		return
	}

	response.JSON(w, http.StatusOK, professionals)
}

func (h *ProfessionalHandler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "ID inválido")
		return
	}

	professional, err := h.professionalUsecase.GetProfessional(r.Context(), id)
	if err != nil {
		if err == usecase.ErrProfessionalNotFound {
			response.NotFound(w, "Profissional não encontrado")
			return
		}
		response.InternalServerError(w, "Erro ao buscar profissional")
		return
	}

	response.JSON(w, http.StatusOK, professional)
}

func (h *ProfessionalHandler) UpdateProfessional(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "ID inválido")
		return
	}

	var req dto.UpdateProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor, _ := middleware.GetIdentityFromContext(r.Context())
	if _, err := h.professionalUsecase.UpdateProfessional(r.Context(), actor, id, &req); err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Profissional não encontrado")
		case usecase.ErrProfessionalFields:
			response.BadRequest(w, "Campos obrigatórios faltando")
		default:
			response.InternalServerError(w, "Erro ao atualizar profissional")
		}
		return
	}

	response.Success(w, http.StatusOK, "")
}

func (h *ProfessionalHandler) DeleteProfessional(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "ID inválido")
		return
	}

	actor, _ := middleware.GetIdentityFromContext(r.Context())
	if err := h.professionalUsecase.DeleteProfessional(r.Context(), actor, id); err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Profissional não encontrado")
		case usecase.ErrProfessionalInUse:
			response.Conflict(w, "Profissional possui consultas ou atendimentos")
		case usecase.ErrProfessionalIsSelf:
			response.Conflict(w, "Não é possível excluir o próprio cadastro")
		default:
			response.InternalServerError(w, "Erro ao excluir profissional")
		}
		return
	}

	response.Success(w, http.StatusOK, "")
}
