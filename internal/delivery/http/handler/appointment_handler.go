package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/delivery/http/middleware"
	"clinic-management/internal/usecase"
	"clinic-management/pkg/response"
	"clinic-management/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// CreateAppointment schedules an appointment and its pending billing entry.
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor, _ := middleware.GetIdentityFromContext(r.Context())
	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), actor, &req)
	if err != nil {
		h.writeError(w, err, "Erro ao criar consulta")
		return
	}

	response.Created(w, appointment.ID, "")
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAllAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Erro ao buscar consultas")
		return
	}

	response.JSON(w, http.StatusOK, appointments)
}

// GetHistory lists completed appointments.
func (h *AppointmentHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetCompletedAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Erro ao buscar histórico")
		return
	}

	response.JSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "ID inválido")
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Erro interno do servidor")
		return
	}

	response.JSON(w, http.StatusOK, appointment)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "ID inválido")
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor, _ := middleware.GetIdentityFromContext(r.Context())
	if _, err := h.appointmentUsecase.UpdateAppointment(r.Context(), actor, id, &req); err != nil {
		h.writeError(w, err, "Erro ao atualizar consulta")
		return
	}

	response.Success(w, http.StatusOK, "")
}

// UpdateStatus sets the appointment status to one of the four known values.
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "ID inválido")
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "")
		return
	}

	actor, _ := middleware.GetIdentityFromContext(r.Context())
	if err := h.appointmentUsecase.UpdateAppointmentStatus(r.Context(), actor, id, &req); err != nil {
		h.writeError(w, err, "Erro ao atualizar status da consulta")
		return
	}

	response.Success(w, http.StatusOK, fmt.Sprintf("Consulta atualizada para %s", req.Status))
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "ID inválido")
		return
	}

	actor, _ := middleware.GetIdentityFromContext(r.Context())
	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), actor, id); err != nil {
		h.writeError(w, err, "Erro ao excluir consulta")
		return
	}

	response.Success(w, http.StatusOK, "")
}

func (h *AppointmentHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrAppointmentFieldsRequired:
		response.BadRequest(w, "Campos obrigatórios faltando")
	case usecase.ErrInvalidDateFormat:
		response.BadRequest(w, "Data inválida, use AAAA-MM-DD")
	case usecase.ErrInvalidAppointmentTime:
		response.BadRequest(w, "Hora inválida, use HH:MM")
	case usecase.ErrInvalidAppointmentStatus:
		response.BadRequest(w, "Status inválido ou não informado")
	case usecase.ErrAppointmentReferenceNotFound:
		response.BadRequest(w, "Paciente ou profissional não encontrado")
	case usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Consulta não encontrada")
	case usecase.ErrAppointmentCompleted:
		response.Conflict(w, "Consulta já realizada")
	default:
		response.InternalServerError(w, fallback)
	}
}
