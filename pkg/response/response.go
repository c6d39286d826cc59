package response

import (
	"encoding/json"
	"net/http"
)

// Response is the acknowledgement body of mutating endpoints.
type Response struct {
	Success bool   `json:"sucesso"`
	Message string `json:"mensagem,omitempty"`
	ID      uint   `json:"id,omitempty"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error   string      `json:"erro"`
	Details interface{} `json:"detalhes,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// Success writes {"sucesso": true} with an optional message.
func Success(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
	})
}

// Created writes {"sucesso": true, "id": id}.
func Created(w http.ResponseWriter, id uint, message string) {
	JSON(w, http.StatusCreated, Response{
		Success: true,
		Message: message,
		ID:      id,
	})
}

// Failure writes {"sucesso": false}.
func Failure(w http.ResponseWriter, statusCode int) {
	JSON(w, statusCode, Response{Success: false})
}

func Error(w http.ResponseWriter, statusCode int, message string, details interface{}) {
	JSON(w, statusCode, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

func ValidationError(w http.ResponseWriter, details interface{}) {
	Error(w, http.StatusBadRequest, "Dados inválidos", details)
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Requisição inválida"
	}
	Error(w, http.StatusBadRequest, message, nil)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Não autorizado"
	}
	Error(w, http.StatusUnauthorized, message, nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Acesso negado"
	}
	Error(w, http.StatusForbidden, message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Recurso não encontrado"
	}
	Error(w, http.StatusNotFound, message, nil)
}

func Conflict(w http.ResponseWriter, message string) {
	Error(w, http.StatusConflict, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Erro interno do servidor"
	}
	Error(w, http.StatusInternalServerError, message, nil)
}
