package chapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/saulo-duarte/quiz-master/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateChapterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	chapter, err := h.service.Create(r.Context(), dto)
	if err != nil {
		var validationErrs validator.ValidationErrors
		switch {
		case errors.Is(err, ErrSubjectNotFound):
			http.Error(w, "subject not found", http.StatusNotFound)
		case errors.As(err, &validationErrs):
			http.Error(w, validationErrs.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to create chapter")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, chapter)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	chapters, err := h.service.List(r.Context(), r.URL.Query().Get("subject_id"))
	if err != nil {
		if errors.Is(err, ErrInvalidID) {
			http.Error(w, "invalid subject_id", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to list chapters")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, chapters)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	chapter, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrChapterNotFound):
			http.Error(w, "chapter not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidID):
			http.Error(w, "invalid id", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to fetch chapter")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, chapter)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateChapterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	chapter, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrChapterNotFound):
			http.Error(w, "chapter not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidID):
			http.Error(w, "invalid id", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to update chapter")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, chapter)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		switch {
		case errors.Is(err, ErrChapterNotFound):
			http.Error(w, "chapter not found", http.StatusNotFound)
		case errors.Is(err, ErrChapterHasQuizzes):
			http.Error(w, "chapter still has quizzes", http.StatusConflict)
		case errors.Is(err, ErrInvalidID):
			http.Error(w, "invalid id", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to delete chapter")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
