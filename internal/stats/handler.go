package stats

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/quiz-master/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) SubjectAttemptCounts(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	counts, err := h.service.SubjectAttemptCounts(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load subject attempt counts")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, counts)
}

func (h *Handler) ChapterBestScores(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	scores, err := h.service.ChapterBestScores(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load chapter best scores")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, scores)
}

func (h *Handler) UserSubjectAttemptCounts(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	counts, err := h.service.UserSubjectAttemptCounts(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to load user subject attempt counts")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, counts)
}

func (h *Handler) UserMonthlyAttempts(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	monthly, err := h.service.UserMonthlyAttempts(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to load monthly attempts")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, monthly)
}
