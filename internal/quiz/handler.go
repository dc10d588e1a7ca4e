package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/saulo-duarte/quiz-master/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func writeQuizError(w http.ResponseWriter, err error) bool {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, ErrQuizNotFound):
		http.Error(w, "quiz not found", http.StatusNotFound)
	case errors.Is(err, ErrQuestionNotFound):
		http.Error(w, "question not found", http.StatusNotFound)
	case errors.Is(err, ErrChapterNotFound):
		http.Error(w, "chapter not found", http.StatusNotFound)
	case errors.Is(err, ErrQuizHasScores):
		http.Error(w, "quiz has recorded attempts", http.StatusConflict)
	case errors.Is(err, ErrInvalidCorrectOption):
		http.Error(w, "correct_option must reference a non-empty option", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidID):
		http.Error(w, "invalid id", http.StatusBadRequest)
	case errors.As(err, &validationErrs):
		http.Error(w, validationErrs.Error(), http.StatusBadRequest)
	default:
		return false
	}
	return true
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	quiz, err := h.service.CreateQuiz(r.Context(), dto)
	if err != nil {
		if !writeQuizError(w, err) {
			log.WithError(err).Error("Failed to create quiz")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, quiz)
}

func (h *Handler) UpdateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	quiz, err := h.service.UpdateQuiz(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		if !writeQuizError(w, err) {
			log.WithError(err).Error("Failed to update quiz")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, quiz)
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteQuiz(r.Context(), chi.URLParam(r, "id")); err != nil {
		if !writeQuizError(w, err) {
			log.WithError(err).Error("Failed to delete quiz")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "quiz deleted successfully",
	})
}

// ListCatalog serves the quiz summaries shown on the user dashboard.
func (h *Handler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	items, err := h.service.ListCatalog(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list quiz catalog")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, items)
}

func (h *Handler) GetQuizForTaking(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	view, err := h.service.GetQuizForTaking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if !writeQuizError(w, err) {
			log.WithError(err).Error("Failed to fetch quiz")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto QuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	question, err := h.service.AddQuestion(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		if !writeQuizError(w, err) {
			log.WithError(err).Error("Failed to add question")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, toQuestionAdminView(question))
}

func (h *Handler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto QuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	question, err := h.service.UpdateQuestion(r.Context(), chi.URLParam(r, "questionID"), dto)
	if err != nil {
		if !writeQuizError(w, err) {
			log.WithError(err).Error("Failed to update question")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, toQuestionAdminView(question))
}

func (h *Handler) RemoveQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.RemoveQuestion(r.Context(), chi.URLParam(r, "questionID")); err != nil {
		if !writeQuizError(w, err) {
			log.WithError(err).Error("Failed to remove question")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "question removed successfully",
	})
}

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	questions, err := h.service.ListQuestions(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if !writeQuizError(w, err) {
			log.WithError(err).Error("Failed to list questions")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	views := make([]QuestionAdminView, 0, len(questions))
	for i := range questions {
		views = append(views, toQuestionAdminView(&questions[i]))
	}

	config.JSON(w, http.StatusOK, views)
}
