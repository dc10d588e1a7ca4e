package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quiz-master/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/me/subjects", h.UserSubjectAttemptCounts)
	r.Get("/me/monthly", h.UserMonthlyAttempts)

	r.Group(func(r chi.Router) {
		r.Use(auth.AdminOnly)

		r.Get("/subjects", h.SubjectAttemptCounts)
		r.Get("/chapters", h.ChapterBestScores)
	})

	return r
}
