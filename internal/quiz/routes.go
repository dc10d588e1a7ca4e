package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quiz-master/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListCatalog)
	r.Get("/{id}", h.GetQuizForTaking)

	r.Group(func(r chi.Router) {
		r.Use(auth.AdminOnly)

		r.Post("/", h.CreateQuiz)
		r.Put("/{id}", h.UpdateQuiz)
		r.Delete("/{id}", h.DeleteQuiz)
		r.Get("/{id}/questions", h.ListQuestions)
		r.Post("/{id}/questions", h.AddQuestion)
		r.Put("/questions/{questionID}", h.UpdateQuestion)
		r.Delete("/questions/{questionID}", h.RemoveQuestion)
	})

	return r
}
