package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/quiz-master/internal/attempt"
	"github.com/saulo-duarte/quiz-master/internal/auth"
	"github.com/saulo-duarte/quiz-master/internal/chapter"
	"github.com/saulo-duarte/quiz-master/internal/middlewares"
	"github.com/saulo-duarte/quiz-master/internal/quiz"
	"github.com/saulo-duarte/quiz-master/internal/stats"
	"github.com/saulo-duarte/quiz-master/internal/subject"
	"github.com/saulo-duarte/quiz-master/internal/user"
)

type RouterConfig struct {
	UserHandler    *user.Handler
	SubjectHandler *subject.Handler
	ChapterHandler *chapter.Handler
	QuizHandler    *quiz.Handler
	AttemptHandler *attempt.Handler
	StatsHandler   *stats.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/subjects", subject.Routes(cfg.SubjectHandler))
		r.Mount("/chapters", chapter.Routes(cfg.ChapterHandler))
		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
		r.Mount("/attempts", attempt.Routes(cfg.AttemptHandler))
		r.Mount("/stats", stats.Routes(cfg.StatsHandler))

		r.Post("/quizzes/{id}/attempts", cfg.AttemptHandler.Submit)
	})
	return r
}
