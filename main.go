package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/saulo-duarte/quiz-master/internal/config"
	"github.com/saulo-duarte/quiz-master/internal/container"
	"github.com/saulo-duarte/quiz-master/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func buildRouter() *chi.Mux {
	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:    c.UserContainer.Handler,
		SubjectHandler: c.SubjectContainer.Handler,
		ChapterHandler: c.ChapterContainer.Handler,
		QuizHandler:    c.QuizContainer.Handler,
		AttemptHandler: c.AttemptContainer.Handler,
		StatsHandler:   c.StatsContainer.Handler,
	})

	return handler.(*chi.Mux)
}

func lambdaHandler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	_ = godotenv.Load()

	mux := buildRouter()
	log := config.Logger()

	// Inside Lambda the runtime sets this; anywhere else we serve directly.
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		chiLambda = chiadapter.New(mux)
		lambda.Start(lambdaHandler)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.WithField("port", port).Info("Starting quiz-master API")
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
