package quiz

import (
	"time"

	"github.com/google/uuid"
)

type CreateQuizDTO struct {
	ChapterID    string `json:"chapter_id" validate:"required,uuid"`
	DateOfQuiz   string `json:"date_of_quiz" validate:"required,datetime=2006-01-02"`
	TimeDuration string `json:"time_duration" validate:"required"`
	Remarks      string `json:"remarks"`
}

type UpdateQuizDTO struct {
	DateOfQuiz   *string `json:"date_of_quiz" validate:"omitempty,datetime=2006-01-02"`
	TimeDuration *string `json:"time_duration"`
	Remarks      *string `json:"remarks"`
}

type QuestionDTO struct {
	QuestionTitle     string `json:"question_title" validate:"required"`
	QuestionStatement string `json:"question_statement" validate:"required"`
	Option1           string `json:"option1" validate:"required"`
	Option2           string `json:"option2" validate:"required"`
	Option3           string `json:"option3"`
	Option4           string `json:"option4"`
	CorrectOption     string `json:"correct_option" validate:"required,oneof=option1 option2 option3 option4"`
}

// QuestionView is the public projection handed to quiz takers. No answer key.
type QuestionView struct {
	ID                uuid.UUID `json:"id"`
	QuestionTitle     string    `json:"question_title"`
	QuestionStatement string    `json:"question_statement"`
	Option1           string    `json:"option1"`
	Option2           string    `json:"option2"`
	Option3           string    `json:"option3,omitempty"`
	Option4           string    `json:"option4,omitempty"`
}

func toQuestionView(q *Question) QuestionView {
	return QuestionView{
		ID:                q.ID,
		QuestionTitle:     q.QuestionTitle,
		QuestionStatement: q.QuestionStatement,
		Option1:           q.Option1,
		Option2:           q.Option2,
		Option3:           q.Option3,
		Option4:           q.Option4,
	}
}

// CatalogItem backs the user dashboard listing: one row per quiz, joined with
// its chapter and subject names plus a question count.
type CatalogItem struct {
	QuizID        uuid.UUID `json:"quiz_id"`
	SubjectName   string    `json:"subject_name"`
	ChapterName   string    `json:"chapter_name"`
	DateOfQuiz    time.Time `json:"date_of_quiz"`
	TimeDuration  string    `json:"time_duration"`
	QuestionCount int       `json:"question_count"`
}

// QuestionAdminView re-exposes the answer key for the admin editing screens.
// Routed behind the admin gate only.
type QuestionAdminView struct {
	Question
	CorrectOption string `json:"correct_option"`
}

func toQuestionAdminView(q *Question) QuestionAdminView {
	return QuestionAdminView{Question: *q, CorrectOption: q.CorrectOption}
}

type QuizTakingView struct {
	Quiz      CatalogItem    `json:"quiz"`
	Remarks   string         `json:"remarks,omitempty"`
	Questions []QuestionView `json:"questions"`
}
