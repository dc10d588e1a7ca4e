package chapter

type CreateChapterDTO struct {
	SubjectID   string `json:"subject_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type UpdateChapterDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
