package types

import (
	"github.com/go-playground/validator/v10"
)

// ParagraphRequest asks for paragraph suggestions for a draft post.
type ParagraphRequest struct {
	Title    string `json:"title" validate:"required,min=5"`
	Category string `json:"category,omitempty"`
}

// KeywordRequest asks for SEO keywords and metadata for a draft post.
type KeywordRequest struct {
	Title    string `json:"title" validate:"required,min=1"`
	Content  string `json:"content" validate:"required,min=1"`
	Category string `json:"category,omitempty"`
}

// ChatRequest is a single message to the writing assistant.
type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1"`
	Context string `json:"context,omitempty"`
}

// ExcerptRequest asks for a bounded excerpt of the content.
type ExcerptRequest struct {
	Content   string `json:"content" validate:"required,min=1"`
	MaxLength int    `json:"max_length" validate:"required,gte=20"`
}

// Validate validates the ParagraphRequest using the validator.
func (r *ParagraphRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the KeywordRequest using the validator.
func (r *KeywordRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ExcerptRequest using the validator.
func (r *ExcerptRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
