// Package domain defines the core types and interfaces for the detect service
package domain

// Prompt is returned instead of a detection when the input is blank
const Prompt = "Please enter some text."

// DetectInput is the JSON request body
type DetectInput struct {
	Text string `json:"text" example:"สวัสดีครับ"`
	Top  int    `json:"top,omitempty" validate:"omitempty,min=1,max=20" example:"3"`
}

// TextInput is the plain request body for the text endpoint
type TextInput struct {
	Text string `json:"text" example:"こんにちは世界"`
}

// Candidate is one ranked language guess
type Candidate struct {
	Language     string  `json:"language"      example:"th"`
	LanguageName string  `json:"language_name" example:"Thai"`
	Confidence   float64 `json:"confidence"    example:"0.9731"`
	Percent      string  `json:"percent"       example:"97.31%"`
}

// DetectOutput is the JSON response, Prompt is set only for blank input
type DetectOutput struct {
	ID           string      `json:"id,omitempty"            example:"0b6f5e4c-1c1e-4b43-9d6b-2ad2a7a1f5a1"`
	Language     string      `json:"language,omitempty"      example:"th"`
	LanguageName string      `json:"language_name,omitempty" example:"Thai"`
	Confidence   float64     `json:"confidence,omitempty"    example:"0.9731"`
	Percent      string      `json:"percent,omitempty"       example:"97.31%"`
	Script       string      `json:"script,omitempty"        example:"thai"`
	Tokenized    string      `json:"tokenized,omitempty"     example:"สวัสดี ครับ"`
	Output       string      `json:"output"                  example:"Language: th\nConfidence: 97.31%"`
	Candidates   []Candidate `json:"candidates,omitempty"`
	Prompt       string      `json:"prompt,omitempty"        example:"Please enter some text."`
}
