package emails

import "time"

// Metadata carries the envelope fields a QA run inspects alongside the HTML.
type Metadata struct {
	Subject      string `json:"subject"`
	Preheader    string `json:"preheader"`
	TemplateName string `json:"template_name"`
	Locale       string `json:"locale"`
	CreatedAt    string `json:"created_at"`
}

// EmailTemplate represents one email proof under QA.
type EmailTemplate struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	HTMLContent string    `json:"html_content"`
	Metadata    Metadata  `json:"metadata"`
	CreatedAt   time.Time `json:"created_at"`
}
