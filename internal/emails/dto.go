package emails

// UploadRequest is the POST /emails payload.
type UploadRequest struct {
	Name        string   `json:"name"`
	HTMLContent string   `json:"html_content" binding:"required"`
	Metadata    Metadata `json:"metadata"`
}

// Summary is the list-view projection of a template.
type Summary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	Subject      string `json:"subject"`
	TemplateName string `json:"template_name"`
	Locale       string `json:"locale"`
}

// ToSummary projects a template for list responses.
func ToSummary(email EmailTemplate) Summary {
	return Summary{
		ID:           email.ID,
		Name:         email.Name,
		Status:       email.Status,
		Subject:      email.Metadata.Subject,
		TemplateName: email.Metadata.TemplateName,
		Locale:       email.Metadata.Locale,
	}
}
