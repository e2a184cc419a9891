package dto

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ContactResponse reports whether the form endpoint accepted the message.
// When it did not, MailtoURL carries a pre-filled mail link instead.
type ContactResponse struct {
	Delivered bool   `json:"delivered"`
	MailtoURL string `json:"mailto_url,omitempty"`
	Message   string `json:"message"`
}
