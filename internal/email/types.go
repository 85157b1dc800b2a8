package email

// Email is one outgoing message. HTMLBody wins over Body when both are set.
type Email struct {
	From     string
	To       []string
	ReplyTo  string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData is the data handed to a template.
type TemplateData map[string]interface{}
