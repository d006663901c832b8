package email

import "embed"

//go:embed templates/*.html
var templates embed.FS

// Template names an embedded email template.
type Template string

const (
	// TemplateWelcome corresponds to templates/welcome.html
	TemplateWelcome Template = "welcome"
)
