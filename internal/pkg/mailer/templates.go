package mailer

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"github.com/piresc/easybank/internal/pkg/models"
)

// ErrUnknownKind is returned for events without a template
var ErrUnknownKind = errors.New("unknown email kind")

const layout = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2933;">
  <div style="max-width: 560px; margin: 0 auto; padding: 24px;">
    <h2 style="color: #0b5cad;">EasyBanking</h2>
    {{template "content" .}}
    <p style="font-size: 12px; color: #7b8794;">This is an automated message, please do not reply.</p>
  </div>
</body>
</html>`

const otpContent = `{{define "content"}}
    <p>Hi {{.FirstName}},</p>
    <p>Your verification code is:</p>
    <p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">{{.OTPCode}}</p>
    <p>The code expires in {{.ExpiresIn}}. Never share it with anyone, EasyBanking staff will never ask for it.</p>
{{end}}`

const welcomeContent = `{{define "content"}}
    <p>Hi {{.FirstName}},</p>
    <p>Your EasyBanking account is now verified. You can sign in and start banking.</p>
{{end}}`

// Renderer turns email events into HTML messages
type Renderer struct {
	templates map[models.EmailKind]*template.Template
}

// NewRenderer parses the built-in templates
func NewRenderer() (*Renderer, error) {
	contents := map[models.EmailKind]string{
		models.EmailKindOTP:     otpContent,
		models.EmailKindWelcome: welcomeContent,
	}

	r := &Renderer{templates: make(map[models.EmailKind]*template.Template, len(contents))}
	for kind, content := range contents {
		t, err := template.New(string(kind)).Option("missingkey=error").Parse(layout)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s layout: %w", kind, err)
		}
		if _, err := t.Parse(content); err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", kind, err)
		}
		r.templates[kind] = t
	}
	return r, nil
}

// Render builds the message for event
func (r *Renderer) Render(event *models.EmailEvent) (Message, error) {
	t, ok := r.templates[event.Kind]
	if !ok {
		return Message{}, fmt.Errorf("%w: %q", ErrUnknownKind, event.Kind)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, event); err != nil {
		return Message{}, fmt.Errorf("failed to render %s email: %w", event.Kind, err)
	}

	return Message{
		To:       event.Recipient,
		Subject:  event.Subject,
		HTMLBody: body.String(),
	}, nil
}
