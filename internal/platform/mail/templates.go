package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

// message は描画済みのメールです。
type message struct {
	Subject string
	HTML    string
}

type mailTemplate struct {
	subject string
	body    *template.Template
}

var templates = map[string]mailTemplate{
	"verify-email": {
		subject: "Verify your account",
		body: template.Must(template.New("verify-email").Parse(`<div>
  <h2>Verify your email</h2>
  <p>Click the link below to verify your email address.</p>
  <p><a href="{{.link}}">{{.link}}</a></p>
</div>`)),
	},
	"reset-password": {
		subject: "Reset your password",
		body: template.Must(template.New("reset-password").Parse(`<div>
  <h2>Reset your password</h2>
  <p>Click the link below to choose a new password. If you did not ask for this, ignore this email.</p>
  <p><a href="{{.resetPasswordLink}}">{{.resetPasswordLink}}</a></p>
</div>`)),
	},
}

// render は指定されたテンプレートをdataで描画します。
func render(name string, data map[string]any) (message, error) {
	t, ok := templates[name]
	if !ok {
		return message{}, fmt.Errorf("unknown mail template %q", name)
	}
	var buf bytes.Buffer
	if err := t.body.Execute(&buf, data); err != nil {
		return message{}, fmt.Errorf("render %s: %w", name, err)
	}
	return message{Subject: t.subject, HTML: buf.String()}, nil
}
