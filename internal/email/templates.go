package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Базовый HTML шаблон для транзакционных писем
const baseTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0; }
        .container { max-width: 600px; margin: 20px auto; background: #ffffff; border-radius: 8px; overflow: hidden; }
        .header { background-color: #2c3e50; color: #ffffff; padding: 24px; text-align: center; }
        .content { padding: 24px; color: #333333; line-height: 1.6; }
        .button { display: inline-block; padding: 12px 24px; background-color: #2c3e50; color: #ffffff !important; text-decoration: none; border-radius: 4px; margin: 16px 0; }
        .footer { padding: 16px 24px; font-size: 12px; color: #999999; text-align: center; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.FromName}}</h1>
        </div>
        <div class="content">
            {{if .UserName}}<p>Hello, {{.UserName}}!</p>{{end}}
            <p>{{.Message}}</p>
            {{if .ActionURL}}
            <p style="text-align: center;">
                <a href="{{.ActionURL}}" class="button">{{.ActionText}}</a>
            </p>
            <p>If the button does not work, copy this link into your browser:<br>{{.ActionURL}}</p>
            {{end}}
        </div>
        <div class="footer">
            <p>If you did not request this email, you can safely ignore it.</p>
        </div>
    </div>
</body>
</html>`

var emailTemplate = template.Must(template.New("email").Parse(baseTemplate))

// renderTemplate рендерит базовый шаблон с переданными данными
func renderTemplate(data TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return buf.String(), nil
}
