package mailer

import (
	"html/template"
	"strings"
	"time"

	"github.com/vcas-web/vcas-backend/internal/models"
)

// nl2br escapes free text and turns newlines into <br> tags so multi-line
// form input renders as entered.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

var templateFuncs = template.FuncMap{
	"nl2br": nl2br,
}

const emailStyles = `
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #2563eb; color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background: #f9fafb; }
    .field { margin-bottom: 15px; }
    .label { font-weight: bold; color: #374151; }
    .value { margin-top: 5px; padding: 10px; background: white; border-radius: 5px; }
    .message { margin-bottom: 20px; padding: 15px; background: white; border-radius: 5px; border-left: 4px solid #2563eb; }
    .skills { display: flex; flex-wrap: wrap; gap: 5px; }
    .skill { background: #e5e7eb; padding: 5px 10px; border-radius: 15px; font-size: 12px; }
    .footer { text-align: center; padding: 20px; color: #6b7280; font-size: 12px; }
`

var contactNotificationTmpl = template.Must(template.New("contact_notification").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>New Contact Form Submission</title>
  <style>` + emailStyles + `</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>New Contact Form Submission</h1>
    </div>
    <div class="content">
      <div class="field">
        <div class="label">Name:</div>
        <div class="value">{{.Contact.Name}}</div>
      </div>
      <div class="field">
        <div class="label">Email:</div>
        <div class="value">{{.Contact.Email}}</div>
      </div>
      {{if .Contact.Phone}}
      <div class="field">
        <div class="label">Phone:</div>
        <div class="value">{{.Contact.Phone}}</div>
      </div>
      {{end}}
      <div class="field">
        <div class="label">Subject:</div>
        <div class="value">{{.Contact.Subject}}</div>
      </div>
      <div class="field">
        <div class="label">Message:</div>
        <div class="value">{{nl2br .Contact.Message}}</div>
      </div>
      <div class="field">
        <div class="label">Submitted:</div>
        <div class="value">{{.SubmittedAt}}</div>
      </div>
    </div>
    <div class="footer">
      <p>This email was sent from the VCAS website contact form.</p>
    </div>
  </div>
</body>
</html>
`))

var contactConfirmationTmpl = template.Must(template.New("contact_confirmation").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Thank you for contacting VCAS</title>
  <style>` + emailStyles + `</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Thank You for Contacting VCAS!</h1>
    </div>
    <div class="content">
      <div class="message">
        <p>Dear {{.Contact.Name}},</p>
        <p>Thank you for reaching out to us. We have received your message and our team will get back to you within 24-48 hours.</p>
      </div>
      <h3>Your Message Details:</h3>
      <div class="field">
        <div class="label">Subject:</div>
        <div>{{.Contact.Subject}}</div>
      </div>
      <div class="field">
        <div class="label">Message:</div>
        <div>{{nl2br .Contact.Message}}</div>
      </div>
      <div class="message">
        <p><strong>What happens next?</strong></p>
        <ul>
          <li>Our team will review your message</li>
          <li>We'll respond to your inquiry within 24-48 hours</li>
          <li>You'll receive a detailed response at {{.Contact.Email}}</li>
        </ul>
      </div>
    </div>
    <div class="footer">
      <p>This is an automated confirmation email. Please do not reply to this message.</p>
      <p>&copy; VCAS. All rights reserved.</p>
    </div>
  </div>
</body>
</html>
`))

var applicationNotificationTmpl = template.Must(template.New("application_notification").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>New Job Application</title>
  <style>` + emailStyles + `</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>New Job Application</h1>
    </div>
    <div class="content">
      <div class="field">
        <div class="label">Name:</div>
        <div class="value">{{.Application.Name}}</div>
      </div>
      <div class="field">
        <div class="label">Email:</div>
        <div class="value">{{.Application.Email}}</div>
      </div>
      {{if .Application.Phone}}
      <div class="field">
        <div class="label">Phone:</div>
        <div class="value">{{.Application.Phone}}</div>
      </div>
      {{end}}
      <div class="field">
        <div class="label">Position Applied:</div>
        <div class="value">{{.Application.Position}}</div>
      </div>
      {{if .Application.Experience}}
      <div class="field">
        <div class="label">Experience:</div>
        <div class="value">{{nl2br .Application.Experience}}</div>
      </div>
      {{end}}
      {{if .Application.Education}}
      <div class="field">
        <div class="label">Education:</div>
        <div class="value">{{nl2br .Application.Education}}</div>
      </div>
      {{end}}
      {{if .Application.Skills}}
      <div class="field">
        <div class="label">Skills:</div>
        <div class="value">
          <div class="skills">
            {{range .Application.Skills}}<span class="skill">{{.}}</span>{{end}}
          </div>
        </div>
      </div>
      {{end}}
      {{if .Application.CoverLetter}}
      <div class="field">
        <div class="label">Cover Letter:</div>
        <div class="value">{{nl2br .Application.CoverLetter}}</div>
      </div>
      {{end}}
      <div class="field">
        <div class="label">Resume:</div>
        <div class="value">{{if .Application.HasResume}}Attached to this email{{else}}No resume uploaded{{end}}</div>
      </div>
      <div class="field">
        <div class="label">Submitted:</div>
        <div class="value">{{.SubmittedAt}}</div>
      </div>
    </div>
    <div class="footer">
      <p>This email was sent from the VCAS website job application form.</p>
    </div>
  </div>
</body>
</html>
`))

var applicationConfirmationTmpl = template.Must(template.New("application_confirmation").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Thank you for applying to VCAS</title>
  <style>` + emailStyles + `</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Thank You for Applying to VCAS!</h1>
    </div>
    <div class="content">
      <div class="message">
        <p>Dear {{.Application.Name}},</p>
        <p>Thank you for your interest in the <strong>{{.Application.Position}}</strong> position at VCAS. We have successfully received your application and our hiring team will review it carefully.</p>
      </div>
      <h3>Your Application Details:</h3>
      <div class="field">
        <div class="label">Position Applied:</div>
        <div>{{.Application.Position}}</div>
      </div>
      <div class="field">
        <div class="label">Contact Email:</div>
        <div>{{.Application.Email}}</div>
      </div>
      {{if .Application.Phone}}
      <div class="field">
        <div class="label">Contact Phone:</div>
        <div>{{.Application.Phone}}</div>
      </div>
      {{end}}
      <div class="field">
        <div class="label">Resume:</div>
        <div>{{if .Application.HasResume}}Successfully uploaded{{else}}No resume uploaded{{end}}</div>
      </div>
      <div class="message">
        <p><strong>What happens next?</strong></p>
        <ul>
          <li>Our hiring team will review your application</li>
          <li>If your profile matches our requirements, we'll contact you within 5-7 business days</li>
          <li>You may be invited for an initial phone screening</li>
          <li>Selected candidates will proceed to technical interviews</li>
        </ul>
      </div>
    </div>
    <div class="footer">
      <p>This is an automated confirmation email. Please do not reply to this message.</p>
      <p>&copy; VCAS. All rights reserved.</p>
    </div>
  </div>
</body>
</html>
`))

type contactTemplateData struct {
	Contact     *models.ContactSubmission
	SubmittedAt string
}

type applicationTemplateData struct {
	Application *models.ApplicationSubmission
	SubmittedAt string
}

func submittedAt(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.Format("Jan 2, 2006 15:04 MST")
}

func renderContactNotification(contact *models.ContactSubmission) (string, error) {
	var buf strings.Builder
	err := contactNotificationTmpl.Execute(&buf, contactTemplateData{
		Contact:     contact,
		SubmittedAt: submittedAt(contact.CreatedAt),
	})
	return buf.String(), err
}

func renderContactConfirmation(contact *models.ContactSubmission) (string, error) {
	var buf strings.Builder
	err := contactConfirmationTmpl.Execute(&buf, contactTemplateData{
		Contact:     contact,
		SubmittedAt: submittedAt(contact.CreatedAt),
	})
	return buf.String(), err
}

func renderApplicationNotification(application *models.ApplicationSubmission) (string, error) {
	var buf strings.Builder
	err := applicationNotificationTmpl.Execute(&buf, applicationTemplateData{
		Application: application,
		SubmittedAt: submittedAt(application.CreatedAt),
	})
	return buf.String(), err
}

func renderApplicationConfirmation(application *models.ApplicationSubmission) (string, error) {
	var buf strings.Builder
	err := applicationConfirmationTmpl.Execute(&buf, applicationTemplateData{
		Application: application,
		SubmittedAt: submittedAt(application.CreatedAt),
	})
	return buf.String(), err
}
