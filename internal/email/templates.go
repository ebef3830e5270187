package email

import (
	"bytes"
	"fmt"
	"html/template"
)

var applicationStatusTmpl = template.Must(template.New("application_status").Parse(`
<p>Hi {{.Name}},</p>
<p>Your application for <strong>{{.JobTitle}}</strong> at {{.Company}} is now
<strong>{{.Status}}</strong>.</p>
<p>Log in to your dashboard for details.</p>
`))

var jobStatusTmpl = template.Must(template.New("job_status").Parse(`
<p>Hi {{.Name}},</p>
<p>Your job posting <strong>{{.JobTitle}}</strong> has been
<strong>{{.Status}}</strong>.</p>
`))

// ApplicationStatusBody renders the notification sent to a candidate when a
// recruiter moves their application.
func ApplicationStatusBody(name, jobTitle, company, status string) (string, error) {
	return render(applicationStatusTmpl, map[string]string{
		"Name":     name,
		"JobTitle": jobTitle,
		"Company":  company,
		"Status":   status,
	})
}

// JobStatusBody renders the notification sent to a recruiter when moderation
// moves their posting.
func JobStatusBody(name, jobTitle, status string) (string, error) {
	return render(jobStatusTmpl, map[string]string{
		"Name":     name,
		"JobTitle": jobTitle,
		"Status":   status,
	})
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return buf.String(), nil
}
