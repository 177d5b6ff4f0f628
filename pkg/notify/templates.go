package notify

import (
	"bytes"
	"fmt"
	"html/template"
	texttemplate "text/template"
)

// EmailMessage is a rendered notification email.
type EmailMessage struct {
	To       string
	Subject  string
	HTMLBody string
}

type emailTemplate struct {
	subject *texttemplate.Template
	body    *template.Template
}

// Notification templates keyed by event kind. The Arabic copy is content the
// clinic staff reads, not logic; field labels match the authored chat flows.
var emailTemplates = map[EventKind]emailTemplate{
	KindAppointment: {
		subject: texttemplate.Must(texttemplate.New("appointment_subject").Parse(
			`طلب موعد جديد من: {{.name}}`,
		)),
		body: template.Must(template.New("appointment_body").Parse(`
<html><body dir="rtl" style="font-family: Arial, sans-serif;">
	<h2>طلب موعد جديد عبر الشات بوت (New appointment request)</h2>
	<p><strong>اسم المراجع:</strong> {{.name}}</p>
	<p><strong>رقم الجوال:</strong> {{.phone}}</p>
	<p><strong>العيادة المطلوبة:</strong> {{.clinic}}</p>
</body></html>
`)),
	},
	KindInsuranceInquiry: {
		subject: texttemplate.Must(texttemplate.New("insurance_subject").Parse(
			`استفسار تأمين جديد من: {{.name}}`,
		)),
		body: template.Must(template.New("insurance_body").Parse(`
<html><body dir="rtl" style="font-family: Arial, sans-serif;">
	<h2>استفسار تأمين جديد عبر الشات بوت (New insurance inquiry)</h2>
	<p><strong>اسم المراجع:</strong> {{.name}}</p>
	<p><strong>رقم الجوال:</strong> {{.phone}}</p>
	<p><strong>شركة التأمين:</strong> {{.insuranceCompany}}</p>
</body></html>
`)),
	},
	KindApprovalInquiry: {
		subject: texttemplate.Must(texttemplate.New("approval_subject").Parse(
			`طلب موافقة طبية جديد`,
		)),
		body: template.Must(template.New("approval_body").Parse(`
<html><body dir="rtl" style="font-family: Arial, sans-serif;">
	<h2>طلب موافقة طبية جديد عبر الشات بوت (New medical approval request)</h2>
	<p><strong>رقم الهوية:</strong> {{.idNumber}}</p>
	<p><strong>رقم الجوال:</strong> {{.phone}}</p>
	<p><strong>تاريخ الطلب:</strong> {{.date}}</p>
</body></html>
`)),
	},
}

// RenderEmail renders the notification email for event, addressed to the
// event's recipient. Unknown event kinds are an error.
func RenderEmail(event Event) (EmailMessage, error) {
	tpl, ok := emailTemplates[event.Kind]
	if !ok {
		return EmailMessage{}, fmt.Errorf("notify: no email template for event kind %q", event.Kind)
	}

	var subject bytes.Buffer
	if err := tpl.subject.Execute(&subject, event.Fields); err != nil {
		return EmailMessage{}, fmt.Errorf("notify: render subject: %w", err)
	}
	var body bytes.Buffer
	if err := tpl.body.Execute(&body, event.Fields); err != nil {
		return EmailMessage{}, fmt.Errorf("notify: render body: %w", err)
	}

	return EmailMessage{
		To:       event.Recipient,
		Subject:  subject.String(),
		HTMLBody: body.String(),
	}, nil
}
