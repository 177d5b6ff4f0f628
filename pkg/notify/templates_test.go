package notify

import (
	"strings"
	"testing"
)

func TestRenderEmailAppointment(t *testing.T) {
	msg, err := RenderEmail(Event{
		Kind:      KindAppointment,
		Recipient: "clinic@example.com",
		Fields: map[string]string{
			"name":   "Sara",
			"phone":  "0501234567",
			"clinic": "Dermatology",
		},
	})
	if err != nil {
		t.Fatalf("RenderEmail: %v", err)
	}

	if msg.To != "clinic@example.com" {
		t.Fatalf("To = %q, want clinic@example.com", msg.To)
	}
	if !strings.Contains(msg.Subject, "Sara") {
		t.Fatalf("subject %q does not contain the patient name", msg.Subject)
	}
	for _, want := range []string{"Sara", "0501234567", "Dermatology", `dir="rtl"`, "اسم المراجع"} {
		if !strings.Contains(msg.HTMLBody, want) {
			t.Fatalf("body missing %q:\n%s", want, msg.HTMLBody)
		}
	}
}

func TestRenderEmailInsuranceInquiry(t *testing.T) {
	msg, err := RenderEmail(Event{
		Kind:      KindInsuranceInquiry,
		Recipient: "insurance@example.com",
		Fields: map[string]string{
			"name":             "Omar",
			"phone":            "0559876543",
			"insuranceCompany": "Bupa",
		},
	})
	if err != nil {
		t.Fatalf("RenderEmail: %v", err)
	}

	for _, want := range []string{"Omar", "Bupa", "شركة التأمين"} {
		if !strings.Contains(msg.HTMLBody, want) {
			t.Fatalf("body missing %q:\n%s", want, msg.HTMLBody)
		}
	}
}

func TestRenderEmailApprovalInquiry(t *testing.T) {
	msg, err := RenderEmail(Event{
		Kind:      KindApprovalInquiry,
		Recipient: "approvals@example.com",
		Fields: map[string]string{
			"idNumber": "1012345678",
			"phone":    "0501112222",
			"date":     "2026-09-01",
		},
	})
	if err != nil {
		t.Fatalf("RenderEmail: %v", err)
	}

	for _, want := range []string{"1012345678", "2026-09-01", "رقم الهوية"} {
		if !strings.Contains(msg.HTMLBody, want) {
			t.Fatalf("body missing %q:\n%s", want, msg.HTMLBody)
		}
	}
}

func TestRenderEmailUnknownKind(t *testing.T) {
	_, err := RenderEmail(Event{Kind: EventKind("walk_in")})
	if err == nil {
		t.Fatal("expected an error for an unknown event kind")
	}
}
