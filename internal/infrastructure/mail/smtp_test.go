package mail

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"

	"jobboard/internal/config"
	"jobboard/internal/notify"
)

func TestNew_FallsBackToLogMailer(t *testing.T) {
	m, err := New(config.MailConfig{}, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := m.(*LogMailer); !ok {
		t.Fatalf("expected LogMailer, got %T", m)
	}
}

func TestNew_SMTPWhenHostSet(t *testing.T) {
	m, err := New(config.MailConfig{SMTPHost: "smtp.example.com", SMTPPort: 587, From: "jobs@example.com"}, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := m.(*SMTPMailer); !ok {
		t.Fatalf("expected SMTPMailer, got %T", m)
	}
}

func TestSMTPMailer_RejectsBadRecipient(t *testing.T) {
	m, err := NewSMTPMailer(config.MailConfig{SMTPHost: "smtp.example.com", SMTPPort: 587, From: "jobs@example.com"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := m.message(notify.Email{To: "not an address", Subject: "s", Body: "b"}); err == nil {
		t.Fatalf("expected invalid recipient error")
	}
	if _, err := m.message(notify.Email{To: "cand@example.com", Subject: "s", Body: "b"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestLogMailer_Logs(t *testing.T) {
	var buf bytes.Buffer
	m := NewLogMailer(log.New(&buf, "", 0))
	if err := m.Send(context.Background(), notify.Email{To: "a@b.c", Subject: "Hello"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(buf.String(), "to=a@b.c") {
		t.Fatalf("unexpected log %q", buf.String())
	}
}
