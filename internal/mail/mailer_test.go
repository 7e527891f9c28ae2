package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testMailer() *Mailer {
	return NewMailer(SMTPConfig{
		Host: "localhost",
		Port: 2525,
		From: "noreply@example.com",
	}, nil)
}

func TestMessageHeaders(t *testing.T) {
	m := testMailer()

	msg := m.message("Interview Invitation", "See you there.", "jane@example.com", "recruiter@example.com")

	assert.Equal(t, []string{"noreply@example.com"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"jane@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Interview Invitation"}, msg.GetHeader("Subject"))
	assert.Equal(t, []string{"recruiter@example.com"}, msg.GetHeader("Reply-To"))
}

func TestMessageWithoutReplyTo(t *testing.T) {
	m := testMailer()

	msg := m.message("Subject", "Body", "jane@example.com", "")
	assert.Empty(t, msg.GetHeader("Reply-To"))
}
