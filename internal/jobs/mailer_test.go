package jobs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessageStripsHeaderBreaks(t *testing.T) {
	msg := string(buildMessage(
		"noreply@eduplatform.test",
		[]string{"alice@test.com", "bob@test.com\r\nBcc: sneak@test.com"},
		"Обновление курса: Go\r\nBcc: sneak@test.com",
		"Курс был обновлен",
	))

	head, body, found := strings.Cut(msg, "\r\n\r\n")
	require.True(t, found)
	for _, line := range strings.Split(head, "\r\n") {
		assert.False(t, strings.HasPrefix(line, "Bcc:"), "injected header line: %q", line)
	}
	assert.Contains(t, body, "Курс был обновлен")
}

func TestBuildMessageKeepsRecipients(t *testing.T) {
	msg := string(buildMessage("noreply@eduplatform.test",
		[]string{"alice@test.com", "bob@test.com"}, "Subject", "body"))
	assert.Contains(t, msg, "To: alice@test.com,bob@test.com\r\n")
}
