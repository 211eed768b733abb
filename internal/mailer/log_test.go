package mailer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/accounts-server/internal/logger"
)

func TestLogMailer_SendCode(t *testing.T) {
	var buf bytes.Buffer
	m := NewLogMailer(logger.NewWithWriter(&buf, 0, "json"))

	err := m.SendCode(context.Background(), "user@example.com", "email-verification", "123456")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"to":"user@example.com"`)
	assert.Contains(t, out, `"purpose":"email-verification"`)
	assert.Contains(t, out, `"code":"123456"`)
}
