package contactController

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []string // recipients, in send order
	fail bool
}

func (f *fakeSender) Send(to, subject, htmlBody, textBody string) error {
	if f.fail {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, to)
	return nil
}

func contactRouter(sender *fakeSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/contact", SendContactEmail(sender, "shop@example.com"))
	r.POST("/contact/newsletter", SubscribeNewsletter(sender))
	return r
}

func post(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestContactSendsBothEmails(t *testing.T) {
	sender := &fakeSender{}
	r := contactRouter(sender)

	w := post(r, "/contact", gin.H{
		"name":    "Alice",
		"email":   "alice@example.com",
		"subject": "Delivery question",
		"message": "Where is my order?",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, sender.sent, 2)
	assert.Equal(t, "shop@example.com", sender.sent[0])
	assert.Equal(t, "alice@example.com", sender.sent[1])
}

func TestContactValidation(t *testing.T) {
	sender := &fakeSender{}
	r := contactRouter(sender)

	w := post(r, "/contact", gin.H{"name": "Alice", "email": "alice@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(r, "/contact", gin.H{
		"name": "Alice", "email": "not-an-email",
		"subject": "s", "message": "m",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Empty(t, sender.sent)
}

func TestContactUpstreamFailure(t *testing.T) {
	r := contactRouter(&fakeSender{fail: true})

	w := post(r, "/contact", gin.H{
		"name": "Alice", "email": "alice@example.com",
		"subject": "s", "message": "m",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// the SMTP error itself is never leaked
	assert.NotContains(t, w.Body.String(), "smtp unavailable")
}

func TestNewsletter(t *testing.T) {
	sender := &fakeSender{}
	r := contactRouter(sender)

	w := post(r, "/contact/newsletter", gin.H{"email": "alice@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "alice@example.com", sender.sent[0])

	w = post(r, "/contact/newsletter", gin.H{"email": "bad"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(r, "/contact/newsletter", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
