package contact_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/usstm/contact-form/modules/contact"
	"github.com/usstm/contact-form/pkg/email"
)

const testOrigin = "https://usstm.ca"

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, msg email.Message) (email.Result, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(email.Result), args.Error(1)
}

func testConfig() contact.Config {
	return contact.Config{
		Recipients:    testRecipients(),
		OriginURL:     testOrigin,
		SubjectPrefix: "[usstm.ca Contact Form] - ",
		Tag:           "contact-form",
	}
}

func newHandler(t *testing.T, cfg contact.Config, sender email.Sender) (*contact.Handler, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	log := slog.New(slog.NewJSONHandler(buf, nil))
	return contact.NewHandler(cfg, sender, log), buf
}

func submissionBody(t *testing.T, mutate func(*contact.Submission)) io.Reader {
	t.Helper()
	sub := testSubmission()
	if mutate != nil {
		mutate(&sub)
	}
	data, err := json.Marshal(sub)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func post(h http.Handler, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func assertNoCORS(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Empty(t, rec.Header().Get("Access-Control-Max-Age"))
}

func TestHandler_Preflight(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	h, _ := newHandler(t, testConfig(), sender)

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", testOrigin)
		req.Header.Set("Access-Control-Request-Method", "POST")
		req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Requested-With")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
		assert.Equal(t, "Content-Type, X-Requested-With", rec.Header().Get("Access-Control-Allow-Headers"))
		assert.Empty(t, rec.Header().Get("Allow"))
	})

	t.Run("plain options", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", testOrigin)
		req.Header.Set("Access-Control-Request-Method", "POST")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "POST, OPTIONS", rec.Header().Get("Allow"))
		assertNoCORS(t, rec)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Headers"))
	})

	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestHandler_Success(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	sender.On("Send", mock.Anything, mock.MatchedBy(func(m email.Message) bool {
		return m.From == "tech@usstm.ca" &&
			m.To == "finance@usstm.ca" &&
			m.ReplyTo == "ada@torontomu.ca" &&
			m.Subject == "[usstm.ca Contact Form] - Reimbursement" &&
			strings.Contains(m.TextBody, "Year: 2\n") &&
			strings.Contains(m.HTMLBody, "<strong>Year:</strong> 2")
	})).Return(email.Result{MessageID: "msg-1"}, nil).Once()

	h, logs := newHandler(t, testConfig(), sender)
	rec := post(h, submissionBody(t, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Success", rec.Body.String())
	assert.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
	assert.Contains(t, logs.String(), "msg-1")
	sender.AssertExpectations(t)
}

func TestHandler_RoutesEveryCategory(t *testing.T) {
	t.Parallel()

	for category, want := range expectedRoutes {
		t.Run(category, func(t *testing.T) {
			t.Parallel()
			sender := &mockSender{}
			sender.On("Send", mock.Anything, mock.MatchedBy(func(m email.Message) bool {
				return m.To == want
			})).Return(email.Result{}, nil).Once()

			h, _ := newHandler(t, testConfig(), sender)
			rec := post(h, submissionBody(t, func(s *contact.Submission) { s.NatureOfRequest = category }))

			assert.Equal(t, http.StatusOK, rec.Code)
			sender.AssertExpectations(t)
		})
	}
}

func TestHandler_UnknownCategory(t *testing.T) {
	t.Parallel()

	t.Run("sends without recipient", func(t *testing.T) {
		t.Parallel()
		sender := &mockSender{}
		sender.On("Send", mock.Anything, mock.MatchedBy(func(m email.Message) bool {
			return m.To == ""
		})).Return(email.Result{ErrorCode: 300, Message: "Invalid 'To' address"}, email.ErrProviderRejected).Once()

		h, logs := newHandler(t, testConfig(), sender)
		rec := post(h, submissionBody(t, func(s *contact.Submission) { s.NatureOfRequest = "Sponsorship" }))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, logs.String(), "unknown category")
		sender.AssertExpectations(t)
	})

	t.Run("strict mode rejects", func(t *testing.T) {
		t.Parallel()
		sender := &mockSender{}
		cfg := testConfig()
		cfg.StrictCategories = true

		h, _ := newHandler(t, cfg, sender)
		rec := post(h, submissionBody(t, func(s *contact.Submission) { s.NatureOfRequest = "Sponsorship" }))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Bad Request", rec.Body.String())
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestHandler_ProviderRejection(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	sender.On("Send", mock.Anything, mock.Anything).
		Return(email.Result{ErrorCode: 406, Message: "Inactive recipient"}, errors.Join(email.ErrProviderRejected, errors.New("postmark error"))).
		Once()

	h, logs := newHandler(t, testConfig(), sender)
	rec := post(h, submissionBody(t, nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", rec.Body.String())
	assertNoCORS(t, rec)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, float64(406), entry["provider_code"])
	assert.Equal(t, "Inactive recipient", entry["provider_message"])
	sender.AssertExpectations(t)
}

func TestHandler_TransportFailure(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	sender.On("Send", mock.Anything, mock.Anything).
		Return(email.Result{}, errors.Join(email.ErrFailedToSendEmail, errors.New("connection refused"))).
		Once()

	h, logs := newHandler(t, testConfig(), sender)
	rec := post(h, submissionBody(t, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Bad Request", rec.Body.String())
	assertNoCORS(t, rec)
	assert.Contains(t, logs.String(), "connection refused")
	sender.AssertExpectations(t)
}

func TestHandler_MalformedBody(t *testing.T) {
	t.Parallel()

	for name, body := range map[string]string{
		"not json":     "hello",
		"truncated":    `{"email":"ada@torontomu.ca","year":"Ye`,
		"empty":        "",
		"empty object": "{}",
		"missing year": `{"email":"ada@torontomu.ca","firstName":"Ada","lastName":"Lovelace",` +
			`"message":"Hi","natureOfRequest":"Finance Request","program":"Physics","subject":"Hi"}`,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			sender := &mockSender{}
			h, logs := newHandler(t, testConfig(), sender)
			rec := post(h, strings.NewReader(body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Bad Request", rec.Body.String())
			assertNoCORS(t, rec)
			assert.Contains(t, logs.String(), "contact form request failed")
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_NonPostMethodsSubmit(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(email.Result{}, nil).Once()

	h, _ := newHandler(t, testConfig(), sender)
	req := httptest.NewRequest(http.MethodPut, "/", submissionBody(t, nil))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	sender.AssertExpectations(t)
}

func TestHandler_PanicIsBadRequest(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		panic("provider client exploded")
	}).Once()

	h, logs := newHandler(t, testConfig(), sender)
	rec := post(h, submissionBody(t, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Bad Request", rec.Body.String())
	assert.Contains(t, logs.String(), "provider client exploded")
}
