package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/lawra/internal/directory"
	"github.com/davidbz/lawra/internal/domain"
	lawrahttp "github.com/davidbz/lawra/internal/http"
	"github.com/davidbz/lawra/internal/inflight"
	"github.com/davidbz/lawra/internal/mocks"
	"github.com/davidbz/lawra/internal/provider/demo"
)

type testServer struct {
	client   *mocks.MockCompletionClient
	payments *mocks.MockPaymentProcessor
	routes   http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	catalog, err := directory.Load(nil)
	require.NoError(t, err)

	client := mocks.NewMockCompletionClient(t)
	payments := mocks.NewMockPaymentProcessor(t)

	handler := lawrahttp.NewHandler(
		domain.NewChatService(client, demo.NewResponder(), inflight.NewMemory(), nil),
		domain.NewDirectoryService(catalog),
		domain.NewCheckoutService(catalog, payments, 0.05, nil),
	)

	return &testServer{
		client:   client,
		payments: payments,
		routes:   handler.Routes(),
	}
}

func (s *testServer) do(method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	s.routes.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	return out
}

func TestHandleChat(t *testing.T) {
	t.Run("should answer with the completion text", func(t *testing.T) {
		s := newTestServer(t)
		s.client.EXPECT().IsConfigured().Return(true)
		s.client.EXPECT().Model().Return("gpt-4o-mini")
		s.client.EXPECT().Complete(mock.Anything, mock.Anything).
			Return(&domain.CompletionResponse{Model: "gpt-4o-mini", Text: "Yes, you can."}, nil).Once()

		w := s.do(http.MethodPost, "/v1/chat", map[string]any{
			"conversation_id": "conv-1",
			"history":         []map[string]string{{"role": "user", "content": "hi"}, {"role": "assistant", "content": "hello"}},
			"message":         "Can I file for divorce?",
		})

		require.Equal(t, http.StatusOK, w.Code)
		reply := decode[domain.ChatReply](t, w)
		require.Equal(t, "conv-1", reply.ConversationID)
		require.Equal(t, "Yes, you can.", reply.Text)
		require.Nil(t, reply.Error)
	})

	t.Run("should assign a conversation id when missing", func(t *testing.T) {
		s := newTestServer(t)
		s.client.EXPECT().IsConfigured().Return(false)

		w := s.do(http.MethodPost, "/v1/chat", map[string]any{"message": "hello"})

		require.Equal(t, http.StatusOK, w.Code)
		reply := decode[domain.ChatReply](t, w)
		require.NotEmpty(t, reply.ConversationID)
		require.True(t, reply.Demo)
		require.Contains(t, reply.Text, "hello")
		require.Equal(t, domain.KindNotConfigured, reply.Error.Kind)
	})

	t.Run("should return completion failures as a 200 with an error", func(t *testing.T) {
		s := newTestServer(t)
		s.client.EXPECT().IsConfigured().Return(true)
		s.client.EXPECT().Model().Return("gpt-4o-mini")
		s.client.EXPECT().Complete(mock.Anything, mock.Anything).
			Return(nil, &domain.CompletionError{Kind: domain.KindInvalidCredential, Message: "Invalid API key.", StatusCode: 401}).Once()

		w := s.do(http.MethodPost, "/v1/chat", map[string]any{"conversation_id": "c", "message": "hello"})

		require.Equal(t, http.StatusOK, w.Code)
		reply := decode[domain.ChatReply](t, w)
		require.Equal(t, domain.KindInvalidCredential, reply.Error.Kind)
		require.Equal(t, "Invalid API key.", reply.Error.Message)
	})

	t.Run("should reject empty messages", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(http.MethodPost, "/v1/chat", map[string]any{"message": "   "})

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should reject unknown history roles", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(http.MethodPost, "/v1/chat", map[string]any{
			"message": "hello",
			"history": []map[string]string{{"role": "robot", "content": "beep"}},
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should reject malformed bodies and wrong methods", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(http.MethodPost, "/v1/chat", map[string]any{"msg": "unknown field"})
		require.Equal(t, http.StatusBadRequest, w.Code)

		w = s.do(http.MethodGet, "/v1/chat", nil)
		require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestHandleChatStatus(t *testing.T) {
	t.Run("should report configuration", func(t *testing.T) {
		s := newTestServer(t)
		s.client.EXPECT().IsConfigured().Return(false)
		s.client.EXPECT().Model().Return("gpt-4o-mini")

		w := s.do(http.MethodGet, "/v1/chat/status", nil)

		require.Equal(t, http.StatusOK, w.Code)
		status := decode[domain.ChatStatus](t, w)
		require.False(t, status.Configured)
		require.Equal(t, domain.ExampleQuestions, status.Examples)
	})
}

type lawyerList struct {
	Count   int                     `json:"count"`
	Lawyers []domain.ProviderRecord `json:"lawyers"`
}

func TestHandleListLawyers(t *testing.T) {
	t.Run("should list every lawyer without filters", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(http.MethodGet, "/v1/lawyers", nil)

		require.Equal(t, http.StatusOK, w.Code)
		list := decode[lawyerList](t, w)
		require.Equal(t, 6, list.Count)
		require.Equal(t, "1", list.Lawyers[0].ID)
	})

	t.Run("should apply budget and specialty filters", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(http.MethodGet, "/v1/lawyers?budget=2000_2500", nil)
		require.Equal(t, http.StatusOK, w.Code)
		list := decode[lawyerList](t, w)
		require.Equal(t, 3, list.Count)

		w = s.do(http.MethodGet, "/v1/lawyers?specialty=%E0%B8%81%E0%B8%8E%E0%B8%AB%E0%B8%A1%E0%B8%B2%E0%B8%A2%E0%B8%AD%E0%B8%B2%E0%B8%8D%E0%B8%B2", nil)
		require.Equal(t, http.StatusOK, w.Code)
		list = decode[lawyerList](t, w)
		require.Equal(t, 1, list.Count)
		require.Equal(t, "3", list.Lawyers[0].ID)
	})

	t.Run("should reject unknown budgets", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(http.MethodGet, "/v1/lawyers?budget=cheap", nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleGetLawyer(t *testing.T) {
	t.Run("should return a lawyer by id", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(http.MethodGet, "/v1/lawyers/3", nil)

		require.Equal(t, http.StatusOK, w.Code)
		lawyer := decode[domain.ProviderRecord](t, w)
		require.Equal(t, "3", lawyer.ID)
	})

	t.Run("should return 404 for unknown ids", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(http.MethodGet, "/v1/lawyers/99", nil)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleLawyerFacets(t *testing.T) {
	t.Run("should list specialties and bands", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(http.MethodGet, "/v1/lawyers/facets", nil)

		require.Equal(t, http.StatusOK, w.Code)
		facets := decode[domain.DirectoryFacets](t, w)
		require.Equal(t, domain.SpecialtyAll, facets.Specialties[0])
		require.Len(t, facets.Specialties, 7)
		require.Len(t, facets.PriceBands, 5)
	})
}

func TestHandleCheckout(t *testing.T) {
	t.Run("should quote a consultation", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(http.MethodPost, "/v1/checkout/quote", map[string]any{"lawyer_id": "1", "hours": 2})

		require.Equal(t, http.StatusOK, w.Code)
		quote := decode[domain.Quote](t, w)
		require.InDelta(t, 5250.0, quote.Total, 0.001)
	})

	t.Run("should reject out of range hours", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(http.MethodPost, "/v1/checkout/quote", map[string]any{"lawyer_id": "1", "hours": 5})

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should reject a quote without a lawyer id", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(http.MethodPost, "/v1/checkout/quote", map[string]any{"hours": 1})

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, decode[map[string]string](t, w)["error"], "lawyer_id is required")
	})

	t.Run("should confirm a booking", func(t *testing.T) {
		s := newTestServer(t)
		s.payments.EXPECT().Process(mock.Anything, mock.Anything, mock.Anything).
			Return(&domain.Booking{ID: "bk-1", Status: "confirmed", Demo: true}, nil).Once()

		w := s.do(http.MethodPost, "/v1/checkout/bookings", map[string]any{
			"lawyer_id":      "1",
			"date":           "2099-03-01",
			"time_slot":      "14:00",
			"hours":          1,
			"payment_method": "card",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		booking := decode[domain.Booking](t, w)
		require.Equal(t, "bk-1", booking.ID)
		require.True(t, booking.Demo)
	})

	t.Run("should return 404 when booking an unknown lawyer", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(http.MethodPost, "/v1/checkout/bookings", map[string]any{
			"lawyer_id":      "42",
			"date":           "2099-03-01",
			"time_slot":      "14:00",
			"hours":          1,
			"payment_method": "card",
		})

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	t.Run("should report healthy", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(http.MethodGet, "/health", nil)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "healthy", decode[map[string]string](t, w)["status"])
	})
}
