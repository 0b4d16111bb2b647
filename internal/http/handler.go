package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/davidbz/lawra/internal/domain"
	"github.com/davidbz/lawra/internal/observability"
)

const maxRequestBodyBytes = 1 << 20

// Handler handles HTTP requests.
type Handler struct {
	chat      *domain.ChatService
	directory *domain.DirectoryService
	checkout  *domain.CheckoutService
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(
	chat *domain.ChatService,
	directory *domain.DirectoryService,
	checkout *domain.CheckoutService,
) *Handler {
	return &Handler{
		chat:      chat,
		directory: directory,
		checkout:  checkout,
	}
}

// Routes registers every endpoint on a new mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/chat", h.HandleChat)
	mux.HandleFunc("/v1/chat/status", h.HandleChatStatus)
	mux.HandleFunc("/v1/lawyers", h.HandleListLawyers)
	mux.HandleFunc("/v1/lawyers/facets", h.HandleLawyerFacets)
	mux.HandleFunc("/v1/lawyers/{id}", h.HandleGetLawyer)
	mux.HandleFunc("/v1/checkout/quote", h.HandleQuote)
	mux.HandleFunc("/v1/checkout/bookings", h.HandleBooking)
	mux.HandleFunc("/health", h.HandleHealth)

	return mux
}

type chatRequest struct {
	ConversationID string                    `json:"conversation_id"`
	History        []domain.ConversationTurn `json:"history"`
	Message        string                    `json:"message"`
}

// HandleChat answers one chat submission.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Early validation.
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req chatRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if req.ConversationID == "" {
		req.ConversationID = uuid.New().String()
	}

	ctx = observability.WithConversationID(ctx, req.ConversationID)
	logger := observability.FromContext(ctx)
	logger.Info("chat request received",
		observability.Int("history_length", len(req.History)),
	)

	reply, err := h.chat.Ask(ctx, req.ConversationID, req.History, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyMessage),
			errors.Is(err, domain.ErrInvalidHistory),
			errors.Is(err, domain.ErrMissingConversationID):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrConversationBusy):
			writeError(w, http.StatusConflict, err.Error())
		default:
			logger.Error("chat failed", observability.Error(err))
			writeError(w, http.StatusInternalServerError, "chat failed")
		}
		return
	}

	logger.Info("chat request answered",
		observability.Bool("demo", reply.Demo),
		observability.Bool("failed", reply.Error != nil),
	)

	writeJSON(w, http.StatusOK, reply)
}

// HandleChatStatus reports whether live answers are available.
func (h *Handler) HandleChatStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, h.chat.Status())
}

type lawyerListResponse struct {
	Count   int                     `json:"count"`
	Lawyers []domain.ProviderRecord `json:"lawyers"`
}

// HandleListLawyers filters the directory by q, specialty and budget.
func (h *Handler) HandleListLawyers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	query := r.URL.Query()
	criteria := domain.FilterCriteria{
		SearchText:   query.Get("q"),
		SpecialtyTag: query.Get("specialty"),
		PriceBand:    domain.PriceBand(query.Get("budget")),
	}

	if !criteria.PriceBand.IsValid() {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown budget %q", criteria.PriceBand))
		return
	}

	lawyers, err := h.directory.Search(ctx, criteria)
	if err != nil {
		observability.FromContext(ctx).Error("directory search failed", observability.Error(err))
		writeError(w, http.StatusInternalServerError, "directory search failed")
		return
	}

	writeJSON(w, http.StatusOK, lawyerListResponse{
		Count:   len(lawyers),
		Lawyers: lawyers,
	})
}

// HandleLawyerFacets lists the directory filter options.
func (h *Handler) HandleLawyerFacets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	facets, err := h.directory.Facets(ctx)
	if err != nil {
		observability.FromContext(ctx).Error("directory facets failed", observability.Error(err))
		writeError(w, http.StatusInternalServerError, "directory facets failed")
		return
	}

	writeJSON(w, http.StatusOK, facets)
}

// HandleGetLawyer returns one lawyer.
func (h *Handler) HandleGetLawyer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	lawyer, err := h.directory.Get(ctx, r.PathValue("id"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, lawyer)
}

type quoteRequest struct {
	LawyerID string `json:"lawyer_id"`
	Hours    int    `json:"hours"`
}

// HandleQuote prices a consultation.
func (h *Handler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req quoteRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	quote, err := h.checkout.Quote(ctx, req.LawyerID, req.Hours)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, quote)
}

// HandleBooking runs the demo payment and confirms a booking.
func (h *Handler) HandleBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req domain.BookingRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	booking, err := h.checkout.Book(ctx, &req)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	observability.FromContext(ctx).Info("booking confirmed",
		observability.String("booking_id", booking.ID),
		observability.Bool("demo", booking.Demo),
	)

	writeJSON(w, http.StatusCreated, booking)
}

func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrLawyerNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidBooking):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		observability.FromContext(r.Context()).Error("request failed", observability.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Already written status, can't change it, just drop.
		return
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
