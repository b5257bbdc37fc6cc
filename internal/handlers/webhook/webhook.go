package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/GlebRadaev/costeo/internal/domain"
	"github.com/GlebRadaev/costeo/internal/dto"
	"github.com/GlebRadaev/costeo/internal/service/ingestservice"
	"github.com/GlebRadaev/costeo/internal/service/resolverservice"
	"github.com/GlebRadaev/costeo/pkg/clients"
	"github.com/GlebRadaev/costeo/pkg/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=webhook.go -destination=mock_webhook.go -package=webhook

const maxBodySize = 5 << 20

type Resolver interface {
	Resolve(ctx context.Context, shortID string) (string, error)
}

type Ingester interface {
	Ingest(ctx context.Context, storeID string, payload []byte) (*domain.Order, error)
}

type WebhookHandler struct {
	resolver  Resolver
	ingester  Ingester
	client    clients.HTTPClientI
	ingestURL string
}

func New(resolver Resolver, ingester Ingester, client clients.HTTPClientI, ingestURL string) *WebhookHandler {
	return &WebhookHandler{
		resolver:  resolver,
		ingester:  ingester,
		client:    client,
		ingestURL: ingestURL,
	}
}

// Redirect godoc
//
//	@Summary		Forward a store webhook by short id
//	@Description	Resolves the short id to a store and forwards the body verbatim to the ingestion endpoint. The ingestion response is relayed unchanged.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			shortID	path		string				true	"Webhook short id"
//	@Success		200		{object}	dto.IngestResponseDTO	"Order stored"
//	@Failure		400		{object}	utils.Response		"Missing or malformed short id"
//	@Failure		404		{object}	utils.Response		"Unknown short id"
//	@Failure		405		{object}	utils.Response		"Method not allowed"
//	@Failure		502		{object}	utils.Response		"Ingestion endpoint unreachable"
//	@Router			/api/webhooks/r/{shortID} [post]
func (h *WebhookHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	shortID := chi.URLParam(r, "shortID")
	if shortID == "" {
		shortID = r.URL.Query().Get("short_id")
	}

	storeID, err := h.resolver.Resolve(r.Context(), shortID)
	if err != nil {
		switch {
		case errors.Is(err, resolverservice.ErrShortIDRequired), errors.Is(err, resolverservice.ErrShortIDMalformed):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, resolverservice.ErrStoreNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	target, err := h.target(storeID)
	if err != nil {
		zap.L().Error("bad ingest url", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	status, respBody, respHeaders, err := h.client.Post(r.Context(), target, forwardHeaders(r.Header), body)
	if err != nil {
		zap.L().Error("failed to forward webhook", zap.String("store_id", storeID), zap.Error(err))
		utils.RespondWithError(w, http.StatusBadGateway, "ingestion endpoint unreachable")
		return
	}

	if ct := respHeaders.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(status)
	if _, err := w.Write(respBody); err != nil {
		zap.L().Error("can't write response", zap.Error(err))
	}
}

func (h *WebhookHandler) target(storeID string) (string, error) {
	u, err := url.Parse(h.ingestURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("store_id", storeID)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func forwardHeaders(src http.Header) http.Header {
	dst := http.Header{}
	for name, values := range src {
		canonical := http.CanonicalHeaderKey(name)
		if canonical == "Content-Type" ||
			strings.HasPrefix(canonical, "X-Shopify-") ||
			strings.HasPrefix(canonical, "X-Webhook-") {
			dst[canonical] = append([]string(nil), values...)
		}
	}
	return dst
}

// Ingest godoc
//
//	@Summary		Ingest an order event
//	@Description	Normalizes a store order payload and upserts it keyed on the store and the external order id.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			store_id	query		string					true	"Store id (UUID)"
//	@Param			request		body		object					true	"Third-party order payload"
//	@Success		200			{object}	dto.IngestResponseDTO	"Order stored"
//	@Failure		400			{object}	utils.Response			"Missing store id or invalid payload"
//	@Failure		404			{object}	utils.Response			"Unknown store"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/webhooks/orders [post]
func (h *WebhookHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		utils.RespondWithErrorDetails(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	_, err = h.ingester.Ingest(r.Context(), r.URL.Query().Get("store_id"), body)
	if err != nil {
		switch {
		case errors.Is(err, ingestservice.ErrStoreIDRequired), errors.Is(err, ingestservice.ErrStoreIDMalformed):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ingestservice.ErrInvalidPayload):
			utils.RespondWithErrorDetails(w, http.StatusBadRequest, ingestservice.ErrInvalidPayload.Error(), err.Error())
		case errors.Is(err, ingestservice.ErrStoreNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithErrorDetails(w, http.StatusInternalServerError, "Internal server error", err.Error())
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.IngestResponseDTO{Success: true})
}
