package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/GlebRadaev/costeo/internal/config"
	"github.com/GlebRadaev/costeo/internal/metrics"
	"github.com/GlebRadaev/costeo/pkg/auth"
	"github.com/GlebRadaev/costeo/pkg/clients"
	"go.uber.org/zap"
)

const serviceTokenTTL = time.Minute

// Notification is the body accepted by the dispatcher.
type Notification struct {
	EventCode      string            `json:"codigo_evento"`
	Data           map[string]string `json:"datos"`
	TargetID       string            `json:"targetId,omitempty"`
	RefersToUserID string            `json:"refersToUserId,omitempty"`
}

type dispatchResponse struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
}

// Gateway hands notifications to a background worker pool. None of its
// methods report failures to the caller; they are logged and counted.
type Gateway struct {
	url     string
	client  clients.HTTPClientI
	tokens  auth.JWTServiceInterface
	pool    WorkerPoolI
	metrics *metrics.Metrics
}

func New(cfg *config.Config, client clients.HTTPClientI, tokens auth.JWTServiceInterface, m *metrics.Metrics) *Gateway {
	return &Gateway{
		url:     cfg.DispatchURL,
		client:  client,
		tokens:  tokens,
		pool:    NewWorkerPool(cfg.DispatchWorkers, cfg.DispatchQueue),
		metrics: m,
	}
}

func (g *Gateway) Fire(ctx context.Context, code string, data map[string]string) {
	g.Publish(ctx, Notification{EventCode: code, Data: data})
}

// FireFor tags the notification with the entity it is addressed to.
func (g *Gateway) FireFor(ctx context.Context, code, targetID string, data map[string]string) {
	g.Publish(ctx, Notification{EventCode: code, Data: data, TargetID: targetID})
}

// FireAbout addresses the notification to targetID on behalf of the user it
// refers to.
func (g *Gateway) FireAbout(ctx context.Context, code, targetID, refersToUserID string, data map[string]string) {
	g.Publish(ctx, Notification{EventCode: code, Data: data, TargetID: targetID, RefersToUserID: refersToUserID})
}

// Publish enqueues n. ctx only bounds the wait for a free queue slot; the
// delivery itself outlives the caller's request.
func (g *Gateway) Publish(ctx context.Context, n Notification) {
	data := make(map[string]string, len(n.Data))
	for k, v := range n.Data {
		data[k] = v
	}
	n.Data = data

	deliveryCtx := context.WithoutCancel(ctx)
	err := g.pool.AddTask(ctx, func() error {
		return g.deliver(deliveryCtx, n)
	})
	if err != nil {
		g.metrics.DispatchResults.WithLabelValues(n.EventCode, "dropped").Inc()
		zap.L().Warn("notification dropped", zap.String("event", n.EventCode), zap.Error(err))
		return
	}
	g.metrics.DispatchEnqueued.WithLabelValues(n.EventCode).Inc()
}

func (g *Gateway) deliver(ctx context.Context, n Notification) error {
	started := time.Now()
	err := g.post(ctx, n)
	g.metrics.DispatchLatency.Observe(time.Since(started).Seconds())
	if err != nil {
		g.metrics.DispatchResults.WithLabelValues(n.EventCode, "failed").Inc()
		g.metrics.Errors.WithLabelValues("dispatch").Inc()
		return fmt.Errorf("dispatch %s: %w", n.EventCode, err)
	}
	g.metrics.DispatchResults.WithLabelValues(n.EventCode, "sent").Inc()
	zap.L().Debug("notification sent", zap.String("event", n.EventCode), zap.String("target_id", n.TargetID))
	return nil
}

func (g *Gateway) post(ctx context.Context, n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	token, err := g.tokens.GenerateJWT(auth.ServiceSubject, time.Now().Add(serviceTokenTTL))
	if err != nil {
		return fmt.Errorf("sign service token: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Bearer "+token)

	status, respBody, _, err := g.client.Post(ctx, g.url, headers, body)
	if err != nil {
		return err
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status %d: %s", status, respBody)
	}

	var resp dispatchResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		zap.L().Warn("dispatcher returned a non-JSON body", zap.String("event", n.EventCode), zap.Int("status", status))
		return nil
	}
	if resp.Success != nil && !*resp.Success {
		return fmt.Errorf("dispatcher rejected notification: %s", resp.Error)
	}
	return nil
}

// Close waits for queued notifications to be delivered.
func (g *Gateway) Close() {
	g.pool.Close()
}
