package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/GlebRadaev/costeo/internal/config"
	"github.com/GlebRadaev/costeo/internal/metrics"
	"github.com/GlebRadaev/costeo/pkg/auth"
	"github.com/GlebRadaev/costeo/pkg/clients"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const dispatchURL = "http://dispatch.local/send"

func NewMock(t *testing.T) (*Gateway, *clients.MockHTTPClientI, *metrics.Metrics) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	m := metrics.Registry("costeo")
	cfg := &config.Config{DispatchURL: dispatchURL, DispatchWorkers: 2, DispatchQueue: 8}
	return New(cfg, client, auth.NewJWTService("secret"), m), client, m
}

func TestGateway_FireDeliversNotification(t *testing.T) {
	gw, client, m := NewMock(t)
	tokens := auth.NewJWTService("secret")
	sentBefore := testutil.ToFloat64(m.DispatchResults.WithLabelValues("suscripcion_vence_hoy", "sent"))

	var got Notification
	client.EXPECT().
		Post(gomock.Any(), dispatchURL, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, url string, headers http.Header, body []byte) (int, []byte, http.Header, error) {
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, "application/json", headers.Get("Content-Type"))
			claims, err := tokens.ValidateToken(headers.Get("Authorization")[len("Bearer "):])
			assert.NoError(t, err)
			assert.Equal(t, auth.ServiceSubject, claims.UserID)
			return http.StatusOK, []byte(`{"success":true}`), http.Header{}, nil
		})

	data := map[string]string{"nombre": "Ana"}
	gw.Fire(context.Background(), "suscripcion_vence_hoy", data)
	data["nombre"] = "changed after fire"
	gw.Close()

	assert.Equal(t, Notification{EventCode: "suscripcion_vence_hoy", Data: map[string]string{"nombre": "Ana"}}, got)
	assert.Equal(t, sentBefore+1, testutil.ToFloat64(m.DispatchResults.WithLabelValues("suscripcion_vence_hoy", "sent")))
}

func TestGateway_FireForTagsTarget(t *testing.T) {
	gw, client, _ := NewMock(t)

	var got Notification
	client.EXPECT().
		Post(gomock.Any(), dispatchURL, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, url string, headers http.Header, body []byte) (int, []byte, http.Header, error) {
			require.NoError(t, json.Unmarshal(body, &got))
			return http.StatusOK, []byte(`{}`), http.Header{}, nil
		})

	gw.FireFor(context.Background(), "referidos_hito", "user-7", map[string]string{"referidos": "20"})
	gw.Close()

	assert.Equal(t, "user-7", got.TargetID)
	assert.Equal(t, "20", got.Data["referidos"])
}

func TestGateway_FireAboutCarriesReferredUser(t *testing.T) {
	gw, client, _ := NewMock(t)

	var raw map[string]any
	client.EXPECT().
		Post(gomock.Any(), dispatchURL, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, url string, headers http.Header, body []byte) (int, []byte, http.Header, error) {
			require.NoError(t, json.Unmarshal(body, &raw))
			return http.StatusOK, []byte(`{"success":true}`), http.Header{}, nil
		})

	gw.FireAbout(context.Background(), "venta_registrada", "store-1", "owner-1", map[string]string{"total": "10.00"})
	gw.Close()

	assert.Equal(t, "venta_registrada", raw["codigo_evento"])
	assert.Equal(t, "store-1", raw["targetId"])
	assert.Equal(t, "owner-1", raw["refersToUserId"])
	assert.NotContains(t, raw, "tipo_envio")
}

func TestGateway_FailuresAreSwallowed(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		err    error
	}{
		{name: "Transport error", err: errors.New("connection refused")},
		{name: "Server error", status: http.StatusInternalServerError, body: `{"error":"boom"}`},
		{name: "Application error", status: http.StatusOK, body: `{"success":false,"error":"template missing"}`},
		{name: "Non JSON body", status: http.StatusOK, body: `ok`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, client, _ := NewMock(t)
			client.EXPECT().
				Post(gomock.Any(), dispatchURL, gomock.Any(), gomock.Any()).
				Return(tt.status, []byte(tt.body), http.Header{}, tt.err)

			assert.NotPanics(t, func() {
				gw.Fire(context.Background(), "comision_vencida", map[string]string{})
				gw.Close()
			})
		})
	}
}

func TestGateway_PostErrors(t *testing.T) {
	gw, client, _ := NewMock(t)
	defer gw.Close()

	client.EXPECT().
		Post(gomock.Any(), dispatchURL, gomock.Any(), gomock.Any()).
		Return(http.StatusBadGateway, []byte("bad gateway"), http.Header{}, nil)
	assert.ErrorContains(t, gw.post(context.Background(), Notification{EventCode: "x"}), "unexpected status 502")

	client.EXPECT().
		Post(gomock.Any(), dispatchURL, gomock.Any(), gomock.Any()).
		Return(http.StatusOK, []byte(`{"success":false,"error":"no template"}`), http.Header{}, nil)
	assert.ErrorContains(t, gw.post(context.Background(), Notification{EventCode: "x"}), "no template")

	client.EXPECT().
		Post(gomock.Any(), dispatchURL, gomock.Any(), gomock.Any()).
		Return(http.StatusOK, []byte(`{"success":true}`), http.Header{}, nil)
	assert.NoError(t, gw.post(context.Background(), Notification{EventCode: "x"}))
}

func TestGateway_DroppedWhenQueueRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	pool := NewMockWorkerPoolI(ctrl)
	m := metrics.Registry("costeo")
	gw := &Gateway{url: dispatchURL, pool: pool, metrics: m, tokens: auth.NewJWTService("secret")}
	droppedBefore := testutil.ToFloat64(m.DispatchResults.WithLabelValues("venta_registrada", "dropped"))

	pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(context.Canceled)

	gw.FireFor(context.Background(), "venta_registrada", "owner-1", nil)

	assert.Equal(t, droppedBefore+1, testutil.ToFloat64(m.DispatchResults.WithLabelValues("venta_registrada", "dropped")))
}
