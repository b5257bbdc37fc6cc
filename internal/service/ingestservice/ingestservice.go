package ingestservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/costeo/internal/domain"
	"github.com/GlebRadaev/costeo/internal/metrics"
	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ingestservice.go -destination=mock_ingestservice.go -package=ingestservice

const (
	EventSaleRecorded = "venta_registrada"

	defaultPaymentStatus  = "pending"
	defaultShippingStatus = "unfulfilled"
	defaultOrigin         = "shopify"
)

type StoreRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Store, error)
}

type CosteoRepo interface {
	FindByExternalProduct(ctx context.Context, storeID, productID string) (*domain.Costeo, error)
}

type OrderRepo interface {
	Upsert(ctx context.Context, order *domain.Order) (bool, error)
}

type Notifier interface {
	FireAbout(ctx context.Context, code, targetID, refersToUserID string, data map[string]string)
}

var (
	ErrStoreIDRequired  = errors.New("store_id is required")
	ErrStoreIDMalformed = errors.New("store_id must be a UUID")
	ErrStoreNotFound    = errors.New("store not found")
	ErrInvalidPayload   = errors.New("invalid order payload")
)

type Service struct {
	stores   StoreRepo
	costeos  CosteoRepo
	orders   OrderRepo
	notifier Notifier
	metrics  *metrics.Metrics
	schema   *jsonschema.Schema
	now      func() time.Time
}

func New(stores StoreRepo, costeos CosteoRepo, orders OrderRepo, notifier Notifier, m *metrics.Metrics) *Service {
	return &Service{
		stores:   stores,
		costeos:  costeos,
		orders:   orders,
		notifier: notifier,
		metrics:  m,
		schema:   mustCompileSchema(),
		now:      time.Now,
	}
}

func mustCompileSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(orderSchema))
	if err != nil {
		panic(err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("order.json", doc); err != nil {
		panic(err)
	}
	schema, err := c.Compile("order.json")
	if err != nil {
		panic(err)
	}
	return schema
}

// Ingest normalizes an order event and upserts it for storeID. Redelivery of
// the same external order overwrites the stored row.
func (s *Service) Ingest(ctx context.Context, storeID string, payload []byte) (*domain.Order, error) {
	if storeID == "" {
		s.count("rejected")
		return nil, ErrStoreIDRequired
	}
	if _, err := uuid.Parse(storeID); err != nil {
		s.count("rejected")
		return nil, ErrStoreIDMalformed
	}

	store, err := s.stores.FindByID(ctx, storeID)
	if err != nil {
		s.count("failed")
		return nil, fmt.Errorf("find store: %w", err)
	}
	if store == nil {
		s.count("rejected")
		zap.L().Warn("order event for unknown store", zap.String("store_id", storeID))
		return nil, ErrStoreNotFound
	}
	if !store.HasCredentials {
		zap.L().Warn("order event for store without platform credentials", zap.String("store_id", storeID))
	}

	p, err := s.decode(payload)
	if err != nil {
		s.count("rejected")
		return nil, err
	}

	order := s.normalize(storeID, p)

	// a failed lookup must not upsert a NULL over an existing attribution
	if productID := p.firstProductID(); productID != "" {
		costeo, err := s.costeos.FindByExternalProduct(ctx, storeID, productID)
		if err != nil {
			s.count("failed")
			s.metrics.Errors.WithLabelValues("ingest").Inc()
			return nil, fmt.Errorf("find costeo: %w", err)
		}
		if costeo != nil {
			order.CosteoID = &costeo.ID
		}
	}

	inserted, err := s.orders.Upsert(ctx, order)
	if err != nil {
		s.count("failed")
		s.metrics.Errors.WithLabelValues("ingest").Inc()
		return nil, fmt.Errorf("upsert order: %w", err)
	}
	if inserted {
		s.count("inserted")
	} else {
		s.count("updated")
	}
	zap.L().Info("order ingested",
		zap.String("store_id", storeID),
		zap.String("order", order.ExternalOrderID),
		zap.Bool("inserted", inserted),
	)

	s.notifier.FireAbout(ctx, EventSaleRecorded, store.ID, store.UserID, saleData(store, order))
	return order, nil
}

func (s *Service) decode(payload []byte) (*orderPayload, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := s.schema.Validate(inst); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	var p orderPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if p.ID == "" {
		return nil, fmt.Errorf("%w: id is empty", ErrInvalidPayload)
	}
	return &p, nil
}

func (s *Service) normalize(storeID string, p *orderPayload) *domain.Order {
	orderedAt, err := time.Parse(time.RFC3339, p.CreatedAt.String())
	if err != nil {
		orderedAt = s.now()
	}
	b := p.buyer()

	return &domain.Order{
		StoreID:         storeID,
		ExternalOrderID: p.ID.String(),
		OrderNumber:     p.orderNumber(),
		OrderedAt:       orderedAt,
		PaymentStatus:   firstNonEmpty(p.FinancialStatus.String(), defaultPaymentStatus),
		ShippingStatus:  firstNonEmpty(p.FulfillmentStatus.String(), defaultShippingStatus),
		BuyerName:       optional(b.Name),
		BuyerPhone:      optional(b.Phone),
		BuyerCity:       optional(b.City),
		BuyerRegion:     optional(b.Region),
		Total:           p.TotalPrice.Float(),
		ItemCount:       p.quantity(),
		Origin:          firstNonEmpty(p.SourceName.String(), defaultOrigin),
	}
}

func saleData(store *domain.Store, order *domain.Order) map[string]string {
	data := map[string]string{
		"tienda":       store.Name,
		"numero_orden": order.OrderNumber,
		"total":        fmt.Sprintf("%.2f", order.Total),
		"cantidad":     fmt.Sprintf("%d", order.ItemCount),
		"fecha":        order.OrderedAt.Format("2006-01-02"),
	}
	if order.BuyerName != nil {
		data["cliente"] = *order.BuyerName
	}
	return data
}

func (s *Service) count(result string) {
	s.metrics.WebhookOrders.WithLabelValues(result).Inc()
}
