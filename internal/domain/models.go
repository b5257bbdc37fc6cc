package domain

import "time"

type Store struct {
	ID             string `db:"id"`
	UserID         string `db:"user_id"`
	Name           string `db:"nombre"`
	WebhookShortID string `db:"webhook_short_id"`
	HasCredentials bool   `db:"-"`
}

type Costeo struct {
	ID                string `db:"id"`
	StoreID           string `db:"tienda_id"`
	ExternalProductID string `db:"producto_externo_id"`
	Name              string `db:"nombre"`
}

type Order struct {
	ID              string    `db:"id"`
	StoreID         string    `db:"tienda_id"`
	CosteoID        *string   `db:"costeo_id"`
	ExternalOrderID string    `db:"pedido_externo_id"`
	OrderNumber     string    `db:"numero_pedido"`
	OrderedAt       time.Time `db:"fecha_pedido"`
	PaymentStatus   string    `db:"estado_pago"`
	ShippingStatus  string    `db:"estado_envio"`
	BuyerName       *string   `db:"cliente_nombre"`
	BuyerPhone      *string   `db:"cliente_telefono"`
	BuyerCity       *string   `db:"cliente_ciudad"`
	BuyerRegion     *string   `db:"cliente_region"`
	Total           float64   `db:"total"`
	ItemCount       int       `db:"cantidad_items"`
	Origin          string    `db:"origen"`
}

type User struct {
	ID            string `db:"id"`
	Name          string `db:"nombre"`
	Email         string `db:"email"`
	Plan          string `db:"plan"`
	ReferralCount int    `db:"referidos_count"`
}

// ExpiringSubscription is a subscription joined with its owner.
type ExpiringSubscription struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Plan      string    `db:"plan"`
	ExpiresAt time.Time `db:"fecha_expiracion"`
	UserName  string    `db:"nombre"`
	UserEmail string    `db:"email"`
}

const (
	CommissionPending = "pendiente"
	CommissionPaid    = "pagada"
	CommissionExpired = "expirada"
)

type Commission struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Amount    float64   `db:"monto"`
	ExpiresAt time.Time `db:"fecha_expiracion"`
	Status    string    `db:"estado"`
	UserName  string    `db:"nombre"`
	UserEmail string    `db:"email"`
}

type Credit struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Amount    float64   `db:"monto"`
	Type      string    `db:"tipo"`
	CreatedAt time.Time `db:"creado_en"`
}

const (
	WithdrawalPending  = "pendiente"
	WithdrawalApproved = "aprobado"
	WithdrawalRejected = "rechazado"
	WithdrawalPaid     = "pagado"
)

type Withdrawal struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Amount    float64   `db:"monto"`
	Status    string    `db:"estado"`
	CreatedAt time.Time `db:"creado_en"`
}

type Balance struct {
	Available float64
	Pending   float64
	Withdrawn float64
	Total     float64
}
