package orderrepo

import (
	"context"

	"github.com/GlebRadaev/costeo/internal/domain"
	"github.com/GlebRadaev/costeo/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Upsert writes the order keyed on (tienda_id, pedido_externo_id). A redelivered
// event overwrites every mutable column. inserted reports whether the row is new.
func (r *Repository) Upsert(ctx context.Context, order *domain.Order) (inserted bool, err error) {
	query := `
        INSERT INTO pedidos (tienda_id, costeo_id, pedido_externo_id, numero_pedido, fecha_pedido, estado_pago, estado_envio,
            cliente_nombre, cliente_telefono, cliente_ciudad, cliente_region, total, cantidad_items, origen, actualizado_en)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now())
        ON CONFLICT (tienda_id, pedido_externo_id) DO UPDATE SET
            costeo_id = EXCLUDED.costeo_id,
            numero_pedido = EXCLUDED.numero_pedido,
            fecha_pedido = EXCLUDED.fecha_pedido,
            estado_pago = EXCLUDED.estado_pago,
            estado_envio = EXCLUDED.estado_envio,
            cliente_nombre = EXCLUDED.cliente_nombre,
            cliente_telefono = EXCLUDED.cliente_telefono,
            cliente_ciudad = EXCLUDED.cliente_ciudad,
            cliente_region = EXCLUDED.cliente_region,
            total = EXCLUDED.total,
            cantidad_items = EXCLUDED.cantidad_items,
            origen = EXCLUDED.origen,
            actualizado_en = now()
        RETURNING id, (xmax = 0)
    `
	err = r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			order.StoreID, order.CosteoID, order.ExternalOrderID, order.OrderNumber, order.OrderedAt,
			order.PaymentStatus, order.ShippingStatus,
			order.BuyerName, order.BuyerPhone, order.BuyerCity, order.BuyerRegion,
			order.Total, order.ItemCount, order.Origin,
		)
		if err := row.Scan(&order.ID, &inserted); err != nil {
			zap.L().Error("can't upsert order", zap.Error(err), zap.String("external_id", order.ExternalOrderID))
			return err
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}
