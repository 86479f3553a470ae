package components

import (
	"cinebook/internal/infra/catalog"
	"cinebook/internal/infra/memstore"
	"cinebook/internal/usecase/commands"
	"cinebook/internal/usecase/queries"

	"go.uber.org/fx"
)

// LedgerModule wires the process-wide booking/payment ledgers and the
// catalog read surfaces. Each store is provided once and narrowed to
// the interfaces the read and write sides consume.
var LedgerModule = fx.Module("ledger",
	fx.Provide(
		fx.Annotate(
			memstore.NewBookingStore,
			fx.As(new(commands.BookingLedger)),
			fx.As(new(queries.BookingReader)),
			fx.As(new(queries.ConfirmedSeatsReader)),
		),
		fx.Annotate(
			memstore.NewPaymentStore,
			fx.As(new(commands.PaymentLedger)),
		),
		fx.Annotate(
			func(s *catalog.Store) *catalog.Store { return s },
			fx.As(new(queries.CatalogReadStore)),
			fx.As(new(commands.CatalogReadStore)),
		),
	),
)
