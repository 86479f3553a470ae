package commands

import (
	"context"

	"cinebook/internal/domain/payment"
	reqdto "cinebook/internal/handler/dto/request"
	"cinebook/internal/infra"
	"cinebook/internal/pkg/clock"
	"cinebook/internal/pkg/errs"
	"cinebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentCommands interface {
	Settle(ctx context.Context, req reqdto.ProcessPaymentRequest) (*queries.PaymentView, error)
}

type paymentCommandsImpl struct {
	bookings       BookingLedger
	payments       PaymentLedger
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewPaymentCommands(
	bookings BookingLedger,
	payments PaymentLedger,
	bookingQueries queries.BookingQueries,
	clock clock.Clock,
) PaymentCommands {
	return &paymentCommandsImpl{
		bookings:       bookings,
		payments:       payments,
		bookingQueries: bookingQueries,
		clock:          clock,
	}
}

// Settle charges a pending booking and flips it to confirmed. The
// status and amount checks and the confirm run under the booking's
// showtime lock so a concurrent settle for the same booking cannot
// double-charge: the loser re-reads a confirmed booking and is
// rejected.
func (p *paymentCommandsImpl) Settle(ctx context.Context, req reqdto.ProcessPaymentRequest) (*queries.PaymentView, error) {
	b, err := p.bookings.FindByID(req.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	unlock := p.bookings.LockShowtime(b.ShowtimeID())
	defer unlock()

	// Re-read under the lock; the first read only located the showtime.
	b, err = p.bookings.FindByID(req.BookingID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to reload booking")
	}

	if !b.IsPending() {
		return nil, errs.Mark(
			errs.Newf("Booking status is %s, expected pending", b.Status()),
			errs.ErrBookingNotPending,
		)
	}

	amount := req.GetAmount()
	if !payment.AmountMatches(amount, b.TotalPrice()) {
		return nil, errs.Mark(
			errs.New(payment.MismatchMessage(b.TotalPrice(), amount)),
			errs.ErrAmountMismatch,
		)
	}

	pay, err := payment.NewPayment(uuid.Nil, b.ID(), amount, b.TotalPrice(), req.PaymentMethod, p.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := p.payments.Create(pay); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrBookingPaid)
		}
		return nil, errs.Wrap(err, "failed to record payment")
	}

	if err := p.bookings.Confirm(b.ID()); err != nil {
		return nil, errs.Wrap(err, "failed to confirm booking")
	}

	view, err := p.bookingQueries.GetByID(ctx, b.ID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to load confirmed booking")
	}

	return toPaymentView(pay, view), nil
}

func toPaymentView(pay *payment.Payment, b *queries.BookingView) *queries.PaymentView {
	return &queries.PaymentView{
		PaymentID:     pay.ID(),
		PaymentStatus: pay.Status().String(),
		BookingID:     pay.BookingID(),
		ReceiptURL:    pay.ReceiptURL(),
		Confirmation: queries.BookingConfirmation{
			Movie:     b.Movie,
			Theater:   b.Theater,
			Date:      b.Date,
			Time:      b.Time,
			Seats:     b.Seats,
			TotalPaid: pay.Amount(),
		},
	}
}
