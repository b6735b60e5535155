package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"
	"travel/internal/notification"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/mailer"
	mockmailer "travel/pkg/mailer/mock"
	"travel/pkg/serrors"
	mockstorage "travel/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type fixture struct {
	st       *mockstorage.MockAllStorage
	mail     *mockmailer.MockMailer
	notifier notification.Notifier

	guest   domain.User
	host    domain.User
	listing domain.Listing
	booking domain.Booking
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		st:   mockstorage.NewMockAllStorage(ctrl),
		mail: mockmailer.NewMockMailer(ctrl),
	}
	f.notifier = notification.New(f.st, f.mail, notification.Options{
		MaxAttempts:          4,
		ReminderUniquePeriod: notification.ReminderUniquePeriod,
	})

	f.guest = domain.User{ID: 1, Username: "guest", Email: "guest@example.com"}
	f.host = domain.User{ID: 2, Username: "host", Email: "host@example.com"}
	f.listing = domain.Listing{ID: domain.ListingID(uuid.New()), HostID: f.host.ID, Name: "Loft"}
	f.booking = domain.Booking{
		ID:         domain.BookingID(uuid.New()),
		ListingID:  f.listing.ID,
		UserID:     f.guest.ID,
		CheckIn:    time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC),
		Guests:     1,
		TotalPrice: decimal.NewFromInt(200),
	}

	return f
}

func (f *fixture) expectGraph() {
	f.st.EXPECT().BookingByID(gomock.Any(), f.booking.ID).Return(&f.booking, nil)
	f.st.EXPECT().ListingByID(gomock.Any(), f.listing.ID).Return(&f.listing, nil)
	f.st.EXPECT().UsersByIDs(gomock.Any(), f.guest.ID, f.host.ID).Return([]domain.User{f.host, f.guest}, nil)
}

func TestNotifier_Send_ToGuest(t *testing.T) {
	f := newFixture(t)
	f.expectGraph()
	f.mail.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg mailer.Message) error {
		require.Equal(t, []string{"guest@example.com"}, msg.To)
		require.Equal(t, "Booking Confirmation - Loft", msg.Subject)
		require.NotEmpty(t, msg.Text)
		require.NotEmpty(t, msg.HTML)

		return nil
	})

	err := f.notifier.Send(context.Background(), notification.TemplateBookingConfirmation, uuid.UUID(f.booking.ID))
	require.NoError(t, err)
}

func TestNotifier_Send_HostNotificationToHost(t *testing.T) {
	f := newFixture(t)
	f.expectGraph()
	f.mail.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg mailer.Message) error {
		require.Equal(t, []string{"host@example.com"}, msg.To)

		return nil
	})

	err := f.notifier.Send(context.Background(), notification.TemplateHostNotification, uuid.UUID(f.booking.ID))
	require.NoError(t, err)
}

func TestNotifier_Send_PaymentConfirmation(t *testing.T) {
	f := newFixture(t)
	payment := domain.Payment{
		ID:        domain.PaymentID(uuid.New()),
		BookingID: f.booking.ID,
		Amount:    decimal.NewFromInt(200),
		Currency:  "ETB",
		Status:    domain.PaymentStatusCompleted,
	}
	f.st.EXPECT().PaymentByID(gomock.Any(), payment.ID).Return(&payment, nil)
	f.expectGraph()
	f.mail.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg mailer.Message) error {
		require.Equal(t, "Payment Confirmation - Loft", msg.Subject)
		require.Contains(t, msg.Text, "Amount Paid: 200.00 ETB")

		return nil
	})

	err := f.notifier.Send(context.Background(), notification.TemplatePaymentConfirmation, uuid.UUID(payment.ID))
	require.NoError(t, err)
}

func TestNotifier_Send_NotFound(t *testing.T) {
	f := newFixture(t)
	f.st.EXPECT().BookingByID(gomock.Any(), gomock.Any()).Return(nil, nil)

	err := f.notifier.Send(context.Background(), notification.TemplateBookingReminder, uuid.New())
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestNotifier_Send_PaymentNotFound(t *testing.T) {
	f := newFixture(t)
	f.st.EXPECT().PaymentByID(gomock.Any(), gomock.Any()).Return(nil, nil)

	err := f.notifier.Send(context.Background(), notification.TemplatePaymentConfirmation, uuid.New())
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestNotifier_Send_MailerError(t *testing.T) {
	f := newFixture(t)
	f.expectGraph()
	boom := errors.New("smtp down")
	f.mail.EXPECT().Send(gomock.Any(), gomock.Any()).Return(boom)

	err := f.notifier.Send(context.Background(), notification.TemplateBookingCancellation, uuid.UUID(f.booking.ID))
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, serrors.ErrNotFound)
}

func TestNotifier_Send_NoRecipientAddress(t *testing.T) {
	f := newFixture(t)
	f.guest.Email = ""
	f.expectGraph()

	err := f.notifier.Send(context.Background(), notification.TemplateBookingConfirmation, uuid.UUID(f.booking.ID))
	require.NoError(t, err)
}

func TestNotifier_Enqueue(t *testing.T) {
	tests := []struct {
		name       string
		template   notification.Template
		wantUnique bool
	}{
		{name: "confirmation", template: notification.TemplateBookingConfirmation},
		{name: "reminder", template: notification.TemplateBookingReminder, wantUnique: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			id := uuid.New()

			f.st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
				func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
					job, ok := args.(notification.EmailJobArgs)
					require.True(t, ok)
					require.Equal(t, tt.template, job.Template)
					require.Equal(t, id, job.ID)

					opts := job.InsertOpts()
					require.Equal(t, 4, opts.MaxAttempts)
					if tt.wantUnique {
						require.True(t, opts.UniqueOpts.ByArgs)
						require.Equal(t, 24*time.Hour, opts.UniqueOpts.ByPeriod)
					} else {
						require.False(t, opts.UniqueOpts.ByArgs)
						require.Zero(t, opts.UniqueOpts.ByPeriod)
					}

					return true, nil
				})

			require.NoError(t, f.notifier.Enqueue(context.Background(), f.st, tt.template, id))
		})
	}
}

func TestNotifier_Enqueue_UnknownTemplate(t *testing.T) {
	f := newFixture(t)
	err := f.notifier.Enqueue(context.Background(), f.st, "welcome", uuid.New())
	require.Error(t, err)
}
