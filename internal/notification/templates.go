package notification

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"text/template"
	"time"
	"travel/pkg/domain"
)

// Template names one of the transactional e-mails.
type Template string

const (
	TemplateBookingConfirmation Template = "booking_confirmation"
	TemplateBookingCancellation Template = "booking_cancellation"
	TemplatePaymentConfirmation Template = "payment_confirmation"
	TemplateHostNotification    Template = "host_notification"
	TemplateBookingReminder     Template = "booking_reminder"
)

// Templates lists every e-mail template.
var Templates = []Template{ //nolint: gochecknoglobals
	TemplateBookingConfirmation,
	TemplateBookingCancellation,
	TemplatePaymentConfirmation,
	TemplateHostNotification,
	TemplateBookingReminder,
}

// Valid reports whether t is a known template.
func (t Template) Valid() bool {
	for _, tpl := range Templates {
		if tpl == t {
			return true
		}
	}

	return false
}

const (
	dateLayout        = "January 02, 2006"
	paymentDateLayout = "January 02, 2006 at 03:04 PM"
)

//go:embed templates
var templatesFS embed.FS

//nolint: gochecknoglobals
var (
	textTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.txt"))
	htmlTemplates = func() map[Template]*htmltemplate.Template {
		out := make(map[Template]*htmltemplate.Template, len(Templates))
		for _, tpl := range Templates {
			out[tpl] = htmltemplate.Must(htmltemplate.ParseFS(templatesFS,
				"templates/layout.html",
				"templates/"+string(tpl)+".html"))
		}

		return out
	}()
)

// emailData is the view rendered by the templates.
type emailData struct {
	CustomerName string
	HostName     string
	GuestName    string

	BookingID   string
	ListingName string
	Location    string
	CheckIn     string
	CheckOut    string
	Guests      int
	Nights      int
	TotalPrice  string

	PaymentID     string
	Amount        string
	Currency      string
	PaymentMethod string
	PaymentDate   string

	CurrentYear int
}

// graph is the entity graph an e-mail is rendered from. Payment is only set
// for payment confirmations.
type graph struct {
	Booking domain.Booking
	Listing domain.Listing
	Guest   domain.User
	Host    domain.User
	Payment *domain.Payment
}

func newEmailData(g graph, now time.Time) emailData {
	data := emailData{
		CustomerName: g.Guest.DisplayName(),
		HostName:     g.Host.DisplayName(),
		GuestName:    g.Guest.DisplayName(),
		BookingID:    g.Booking.ID.String(),
		ListingName:  g.Listing.Name,
		Location:     g.Listing.Location,
		CheckIn:      g.Booking.CheckIn.Format(dateLayout),
		CheckOut:     g.Booking.CheckOut.Format(dateLayout),
		Guests:       g.Booking.Guests,
		Nights:       g.Booking.Nights(),
		TotalPrice:   g.Booking.TotalPrice.StringFixed(2), //nolint: mnd
		CurrentYear:  now.Year(),
	}

	if p := g.Payment; p != nil {
		data.PaymentID = p.ID.String()
		data.Amount = p.Amount.StringFixed(2) //nolint: mnd
		data.Currency = p.Currency
		data.PaymentMethod = "N/A"
		if p.Method != "" {
			data.PaymentMethod = p.Method.Display()
		}
		data.PaymentDate = "N/A"
		if !p.PaymentDate.IsZero() {
			data.PaymentDate = p.PaymentDate.Format(paymentDateLayout)
		}
	}

	return data
}

func subject(tpl Template, listingName string) string {
	switch tpl {
	case TemplateBookingConfirmation:
		return "Booking Confirmation - " + listingName
	case TemplateBookingCancellation:
		return "Booking Cancellation - " + listingName
	case TemplatePaymentConfirmation:
		return "Payment Confirmation - " + listingName
	case TemplateHostNotification:
		return "New Booking Received - " + listingName
	case TemplateBookingReminder:
		return "Check-in Reminder - " + listingName
	default:
		return listingName
	}
}

// rendered is a composed e-mail without recipients.
type rendered struct {
	Subject string
	Text    string
	HTML    string
}

// compose renders the subject and bodies of tpl. A failing HTML body is
// reported through htmlErr and left empty, the text body is still returned.
func compose(tpl Template, g graph, now time.Time) (res rendered, htmlErr error, err error) {
	if !tpl.Valid() {
		return rendered{}, nil, fmt.Errorf("unknown template %q", tpl)
	}

	data := newEmailData(g, now)
	res.Subject = subject(tpl, g.Listing.Name)

	var text bytes.Buffer
	if err := textTemplates.ExecuteTemplate(&text, string(tpl)+".txt", data); err != nil {
		return rendered{}, nil, fmt.Errorf("could not render text body: %w", err)
	}
	res.Text = text.String()

	var html bytes.Buffer
	if err := htmlTemplates[tpl].ExecuteTemplate(&html, "layout", data); err != nil {
		return res, fmt.Errorf("could not render html body: %w", err), nil
	}
	res.HTML = html.String()

	return res, nil, nil
}
