package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	mail "gopkg.in/mail.v2"
)

// OrderLine is one purchased item as rendered in the notification body.
type OrderLine struct {
	Title    string
	Price    float64
	Quantity int
}

// OrderNotification carries everything the operator mailbox needs to
// process an order. All fields are already validated and persisted by the
// time a notification is built.
type OrderNotification struct {
	OrderID      string
	Total        float64
	Items        []OrderLine
	CustomerName string
	Phone        string
	Street       string
	City         string
	Zip          string
}

// Mailer delivers plain-text order summaries to a fixed operator mailbox
// over authenticated SMTP submission with mandatory STARTTLS.
type Mailer struct {
	host     string
	port     int
	sender   string
	password string
	receiver string
	logger   *logrus.Logger
}

func New(host string, port int, sender, password, receiver string, logger *logrus.Logger) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		sender:   sender,
		password: password,
		receiver: receiver,
		logger:   logger,
	}
}

// SendOrderNotification is best-effort: every failure is logged and
// discarded. Callers never observe the outcome; the order stands either way.
func (m *Mailer) SendOrderNotification(ctx context.Context, n OrderNotification) {
	if m.password == "" {
		m.logger.WithField("order_id", n.OrderID).
			Info("notification skipped: sender credential not configured")
		return
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", m.receiver)
	msg.SetHeader("Subject", fmt.Sprintf("NEW ORDER CONFIRMED - #%s", n.OrderID))
	msg.SetBody("text/plain", buildBody(n, time.Now()))

	d := mail.NewDialer(m.host, m.port, m.sender, m.password)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.Timeout = 20 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < d.Timeout {
			d.Timeout = remaining
		}
	}

	if err := d.DialAndSend(msg); err != nil {
		m.logger.WithError(err).WithField("order_id", n.OrderID).
			Error("failed to send order notification")
		return
	}
	m.logger.WithField("order_id", n.OrderID).Info("order notification sent")
}

func buildBody(n OrderNotification, now time.Time) string {
	var items strings.Builder
	for _, it := range n.Items {
		fmt.Fprintf(&items, "- %s (x%d) - ₹%.2f\n", it.Title, it.Quantity, it.Price*float64(it.Quantity))
	}

	return fmt.Sprintf(`New Order Received!

Order ID: %s
Total Amount: ₹%.2f
Date: %s

--- Customer Information ---
Name: %s
Phone: %s
Address: %s, %s - %s

--- Order Items ---
%s
Please process this order for delivery.
`, n.OrderID, n.Total, now.Format("2006-01-02 15:04:05"),
		n.CustomerName, n.Phone, n.Street, n.City, n.Zip, items.String())
}
