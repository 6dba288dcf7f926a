package notify

import (
	"context"
	"log"
	"net/url"
	"strings"
)

type Message struct {
	To   string `json:"to"`
	Body string `json:"body"`
	Link string `json:"link,omitempty"`
}

// Sender hands a composed message to the messaging collaborator. Delivery is
// outside this service; the default implementation only produces the deep
// link the admin opens manually.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// WhatsAppLink builds the wa.me deep link for a phone in full international
// format ("+491761234567").
func WhatsAppLink(phone, body string) string {
	number := strings.TrimPrefix(phone, "+")
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(body)
}

// LogSender records the hand-off; useful until a real gateway is wired in.
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg Message) error {
	log.Printf("notification for %s: %s", msg.To, msg.Body)
	return nil
}
