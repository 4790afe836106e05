package qr

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sunthewhat/easy-event-api/common/util"
	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

// Publisher renders ticket QR codes and stores them in the object store.
type Publisher struct {
	storage   util.IFileStorage
	bucket    string
	serverURL string
}

func NewPublisher(storage util.IFileStorage, bucket string, serverURL string) *Publisher {
	return &Publisher{storage: storage, bucket: bucket, serverURL: serverURL}
}

// Publish uploads the QR for token and returns its public URL.
func (p *Publisher) Publish(ctx context.Context, eventID int64, token string) (string, error) {
	png, err := Encode(RegistrationURL(p.serverURL, token))
	if err != nil {
		return "", err
	}

	url, err := p.storage.Upload(ctx, p.bucket, ObjectName(eventID, token), png, "image/png")
	if err != nil {
		return "", fmt.Errorf("upload qr code for %s: %w", token, err)
	}
	return url, nil
}

// PublishAll publishes a QR for every ticket and hands each URL to save.
// A failing ticket is logged and counted; the rest still go through.
func (p *Publisher) PublishAll(ctx context.Context, tickets []*model.Ticket, save func(ticketID int64, url string) error) (succeeded int, failed int) {
	for _, ticket := range tickets {
		if ctx.Err() != nil {
			failed += len(tickets) - succeeded - failed
			break
		}

		url, err := p.Publish(ctx, ticket.EventID, ticket.Token)
		if err == nil {
			err = save(ticket.ID, url)
		}
		if err != nil {
			slog.Warn("QR publish failed", "error", err, "ticket_id", ticket.ID, "token", ticket.Token)
			failed++
			continue
		}

		ticket.QrCodeURL = url
		succeeded++
		if succeeded%100 == 0 {
			slog.Info("QR publish progress", "done", succeeded, "total", len(tickets))
		}
	}
	return succeeded, failed
}
