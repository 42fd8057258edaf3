// Package notifier emails an author's followers when one of the
// author's books becomes available.
package notifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	authormodel "mylibrary-backend/internal/domains/author/model"
	bookmodel "mylibrary-backend/internal/domains/book/model"
	"mylibrary-backend/internal/infrastructure/email"
	"mylibrary-backend/pkg/logger"
)

// AuthorSource resolves the author a book belongs to.
type AuthorSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*authormodel.Author, error)
}

// FollowerSource lists the email addresses subscribed to an author.
type FollowerSource interface {
	ListFollowerEmails(ctx context.Context, authorID uuid.UUID) ([]string, error)
}

type Notifier struct {
	authors     AuthorSource
	followers   FollowerSource
	sender      email.Sender
	serviceName string
	now         func() time.Time
}

func New(authors AuthorSource, followers FollowerSource, sender email.Sender, serviceName string) *Notifier {
	return &Notifier{
		authors:     authors,
		followers:   followers,
		sender:      sender,
		serviceName: serviceName,
		now:         time.Now,
	}
}

// NewWithClock exists for tests that need a fixed year.
func NewWithClock(authors AuthorSource, followers FollowerSource, sender email.Sender, serviceName string, now func() time.Time) *Notifier {
	n := New(authors, followers, sender, serviceName)
	n.now = now
	return n
}

// BookPublished sends a single message with every follower in bcc, so
// recipients never see each other's addresses. Books dated after the
// current year are skipped; they will not be visible to readers yet.
// Delivery failures are logged and swallowed: notification is best
// effort and must never fail the create that triggered it.
func (n *Notifier) BookPublished(ctx context.Context, b *bookmodel.Book) {
	if b.PublicationYear > n.now().Year() {
		return
	}

	author, err := n.authors.GetByID(ctx, b.AuthorID)
	if err != nil {
		logger.Warn("notifier: failed to load author", err)
		return
	}

	emails, err := n.followers.ListFollowerEmails(ctx, b.AuthorID)
	if err != nil {
		logger.Warn("notifier: failed to load follower emails", err)
		return
	}
	if len(emails) == 0 {
		return
	}

	msg := email.Message{
		Subject: fmt.Sprintf("Available book %q (%s)", b.Name, author.DisplayName()),
		Body:    n.buildBody(b, author),
		Bcc:     emails,
	}

	if err := n.sender.Send(ctx, msg); err != nil {
		logger.Warn("notifier: failed to send book notification", err)
		return
	}

	logger.Info("notifier: book notification sent", map[string]interface{}{
		"book_id":    b.ID.String(),
		"recipients": len(emails),
	})
}

func (n *Notifier) buildBody(b *bookmodel.Book, author *authormodel.Author) string {
	var sb strings.Builder

	sb.WriteString("Hello!\n\n")
	fmt.Fprintf(&sb, "The book %q by %s (%d) is now available in the library.\n\n",
		b.Name, author.DisplayName(), b.PublicationYear)
	fmt.Fprintf(&sb, "Best regards,\n%s, %d", n.serviceName, n.now().Year())

	return sb.String()
}
