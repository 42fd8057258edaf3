package notifier

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authormodel "mylibrary-backend/internal/domains/author/model"
	bookmodel "mylibrary-backend/internal/domains/book/model"
	"mylibrary-backend/internal/infrastructure/email"
)

type mockAuthorSource struct {
	mock.Mock
}

func (m *mockAuthorSource) GetByID(ctx context.Context, id uuid.UUID) (*authormodel.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authormodel.Author), args.Error(1)
}

type mockFollowerSource struct {
	mock.Mock
}

func (m *mockFollowerSource) ListFollowerEmails(ctx context.Context, authorID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, msg email.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
}

func TestBookPublishedSendsSingleBccMessage(t *testing.T) {
	authorID := uuid.New()
	authors := new(mockAuthorSource)
	followers := new(mockFollowerSource)
	sender := new(mockSender)

	authors.On("GetByID", mock.Anything, authorID).Return(&authormodel.Author{
		ID:        authorID,
		FirstName: "Leo",
		LastName:  "Tolstoy",
	}, nil)
	followers.On("ListFollowerEmails", mock.Anything, authorID).Return(
		[]string{"a@example.com", "b@example.com", "c@example.com"}, nil,
	)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg email.Message) bool {
		return msg.Subject == `Available book "War and Peace" (Leo Tolstoy)` &&
			len(msg.Bcc) == 3
	})).Return(nil)

	n := NewWithClock(authors, followers, sender, "MyLibrary API", fixedClock(2026))
	n.BookPublished(context.Background(), &bookmodel.Book{
		ID:              uuid.New(),
		Name:            "War and Peace",
		PublicationYear: 1869,
		AuthorID:        authorID,
	})

	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestBookPublishedSkipsFutureBooks(t *testing.T) {
	authors := new(mockAuthorSource)
	followers := new(mockFollowerSource)
	sender := new(mockSender)

	n := NewWithClock(authors, followers, sender, "MyLibrary API", fixedClock(2026))
	n.BookPublished(context.Background(), &bookmodel.Book{
		ID:              uuid.New(),
		Name:            "Not Yet",
		PublicationYear: 2027,
		AuthorID:        uuid.New(),
	})

	authors.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestBookPublishedCurrentYearIsSent(t *testing.T) {
	authorID := uuid.New()
	authors := new(mockAuthorSource)
	followers := new(mockFollowerSource)
	sender := new(mockSender)

	authors.On("GetByID", mock.Anything, authorID).Return(&authormodel.Author{
		ID:       authorID,
		LastName: "Austen",
	}, nil)
	followers.On("ListFollowerEmails", mock.Anything, authorID).Return([]string{"x@example.com"}, nil)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)

	n := NewWithClock(authors, followers, sender, "MyLibrary API", fixedClock(2026))
	n.BookPublished(context.Background(), &bookmodel.Book{
		ID:              uuid.New(),
		Name:            "Emma",
		PublicationYear: 2026,
		AuthorID:        authorID,
	})

	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestBookPublishedSwallowsSendFailure(t *testing.T) {
	authorID := uuid.New()
	authors := new(mockAuthorSource)
	followers := new(mockFollowerSource)
	sender := new(mockSender)

	authors.On("GetByID", mock.Anything, authorID).Return(&authormodel.Author{
		ID:       authorID,
		LastName: "Kafka",
	}, nil)
	followers.On("ListFollowerEmails", mock.Anything, authorID).Return([]string{"k@example.com"}, nil)
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("relay unreachable"))

	n := NewWithClock(authors, followers, sender, "MyLibrary API", fixedClock(2026))

	assert.NotPanics(t, func() {
		n.BookPublished(context.Background(), &bookmodel.Book{
			ID:              uuid.New(),
			Name:            "The Trial",
			PublicationYear: 1925,
			AuthorID:        authorID,
		})
	})
}

func TestBookPublishedNoFollowersSendsNothing(t *testing.T) {
	authorID := uuid.New()
	authors := new(mockAuthorSource)
	followers := new(mockFollowerSource)
	sender := new(mockSender)

	authors.On("GetByID", mock.Anything, authorID).Return(&authormodel.Author{
		ID:       authorID,
		LastName: "Obscure",
	}, nil)
	followers.On("ListFollowerEmails", mock.Anything, authorID).Return([]string{}, nil)

	n := NewWithClock(authors, followers, sender, "MyLibrary API", fixedClock(2026))
	n.BookPublished(context.Background(), &bookmodel.Book{
		ID:              uuid.New(),
		Name:            "Unknown",
		PublicationYear: 2000,
		AuthorID:        authorID,
	})

	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestBookPublishedBodyNamesAuthorAndService(t *testing.T) {
	authorID := uuid.New()
	authors := new(mockAuthorSource)
	followers := new(mockFollowerSource)
	sender := new(mockSender)

	authors.On("GetByID", mock.Anything, authorID).Return(&authormodel.Author{
		ID:        authorID,
		FirstName: "Jane",
		LastName:  "Austen",
	}, nil)
	followers.On("ListFollowerEmails", mock.Anything, authorID).Return([]string{"r@example.com"}, nil)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg email.Message) bool {
		return strings.Contains(msg.Body, "Jane Austen") &&
			strings.Contains(msg.Body, "Emma") &&
			strings.Contains(msg.Body, "MyLibrary API") &&
			strings.Contains(msg.Body, "2026")
	})).Return(nil)

	n := NewWithClock(authors, followers, sender, "MyLibrary API", fixedClock(2026))
	n.BookPublished(context.Background(), &bookmodel.Book{
		ID:              uuid.New(),
		Name:            "Emma",
		PublicationYear: 1815,
		AuthorID:        authorID,
	})

	sender.AssertExpectations(t)
}
