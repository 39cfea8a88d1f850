package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/models"
)

const ContactAck = "Thank you for your inquiry. We'll get back to you soon!"

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Service string `json:"service,omitempty"`
}

type ContactReceipt struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Reference string `json:"reference"`
}

type Publisher interface {
	PublishContact(ctx context.Context, ev models.ContactEvent) error
}

// ContactService acknowledges inquiries. Nothing is stored; when a Publisher
// is set the inquiry is also sent as an event without delaying the caller.
type ContactService struct {
	Publisher      Publisher
	PublishTimeout time.Duration
	Now            func() time.Time

	wg sync.WaitGroup
}

func (s *ContactService) Submit(ctx context.Context, req ContactRequest) ContactReceipt {
	l := logging.FromContext(ctx)

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	at := now().UTC()
	ref := fmt.Sprintf("REF-%d", at.UnixMilli())

	l.Info("contact_received", "reference", ref, "name", req.Name, "email", req.Email, "service", req.Service)

	if s.Publisher != nil {
		ev := models.ContactEvent{
			Type:      models.ContactReceived,
			Reference: ref,
			Name:      req.Name,
			Email:     req.Email,
			Service:   req.Service,
			At:        at,
		}
		s.publish(context.WithoutCancel(ctx), ev)
	}

	return ContactReceipt{Success: true, Message: ContactAck, Reference: ref}
}

func (s *ContactService) publish(ctx context.Context, ev models.ContactEvent) {
	timeout := s.PublishTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		pctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		if err := s.Publisher.PublishContact(pctx, ev); err != nil {
			logging.FromContext(ctx).Warn("contact_publish_failed", "reference", ev.Reference, "error", err)
		}
	}()
}

// Wait blocks until every in-flight publish has finished.
func (s *ContactService) Wait() {
	s.wg.Wait()
}
