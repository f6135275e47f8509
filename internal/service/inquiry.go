package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/adroitdesign/studio-api/internal/cache"
	"github.com/adroitdesign/studio-api/internal/crm"
	"github.com/adroitdesign/studio-api/internal/mail"
	"github.com/adroitdesign/studio-api/internal/model"
	"github.com/adroitdesign/studio-api/internal/repository"
)

// Where a submission ended up. Callers must treat this as informational
// only and not assume which backend holds the record.
const (
	StoredInCRM   = "Odoo CRM"
	StoredInLocal = "Local Database"
)

const defaultInquiryType = "general"

// SubmitResult is returned to the public submitter.
type SubmitResult struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	StoredIn string `json:"storedIn"`
}

// InquiryService handles public intake and the read side of the admin
// back office.
type InquiryService interface {
	Submit(ctx context.Context, i model.Inquiry) (SubmitResult, error)
	FindAll(ctx context.Context, filter model.InquiryFilter) ([]model.Inquiry, error)
	FindByID(ctx context.Context, id int) (*model.Inquiry, error)
	Drain()
}

type inquiryService struct {
	crm          crm.API
	inquiryRepo  repository.InquiryRepository
	inquiryCache cache.InquiryCache
	mailer       mail.Sender

	notifications sync.WaitGroup
}

func NewInquiryService(
	crmAPI crm.API,
	inquiryRepo repository.InquiryRepository,
	inquiryCache cache.InquiryCache,
	mailer mail.Sender,
) InquiryService {
	return &inquiryService{
		crm:          crmAPI,
		inquiryRepo:  inquiryRepo,
		inquiryCache: inquiryCache,
		mailer:       mailer,
	}
}

// Submit records the inquiry exactly once: directly in the CRM when it is
// reachable, otherwise as a local fallback row. Only a failure of the
// fallback insert surfaces to the submitter; CRM and email trouble never
// fail the request.
func (s *inquiryService) Submit(ctx context.Context, i model.Inquiry) (SubmitResult, error) {
	if i.Type == "" {
		i.Type = defaultInquiryType
	}
	i.Status = model.InquiryStatusNew

	storedIn := StoredInCRM
	id, err := s.crm.Create(ctx, crm.ModelLead, crm.LeadValues(i))
	if err != nil {
		// Expected degraded path, not an error condition.
		logrus.Warnf("crm unavailable, saving inquiry to local database: %v", err)
		storedIn = StoredInLocal

		if err := s.inquiryRepo.Create(ctx, &i); err != nil {
			logrus.Errorf("failed to save inquiry locally: %v", err)
			return SubmitResult{}, fmt.Errorf("could not save inquiry: %w", err)
		}
		id = i.ID
	} else {
		logrus.Infof("lead created directly in crm, id=%d", id)
	}

	s.dispatchNotifications(i)

	return SubmitResult{ID: id, Name: i.Name, Email: i.Email, StoredIn: storedIn}, nil
}

// dispatchNotifications fires the internal notification and the auto-reply
// concurrently. Their outcomes are observed only for logging. Submit has
// already decided its result by the time these run.
func (s *inquiryService) dispatchNotifications(i model.Inquiry) {
	s.notifications.Add(2)

	go func() {
		defer s.notifications.Done()
		if err := s.mailer.SendInquiryNotification(i); err != nil {
			logrus.Warnf("inquiry notification email failed: %v", err)
		}
	}()

	go func() {
		defer s.notifications.Done()
		if err := s.mailer.SendAutoReply(i); err != nil {
			logrus.Warnf("auto-reply email failed: %v", err)
		}
	}()
}

// Drain blocks until in-flight notification emails have settled. Called on
// shutdown so a stopping process does not drop them.
func (s *inquiryService) Drain() {
	s.notifications.Wait()
}

func (s *inquiryService) FindAll(ctx context.Context, filter model.InquiryFilter) ([]model.Inquiry, error) {
	return s.inquiryRepo.FindAll(ctx, filter)
}

func (s *inquiryService) FindByID(ctx context.Context, id int) (*model.Inquiry, error) {
	cached, err := s.inquiryCache.FindByID(ctx, id)
	if err != nil {
		logrus.Warnf("inquiry cache lookup failed: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	i, err := s.inquiryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if i != nil {
		if err := s.inquiryCache.Cache(ctx, i); err != nil {
			logrus.Warnf("failed to cache inquiry %d: %v", id, err)
		}
	}
	return i, nil
}
