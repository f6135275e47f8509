package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adroitdesign/studio-api/internal/cache"
	"github.com/adroitdesign/studio-api/internal/crm"
	"github.com/adroitdesign/studio-api/internal/errors"
	"github.com/adroitdesign/studio-api/internal/model"
	"github.com/adroitdesign/studio-api/internal/repository"
)

const defaultSyncWindowDays = 7
const defaultLeadsLimit = 100

// SyncResult is one successfully pushed inquiry in a batch.
type SyncResult struct {
	InquiryID  int    `json:"inquiryId"`
	OdooLeadID int    `json:"odooLeadId"`
	Status     string `json:"status"`
}

// SyncError is one failed inquiry in a batch; the batch itself still
// succeeds.
type SyncError struct {
	InquiryID int    `json:"inquiryId"`
	Error     string `json:"error"`
}

// SyncReport summarizes a batch push. Partial success is a normal outcome.
type SyncReport struct {
	Synced  int          `json:"synced"`
	Failed  int          `json:"failed"`
	Results []SyncResult `json:"results"`
	Errors  []SyncError  `json:"errors"`
}

// LeadFilter narrows a CRM lead browse.
type LeadFilter struct {
	Name  string
	Stage int
	Limit int
}

// SyncService reconciles locally stored inquiries with the CRM and routes
// admin mutations CRM-first with local fallback.
type SyncService interface {
	SyncPending(ctx context.Context, windowDays int) (SyncReport, error)
	SyncOne(ctx context.Context, id int) (int, error)
	UpdateStatus(ctx context.Context, id int, status model.LeadStatus) (string, error)
	Delete(ctx context.Context, id int) (string, error)
	TestConnection(ctx context.Context) error
	Leads(ctx context.Context, filter LeadFilter) ([]map[string]any, error)
}

type syncService struct {
	crm          crm.API
	inquiryRepo  repository.InquiryRepository
	inquiryCache cache.InquiryCache
}

func NewSyncService(crmAPI crm.API, inquiryRepo repository.InquiryRepository, inquiryCache cache.InquiryCache) SyncService {
	return &syncService{crm: crmAPI, inquiryRepo: inquiryRepo, inquiryCache: inquiryCache}
}

// SyncPending pushes unlinked local inquiries from the trailing window up to
// the CRM, one at a time. A per-item failure is recorded and the batch moves
// on; a failure to persist the returned lead id is logged but does not undo
// the CRM creation.
func (s *syncService) SyncPending(ctx context.Context, windowDays int) (SyncReport, error) {
	if windowDays <= 0 {
		windowDays = defaultSyncWindowDays
	}

	pending, err := s.inquiryRepo.FindUnsynced(ctx, time.Duration(windowDays)*24*time.Hour)
	if err != nil {
		return SyncReport{}, fmt.Errorf("failed to select pending inquiries: %w", err)
	}

	report := SyncReport{
		Results: make([]SyncResult, 0, len(pending)),
		Errors:  make([]SyncError, 0),
	}

	for _, inquiry := range pending {
		leadID, err := s.pushToLead(ctx, inquiry)
		if err != nil {
			report.Errors = append(report.Errors, SyncError{InquiryID: inquiry.ID, Error: err.Error()})
			continue
		}
		report.Results = append(report.Results, SyncResult{InquiryID: inquiry.ID, OdooLeadID: leadID, Status: "success"})
	}

	report.Synced = len(report.Results)
	report.Failed = len(report.Errors)

	logrus.Infof("synced %d inquiries to crm, %d failed", report.Synced, report.Failed)
	return report, nil
}

// SyncOne pushes a single locally stored inquiry to the CRM.
func (s *syncService) SyncOne(ctx context.Context, id int) (int, error) {
	inquiry, err := s.inquiryRepo.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if inquiry == nil {
		return 0, errors.NewEntryNotFoundErr(fmt.Sprintf("inquiry %d not found", id))
	}
	return s.pushToLead(ctx, *inquiry)
}

func (s *syncService) pushToLead(ctx context.Context, inquiry model.Inquiry) (int, error) {
	leadID, err := s.crm.Create(ctx, crm.ModelLead, crm.LeadValues(inquiry))
	if err != nil {
		return 0, err
	}

	if err := s.inquiryRepo.SetLeadID(ctx, inquiry.ID, leadID); err != nil {
		// Accepted risk: the lead exists in the CRM but the local row stays
		// unlinked and remains eligible for the next sweep.
		logrus.Warnf("lead %d created but could not link inquiry %d: %v", leadID, inquiry.ID, err)
	}
	return leadID, nil
}

// UpdateStatus writes the pipeline stage on the CRM lead, or the status
// column of the local row when the CRM is unreachable. Never both, and no
// check that the two agree.
func (s *syncService) UpdateStatus(ctx context.Context, id int, status model.LeadStatus) (string, error) {
	if !status.Valid() {
		return "", errors.NewBusinessErr("status", fmt.Sprintf("invalid status %q", status))
	}

	if _, err := s.crm.Write(ctx, crm.ModelLead, []int{id}, map[string]any{"stage_id": model.LeadStages[status]}); err != nil {
		logrus.Warnf("crm unavailable, updating status in local database: %v", err)

		updated, dbErr := s.inquiryRepo.UpdateStatus(ctx, id, string(status))
		if dbErr != nil {
			return "", dbErr
		}
		if !updated {
			return "", errors.NewEntryNotFoundErr(fmt.Sprintf("inquiry %d not found", id))
		}
		s.evict(ctx, id)
		return StoredInLocal, nil
	}

	s.evict(ctx, id)
	return StoredInCRM, nil
}

// Delete removes the CRM lead, or the local row when the CRM is unreachable.
func (s *syncService) Delete(ctx context.Context, id int) (string, error) {
	if _, err := s.crm.Unlink(ctx, crm.ModelLead, []int{id}); err != nil {
		logrus.Warnf("crm unavailable, deleting from local database: %v", err)

		deleted, dbErr := s.inquiryRepo.Delete(ctx, id)
		if dbErr != nil {
			return "", dbErr
		}
		if !deleted {
			return "", errors.NewEntryNotFoundErr(fmt.Sprintf("inquiry %d not found", id))
		}
		s.evict(ctx, id)
		return StoredInLocal, nil
	}

	s.evict(ctx, id)
	return StoredInCRM, nil
}

// TestConnection verifies credentials against the CRM endpoint.
func (s *syncService) TestConnection(ctx context.Context) error {
	_, err := s.crm.Authenticate(ctx)
	return err
}

// Leads browses leads straight from the CRM, newest first.
func (s *syncService) Leads(ctx context.Context, filter LeadFilter) ([]map[string]any, error) {
	domain := []any{}
	if filter.Name != "" {
		domain = append(domain, []any{"name", "ilike", filter.Name})
	}
	if filter.Stage > 0 {
		domain = append(domain, []any{"stage_id", "=", filter.Stage})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLeadsLimit
	}

	ids, err := s.crm.Search(ctx, crm.ModelLead, domain, crm.SearchOptions{Order: "id desc", Limit: limit})
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []map[string]any{}, nil
	}

	return s.crm.Read(ctx, crm.ModelLead, ids, crm.LeadFields)
}

func (s *syncService) evict(ctx context.Context, id int) {
	if err := s.inquiryCache.EvictByID(ctx, id); err != nil {
		logrus.Warnf("failed to evict inquiry %d from cache: %v", id, err)
	}
}
