package approval

import (
	"context"
	"errors"

	"github.com/estate/backend/internal/domain/approval"
	"github.com/estate/backend/internal/domain/finance"
	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ApprovalService files approvals and resolves them exactly once. An approved
// INVOICE request materializes its invoice in the same transaction as the
// decision, so a decided approval always has its side effect and a failed
// side effect always leaves the approval pending.
type ApprovalService struct {
	approvalRepo approval.ApprovalRepository
	txScope      TransactionScope
	idempotency  shared.IdempotencyStore
	idemCfg      shared.IdempotencyConfig
}

// NewApprovalService creates a new ApprovalService
func NewApprovalService(
	approvalRepo approval.ApprovalRepository,
	txScope TransactionScope,
	idempotency shared.IdempotencyStore,
	idemCfg shared.IdempotencyConfig,
) *ApprovalService {
	return &ApprovalService{
		approvalRepo: approvalRepo,
		txScope:      txScope,
		idempotency:  idempotency,
		idemCfg:      idemCfg,
	}
}

// Create files a pending approval on behalf of the requester
func (s *ApprovalService) Create(ctx context.Context, requesterID uuid.UUID, req CreateApprovalRequest) (*ApprovalResponse, error) {
	payload, err := buildPayload(req)
	if err != nil {
		return nil, err
	}

	a, err := approval.NewApproval(requesterID, payload)
	if err != nil {
		return nil, err
	}

	if err := s.approvalRepo.Save(ctx, a); err != nil {
		return nil, err
	}

	return ToApprovalResponse(a), nil
}

func buildPayload(req CreateApprovalRequest) (approval.Payload, error) {
	if req.Invoice == nil {
		return nil, shared.NewDomainError("INVALID_PAYLOAD", "Approval request carries no payload")
	}
	return approval.InvoicePayload{
		ClientID:    req.Invoice.ClientID,
		Amount:      req.Invoice.Amount,
		Date:        req.Invoice.Date,
		DueDate:     req.Invoice.DueDate,
		Description: req.Invoice.Description,
	}, nil
}

// Decide resolves a pending approval and, on approval, materializes its
// payload. The terminal-status guard inside the transaction is the real
// duplicate barrier; the idempotency store only short-circuits retries
// before they open a transaction.
func (s *ApprovalService) Decide(ctx context.Context, id uuid.UUID, req DecideRequest) (*ApprovalResponse, error) {
	newStatus := approval.ApprovalStatus(req.Status)

	if s.idemCfg.Enabled {
		processed, err := s.idempotency.IsProcessed(ctx, decisionKey(id))
		if err == nil && processed {
			return nil, shared.ErrAlreadyDecided
		}
	}

	var decided *approval.Approval
	var invoiceID *uuid.UUID
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		a, err := repos.ApprovalRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := a.Decide(newStatus); err != nil {
			return err
		}

		if a.IsApproved() {
			invoiceID, err = s.materialize(ctx, repos, a)
			if err != nil {
				return err
			}
		}

		if err := repos.ApprovalRepo().Save(ctx, a); err != nil {
			return err
		}

		decided = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.idemCfg.Enabled {
		// Best effort: the decision is already committed, a marking failure
		// only costs one extra round through the terminal-status guard
		_, _ = s.idempotency.MarkProcessed(ctx, decisionKey(id), s.idemCfg.TTL)
	}

	resp := ToApprovalResponse(decided)
	resp.InvoiceID = invoiceID
	return resp, nil
}

func decisionKey(id uuid.UUID) string {
	return "approval:" + id.String()
}

// materialize applies the side effect of an approved request
// Infrastructure failures surface as a materialization error so callers can
// tell a rolled-back decision from a rejected one
func (s *ApprovalService) materialize(ctx context.Context, repos TransactionalRepositories, a *approval.Approval) (*uuid.UUID, error) {
	switch payload := a.Payload.(type) {
	case approval.InvoicePayload:
		return s.materializeInvoice(ctx, repos, payload)
	}
	return nil, shared.NewMaterializationError("No materializer for approval type " + string(a.Type))
}

func (s *ApprovalService) materializeInvoice(ctx context.Context, repos TransactionalRepositories, payload approval.InvoicePayload) (*uuid.UUID, error) {
	if _, err := repos.ClientRepo().FindByID(ctx, payload.ClientID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewLinkedEntityNotFoundError("client", payload.ClientID.String())
		}
		return nil, err
	}

	issueDate, dueDate, err := payload.Dates()
	if err != nil {
		return nil, err
	}

	invoice, err := finance.NewInvoice(payload.ClientID, payload.Amount, issueDate, dueDate, payload.Description)
	if err != nil {
		return nil, err
	}

	if err := repos.InvoiceRepo().Save(ctx, invoice); err != nil {
		return nil, shared.NewMaterializationError("Invoice could not be persisted: " + err.Error())
	}

	return &invoice.ID, nil
}

// Get returns a single approval
func (s *ApprovalService) Get(ctx context.Context, id uuid.UUID) (*ApprovalResponse, error) {
	a, err := s.approvalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToApprovalResponse(a), nil
}

// List returns a page of approvals, optionally narrowed to one decision state
func (s *ApprovalService) List(ctx context.Context, status *approval.ApprovalStatus, filter shared.Filter) (*ListApprovalsResponse, error) {
	var approvals []approval.Approval
	var err error
	if status != nil {
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Invalid approval status: "+string(*status))
		}
		approvals, err = s.approvalRepo.FindByStatus(ctx, *status, filter)
		// The count has to carry the same narrowing as the finder
		filter = filter.WithFilter("status", *status)
	} else {
		approvals, err = s.approvalRepo.FindAll(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.approvalRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]ApprovalResponse, 0, len(approvals))
	for i := range approvals {
		items = append(items, *ToApprovalResponse(&approvals[i]))
	}

	paginated := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &ListApprovalsResponse{
		Items:      paginated.Items,
		Total:      paginated.Total,
		Page:       paginated.Page,
		PageSize:   paginated.PageSize,
		TotalPages: paginated.TotalPages,
	}, nil
}

// ListByRequester returns the approvals a user has filed
func (s *ApprovalService) ListByRequester(ctx context.Context, requesterID uuid.UUID, filter shared.Filter) (*ListApprovalsResponse, error) {
	approvals, err := s.approvalRepo.FindByRequester(ctx, requesterID, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.approvalRepo.Count(ctx, filter.WithFilter("requester_id", requesterID))
	if err != nil {
		return nil, err
	}

	items := make([]ApprovalResponse, 0, len(approvals))
	for i := range approvals {
		items = append(items, *ToApprovalResponse(&approvals[i]))
	}

	paginated := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &ListApprovalsResponse{
		Items:      paginated.Items,
		Total:      paginated.Total,
		Page:       paginated.Page,
		PageSize:   paginated.PageSize,
		TotalPages: paginated.TotalPages,
	}, nil
}

// Delete removes an approval
func (s *ApprovalService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.approvalRepo.Delete(ctx, id)
}
