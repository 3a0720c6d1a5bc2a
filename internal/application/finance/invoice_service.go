package finance

import (
	"context"
	"errors"

	"github.com/estate/backend/internal/domain/crm"
	"github.com/estate/backend/internal/domain/finance"
	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceService issues invoices directly and tracks their settlement.
// Invoices born from an approved request come through the approval service
// instead; this path is for back-office staff raising one by hand.
type InvoiceService struct {
	invoiceRepo finance.InvoiceRepository
	clientRepo  crm.ClientRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo finance.InvoiceRepository, clientRepo crm.ClientRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
	}
}

// Create issues an invoice to an existing client
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	if _, err := s.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewLinkedEntityNotFoundError("client", req.ClientID.String())
		}
		return nil, err
	}

	invoice, err := finance.NewInvoice(req.ClientID, req.Amount, req.Date, req.DueDate, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	return ToInvoiceResponse(invoice), nil
}

// Get returns a single invoice
func (s *InvoiceService) Get(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponse(invoice), nil
}

// List returns a page of invoices, optionally narrowed to one settlement state
func (s *InvoiceService) List(ctx context.Context, status *finance.InvoiceStatus, filter shared.Filter) (*ListInvoicesResponse, error) {
	var invoices []finance.Invoice
	var err error
	if status != nil {
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Invalid invoice status: "+string(*status))
		}
		invoices, err = s.invoiceRepo.FindByStatus(ctx, *status, filter)
		// The count has to carry the same narrowing as the finder
		filter = filter.WithFilter("status", *status)
	} else {
		invoices, err = s.invoiceRepo.FindAll(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.invoiceRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, *ToInvoiceResponse(&invoices[i]))
	}

	paginated := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &ListInvoicesResponse{
		Items:      paginated.Items,
		Total:      paginated.Total,
		Page:       paginated.Page,
		PageSize:   paginated.PageSize,
		TotalPages: paginated.TotalPages,
	}, nil
}

// ListByClient returns the invoices issued to one client
func (s *InvoiceService) ListByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) (*ListInvoicesResponse, error) {
	invoices, err := s.invoiceRepo.FindByClient(ctx, clientID, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.invoiceRepo.Count(ctx, filter.WithFilter("client_id", clientID))
	if err != nil {
		return nil, err
	}

	items := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, *ToInvoiceResponse(&invoices[i]))
	}

	paginated := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &ListInvoicesResponse{
		Items:      paginated.Items,
		Total:      paginated.Total,
		Page:       paginated.Page,
		PageSize:   paginated.PageSize,
		TotalPages: paginated.TotalPages,
	}, nil
}

// MarkPaid settles an invoice
func (s *InvoiceService) MarkPaid(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := invoice.MarkPaid(); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	return ToInvoiceResponse(invoice), nil
}

// MarkOverdue flags a pending invoice past its due date
func (s *InvoiceService) MarkOverdue(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := invoice.MarkOverdue(); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	return ToInvoiceResponse(invoice), nil
}

// Delete removes an invoice
func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.invoiceRepo.Delete(ctx, id)
}
