package booking

import (
	"context"
	"errors"

	"github.com/estate/backend/internal/domain/booking"
	"github.com/estate/backend/internal/domain/crm"
	"github.com/estate/backend/internal/domain/shared"
	"github.com/estate/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// BookingService assembles bookings: it resolves or synthesizes the client,
// validates every supplied relation and persists the whole unit atomically
type BookingService struct {
	bookingRepo booking.BookingRepository
	txScope     TransactionScope
}

// NewBookingService creates a new BookingService
func NewBookingService(bookingRepo booking.BookingRepository, txScope TransactionScope) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		txScope:     txScope,
	}
}

// Create assembles and persists a booking in one transaction
// A supplied client_id is used as-is; without one, a client is synthesized
// from the applicant details and rolls back with the booking on failure
func (s *BookingService) Create(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error) {
	if req.BasicPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_BASIC_PRICE", "Basic price cannot be negative")
	}
	if req.ClientID == nil && req.Applicant == nil {
		return nil, shared.NewDomainError("INVALID_INPUT",
			"Either a client ID or applicant details must be supplied")
	}
	if req.Status != "" && !booking.BookingStatus(req.Status).IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Invalid booking status: "+req.Status)
	}

	var result *booking.Booking
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := s.verifyLinks(ctx, repos, &req); err != nil {
			return err
		}

		clientID, err := s.resolveClient(ctx, repos, &req)
		if err != nil {
			return err
		}

		b, err := booking.NewBooking(clientID, req.ProjectID, req.PropertyID,
			req.PaymentPlanID, req.SalesEmployeeID, req.BasicPrice)
		if err != nil {
			return err
		}

		if req.BrokerID != nil {
			if err := b.SetBroker(*req.BrokerID); err != nil {
				return err
			}
		}
		if req.Applicant != nil {
			applicant, err := toApplicant(req.Applicant)
			if err != nil {
				return err
			}
			if err := b.SetApplicant(applicant); err != nil {
				return err
			}
		}
		b.SetDiscounts(req.CompanyDiscount.ToDiscount(), req.BrokerDiscount.ToDiscount())
		b.SetClassification(req.UnitHolderType, req.UnitType, req.CustomerKind, req.BookingType)
		b.SetFormNumbers(req.FormNumber, req.RegistrationNumber)
		if req.ApplicationDate != nil {
			b.SetApplicationDate(*req.ApplicationDate)
		}
		if req.Status != "" {
			if err := b.SetStatus(booking.BookingStatus(req.Status)); err != nil {
				return err
			}
		}

		if err := repos.BookingRepo().Save(ctx, b); err != nil {
			return err
		}

		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ToBookingResponse(result), nil
}

// verifyLinks checks every supplied relation inside the transaction so a
// dangling id surfaces as a typed linked-entity error, never a generic 500
func (s *BookingService) verifyLinks(ctx context.Context, repos TransactionalRepositories, req *CreateBookingRequest) error {
	if _, err := repos.ProjectRepo().FindByID(ctx, req.ProjectID); err != nil {
		return linkError("project", req.ProjectID, err)
	}
	if _, err := repos.PropertyRepo().FindByID(ctx, req.PropertyID); err != nil {
		return linkError("property", req.PropertyID, err)
	}
	if _, err := repos.PlanRepo().FindByID(ctx, req.PaymentPlanID); err != nil {
		return linkError("payment plan", req.PaymentPlanID, err)
	}
	if _, err := repos.UserRepo().FindByID(ctx, req.SalesEmployeeID); err != nil {
		return linkError("sales employee", req.SalesEmployeeID, err)
	}
	if req.BrokerID != nil {
		if _, err := repos.UserRepo().FindByID(ctx, *req.BrokerID); err != nil {
			return linkError("broker", *req.BrokerID, err)
		}
	}
	if req.ClientID != nil {
		if _, err := repos.ClientRepo().FindByID(ctx, *req.ClientID); err != nil {
			return linkError("client", *req.ClientID, err)
		}
	}
	return nil
}

func linkError(entity string, id uuid.UUID, err error) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NewLinkedEntityNotFoundError(entity, id.String())
	}
	return err
}

// resolveClient uses the supplied client id as-is, or synthesizes a new
// client from the applicant details inside the current transaction
func (s *BookingService) resolveClient(ctx context.Context, repos TransactionalRepositories, req *CreateBookingRequest) (uuid.UUID, error) {
	if req.ClientID != nil {
		return *req.ClientID, nil
	}

	client, err := crm.NewClient(req.Applicant.Name)
	if err != nil {
		return uuid.Nil, err
	}
	if req.Applicant.Phone != "" || req.Applicant.Email != "" {
		if err := client.SetContact(req.Applicant.Phone, req.Applicant.Email); err != nil {
			return uuid.Nil, err
		}
	}
	if req.Applicant.PAN != "" {
		if err := client.SetTaxIdentity(req.Applicant.PAN, "", ""); err != nil {
			return uuid.Nil, err
		}
	}

	present, office, permanent, err := applicantAddresses(req.Applicant)
	if err != nil {
		return uuid.Nil, err
	}
	if !present.IsEmpty() || !office.IsEmpty() || !permanent.IsEmpty() {
		client.SetAddresses(present, office, permanent)
	}

	if err := repos.ClientRepo().Save(ctx, client); err != nil {
		return uuid.Nil, err
	}

	return client.ID, nil
}

func applicantAddresses(a *ApplicantInput) (present, office, permanent valueobject.PostalAddress, err error) {
	if present, err = a.PresentAddress.ToValueObject(); err != nil {
		return present, office, permanent, shared.NewDomainError("INVALID_ADDRESS", err.Error())
	}
	if office, err = a.OfficeAddress.ToValueObject(); err != nil {
		return present, office, permanent, shared.NewDomainError("INVALID_ADDRESS", err.Error())
	}
	if permanent, err = a.PermanentAddress.ToValueObject(); err != nil {
		return present, office, permanent, shared.NewDomainError("INVALID_ADDRESS", err.Error())
	}
	return present, office, permanent, nil
}

func toApplicant(a *ApplicantInput) (booking.Applicant, error) {
	present, office, permanent, err := applicantAddresses(a)
	if err != nil {
		return booking.Applicant{}, err
	}
	return booking.Applicant{
		Name:             a.Name,
		Email:            a.Email,
		Phone:            a.Phone,
		PAN:              a.PAN,
		PresentAddress:   present,
		OfficeAddress:    office,
		PermanentAddress: permanent,
	}, nil
}

// Get returns a single booking
func (s *BookingService) Get(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToBookingResponse(b), nil
}

// List returns a page of bookings
func (s *BookingService) List(ctx context.Context, filter shared.Filter) (*ListBookingsResponse, error) {
	bookings, err := s.bookingRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.bookingRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, *ToBookingResponse(&bookings[i]))
	}

	paginated := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &ListBookingsResponse{
		Items:      paginated.Items,
		Total:      paginated.Total,
		Page:       paginated.Page,
		PageSize:   paginated.PageSize,
		TotalPages: paginated.TotalPages,
	}, nil
}

// Update patches a booking; only supplied relation ids are rewritten and each
// is re-verified inside the transaction
func (s *BookingService) Update(ctx context.Context, id uuid.UUID, req UpdateBookingRequest) (*BookingResponse, error) {
	var result *booking.Booking
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		b, err := repos.BookingRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if req.ProjectID != nil {
			if _, err := repos.ProjectRepo().FindByID(ctx, *req.ProjectID); err != nil {
				return linkError("project", *req.ProjectID, err)
			}
		}
		if req.PropertyID != nil {
			if _, err := repos.PropertyRepo().FindByID(ctx, *req.PropertyID); err != nil {
				return linkError("property", *req.PropertyID, err)
			}
		}
		if req.PaymentPlanID != nil {
			if _, err := repos.PlanRepo().FindByID(ctx, *req.PaymentPlanID); err != nil {
				return linkError("payment plan", *req.PaymentPlanID, err)
			}
		}
		if req.SalesEmployeeID != nil {
			if _, err := repos.UserRepo().FindByID(ctx, *req.SalesEmployeeID); err != nil {
				return linkError("sales employee", *req.SalesEmployeeID, err)
			}
		}
		if req.BrokerID != nil {
			if _, err := repos.UserRepo().FindByID(ctx, *req.BrokerID); err != nil {
				return linkError("broker", *req.BrokerID, err)
			}
		}

		if err := b.Relink(req.ProjectID, req.PropertyID, req.PaymentPlanID,
			req.SalesEmployeeID, req.BrokerID); err != nil {
			return err
		}

		if req.BasicPrice != nil {
			if err := b.SetBasicPrice(*req.BasicPrice); err != nil {
				return err
			}
		}
		if req.UnitHolderType != nil || req.UnitType != nil || req.CustomerKind != nil || req.BookingType != nil {
			unitHolder := b.UnitHolderType
			unitType := b.UnitType
			customerKind := b.CustomerKind
			bookingType := b.BookingType
			if req.UnitHolderType != nil {
				unitHolder = *req.UnitHolderType
			}
			if req.UnitType != nil {
				unitType = *req.UnitType
			}
			if req.CustomerKind != nil {
				customerKind = *req.CustomerKind
			}
			if req.BookingType != nil {
				bookingType = *req.BookingType
			}
			b.SetClassification(unitHolder, unitType, customerKind, bookingType)
		}
		if req.FormNumber != nil || req.RegistrationNumber != nil {
			formNumber := b.FormNumber
			registration := b.RegistrationNumber
			if req.FormNumber != nil {
				formNumber = *req.FormNumber
			}
			if req.RegistrationNumber != nil {
				registration = *req.RegistrationNumber
			}
			b.SetFormNumbers(formNumber, registration)
		}
		if req.ApplicationDate != nil {
			b.SetApplicationDate(*req.ApplicationDate)
		}
		if req.CompanyDiscount != nil || req.BrokerDiscount != nil {
			company := b.CompanyDiscount
			broker := b.BrokerDiscount
			if req.CompanyDiscount != nil {
				company = req.CompanyDiscount.ToDiscount()
			}
			if req.BrokerDiscount != nil {
				broker = req.BrokerDiscount.ToDiscount()
			}
			b.SetDiscounts(company, broker)
		}
		if req.Status != nil {
			if err := b.SetStatus(booking.BookingStatus(*req.Status)); err != nil {
				return err
			}
		}

		if err := repos.BookingRepo().Save(ctx, b); err != nil {
			return err
		}

		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ToBookingResponse(result), nil
}

// Delete removes a booking
func (s *BookingService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.bookingRepo.Delete(ctx, id)
}
