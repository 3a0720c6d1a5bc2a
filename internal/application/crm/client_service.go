package crm

import (
	"context"

	"github.com/estate/backend/internal/domain/crm"
	"github.com/estate/backend/internal/domain/identity"
	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo crm.ClientRepository
	txScope    TransactionScope
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo crm.ClientRepository, txScope TransactionScope) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		txScope:    txScope,
	}
}

// Create creates a new client; when login credentials are supplied, the
// portal account is provisioned inside the same transaction
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	if req.Email != "" {
		exists, err := s.clientRepo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this email already exists")
		}
	}

	client, err := crm.NewClient(req.Name)
	if err != nil {
		return nil, err
	}

	if req.Phone != "" || req.Email != "" {
		if err := client.SetContact(req.Phone, req.Email); err != nil {
			return nil, err
		}
	}
	if req.PAN != "" || req.GST != "" || req.Aadhaar != "" {
		if err := client.SetTaxIdentity(req.PAN, req.GST, req.Aadhaar); err != nil {
			return nil, err
		}
	}

	present, err := req.PresentAddress.ToValueObject()
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ADDRESS", err.Error())
	}
	office, err := req.OfficeAddress.ToValueObject()
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ADDRESS", err.Error())
	}
	permanent, err := req.PermanentAddress.ToValueObject()
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ADDRESS", err.Error())
	}
	if !present.IsEmpty() || !office.IsEmpty() || !permanent.IsEmpty() {
		client.SetAddresses(present, office, permanent)
	}

	if req.Notes != "" {
		client.SetNotes(req.Notes)
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if req.LoginUsername != "" {
			if req.LoginPassword == "" {
				return shared.NewDomainError("INVALID_INPUT", "Login password is required when a username is supplied")
			}
			user, err := identity.NewActiveUser(req.LoginUsername, req.LoginPassword, identity.UserRoleClient)
			if err != nil {
				return err
			}
			if req.Email != "" {
				if err := user.SetEmail(req.Email); err != nil {
					return err
				}
			}
			if err := user.SetDisplayName(req.Name); err != nil {
				return err
			}
			if err := repos.UserRepo().Save(ctx, user); err != nil {
				return err
			}
			client.LinkLoginUser(user.ID)
		}

		return repos.ClientRepo().Save(ctx, client)
	})
	if err != nil {
		return nil, err
	}

	return ToClientResponse(client), nil
}

// Get returns a single client
func (s *ClientService) Get(ctx context.Context, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToClientResponse(client), nil
}

// List returns a page of clients
func (s *ClientService) List(ctx context.Context, filter shared.Filter) (*ListClientsResponse, error) {
	clients, err := s.clientRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.clientRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		items = append(items, *ToClientResponse(&clients[i]))
	}

	paginated := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &ListClientsResponse{
		Items:      paginated.Items,
		Total:      paginated.Total,
		Page:       paginated.Page,
		PageSize:   paginated.PageSize,
		TotalPages: paginated.TotalPages,
	}, nil
}

// Update applies a partial update; only supplied fields change
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := client.Update(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Phone != nil || req.Email != nil {
		phone := client.Phone
		email := client.Email
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Email != nil {
			email = *req.Email
		}
		if err := client.SetContact(phone, email); err != nil {
			return nil, err
		}
	}
	if req.PAN != nil || req.GST != nil || req.Aadhaar != nil {
		pan := client.PAN
		gst := client.GST
		aadhaar := client.Aadhaar
		if req.PAN != nil {
			pan = *req.PAN
		}
		if req.GST != nil {
			gst = *req.GST
		}
		if req.Aadhaar != nil {
			aadhaar = *req.Aadhaar
		}
		if err := client.SetTaxIdentity(pan, gst, aadhaar); err != nil {
			return nil, err
		}
	}
	if req.PresentAddress != nil || req.OfficeAddress != nil || req.PermanentAddress != nil {
		present := client.PresentAddress
		office := client.OfficeAddress
		permanent := client.PermanentAddress
		if req.PresentAddress != nil {
			if present, err = req.PresentAddress.ToValueObject(); err != nil {
				return nil, shared.NewDomainError("INVALID_ADDRESS", err.Error())
			}
		}
		if req.OfficeAddress != nil {
			if office, err = req.OfficeAddress.ToValueObject(); err != nil {
				return nil, shared.NewDomainError("INVALID_ADDRESS", err.Error())
			}
		}
		if req.PermanentAddress != nil {
			if permanent, err = req.PermanentAddress.ToValueObject(); err != nil {
				return nil, shared.NewDomainError("INVALID_ADDRESS", err.Error())
			}
		}
		client.SetAddresses(present, office, permanent)
	}
	if req.Notes != nil {
		client.SetNotes(*req.Notes)
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	return ToClientResponse(client), nil
}

// SetKYCStatus moves a client's KYC verification state
func (s *ClientService) SetKYCStatus(ctx context.Context, id uuid.UUID, req SetKYCStatusRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := client.SetKYCStatus(crm.KYCStatus(req.Status)); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	return ToClientResponse(client), nil
}

// Deactivate deactivates a client
func (s *ClientService) Deactivate(ctx context.Context, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := client.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	return ToClientResponse(client), nil
}

// Delete removes a client
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.clientRepo.Delete(ctx, id)
}
