package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/cspzone/docs-service/internal/model"
	"github.com/cspzone/docs-service/internal/repository"
)

type ClientService struct {
	clients *repository.ClientRepository
	log     zerolog.Logger
	now     func() time.Time
}

func NewClientService(clients *repository.ClientRepository, log zerolog.Logger) *ClientService {
	return &ClientService{
		clients: clients,
		log:     log,
		now:     time.Now,
	}
}

// ResolveClient finds the client by email and refreshes its details, or
// registers it when the email is new.
func (s *ClientService) ResolveClient(ctx context.Context, desc model.ClientDescriptor) (model.ResolveResult, error) {
	email := normalizeEmail(desc.Email)
	if email == "" {
		return model.ResolveResult{}, validationError("email is required")
	}

	result, err := s.clients.Resolve(ctx, model.Client{
		Name:             strings.TrimSpace(desc.Name),
		Email:            email,
		Phone:            strings.TrimSpace(desc.Phone),
		Jurisdiction:     strings.TrimSpace(desc.Jurisdiction),
		BusinessActivity: strings.TrimSpace(desc.BusinessActivity),
	}, timestamp(s.now()))
	if err != nil {
		return model.ResolveResult{}, storeError("resolve client", err)
	}

	s.log.Info().
		Int64("client_id", result.ID).
		Str("action", string(result.Action)).
		Msg("client resolved")
	return result, nil
}

// FindClientByEmail returns nil without error when no client has the email.
func (s *ClientService) FindClientByEmail(ctx context.Context, email string) (*model.Client, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, validationError("email is required")
	}
	client, err := s.clients.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError("find client", err)
	}
	return client, nil
}

// GetClient returns nil without error when the id is unknown.
func (s *ClientService) GetClient(ctx context.Context, id int64) (*model.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError("get client", err)
	}
	return client, nil
}

func (s *ClientService) ListClients(ctx context.Context) ([]model.Client, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, storeError("list clients", err)
	}
	if clients == nil {
		clients = []model.Client{}
	}
	return clients, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
