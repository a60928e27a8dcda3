package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/billcraft/billcraft/internal/client/domain"
	"github.com/billcraft/billcraft/pkg/db"
)

var nonDigits = regexp.MustCompile(`\D`)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	validate *validator.Validate
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("client.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *Service) Save(ctx context.Context, req domain.SaveClientRequest) (domain.Client, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := s.validate.Struct(req); err != nil {
		return domain.Client{}, s.translateValidation(err)
	}
	if err := validatePhone(req.Phone); err != nil {
		return domain.Client{}, err
	}

	now := time.Now().UTC()
	client := domain.Client{
		ID:        req.ID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     strings.TrimSpace(req.Phone),
		Address:   strings.TrimSpace(req.Address),
		City:      strings.TrimSpace(req.City),
		State:     strings.TrimSpace(req.State),
		ZipCode:   strings.TrimSpace(req.ZipCode),
		Country:   strings.TrimSpace(req.Country),
		Notes:     req.Notes,
		UpdatedAt: now,
	}

	var err error
	if client.ID == 0 {
		client.ID = s.genID.Generate()
		client.CreatedAt = now
		err = s.repo.Insert(ctx, s.db, &client)
	} else {
		err = s.repo.Update(ctx, s.db, &client)
	}
	if err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Client{}, domain.ErrDuplicateClient
		}
		return domain.Client{}, err
	}

	return client, nil
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (domain.Client, error) {
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Client{}, err
	}
	if item == nil {
		return domain.Client{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) GetByName(ctx context.Context, name string) (domain.Client, error) {
	item, err := s.repo.FindByName(ctx, s.db, strings.TrimSpace(name))
	if err != nil {
		return domain.Client{}, err
	}
	if item == nil {
		return domain.Client{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return deref(items), nil
}

func (s *Service) Search(ctx context.Context, term string) ([]domain.Client, error) {
	items, err := s.repo.Search(ctx, s.db, strings.TrimSpace(term))
	if err != nil {
		return nil, err
	}
	return deref(items), nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) translateValidation(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Field() {
			case "Name":
				return domain.ErrInvalidName
			case "Email":
				return domain.ErrInvalidEmail
			}
		}
	}
	return err
}

// validatePhone accepts empty values; non-empty phones must carry 7 to
// 15 digits once formatting characters are stripped.
func validatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil
	}
	digits := nonDigits.ReplaceAllString(phone, "")
	if len(digits) < 7 || len(digits) > 15 {
		return domain.ErrInvalidPhone
	}
	return nil
}

func deref(items []*domain.Client) []domain.Client {
	out := make([]domain.Client, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		out = append(out, *item)
	}
	return out
}
