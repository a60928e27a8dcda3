package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/billcraft/billcraft/internal/client/domain"
	"github.com/billcraft/billcraft/internal/client/repository"
)

func setup(t *testing.T) domain.Service {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(&domain.Client{})
	assert.NoError(t, err)

	node, _ := snowflake.NewNode(1)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func validRequest() domain.SaveClientRequest {
	return domain.SaveClientRequest{
		Name:    "Globex Corp",
		Email:   "ap@globex.test",
		Phone:   "(555) 010-0199",
		Address: "12 Harbor Way",
		City:    "Springfield",
		State:   "OR",
		ZipCode: "97401",
		Country: "USA",
	}
}

func TestSave_Insert(t *testing.T) {
	svc := setup(t)

	client, err := svc.Save(context.Background(), validRequest())
	assert.NoError(t, err)
	assert.NotZero(t, client.ID)
	assert.Equal(t, "Globex Corp", client.Name)
}

func TestSave_TrimsWhitespace(t *testing.T) {
	svc := setup(t)

	req := validRequest()
	req.Name = "  Globex Corp  "
	req.City = " Springfield "

	client, err := svc.Save(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, "Globex Corp", client.Name)
	assert.Equal(t, "Springfield", client.City)
}

func TestSave_Validation(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	req := validRequest()
	req.Name = "   "
	_, err := svc.Save(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	req = validRequest()
	req.Name = strings.Repeat("a", 101)
	_, err = svc.Save(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	req = validRequest()
	req.Email = "not-an-email"
	_, err = svc.Save(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	req = validRequest()
	req.Phone = "123"
	_, err = svc.Save(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidPhone)
}

func TestSave_OptionalFieldsMayBeEmpty(t *testing.T) {
	svc := setup(t)

	_, err := svc.Save(context.Background(), domain.SaveClientRequest{Name: "Solo Client"})
	assert.NoError(t, err)
}

func TestSave_DuplicateName(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, validRequest())
	assert.NoError(t, err)

	_, err = svc.Save(ctx, validRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicateClient)
}

func TestSave_Update(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	client, err := svc.Save(ctx, validRequest())
	assert.NoError(t, err)

	req := validRequest()
	req.ID = client.ID
	req.City = "Portland"
	updated, err := svc.Save(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, client.ID, updated.ID)
	assert.Equal(t, "Portland", updated.City)
}

func TestGetByName(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, validRequest())
	assert.NoError(t, err)

	got, err := svc.GetByName(ctx, "Globex Corp")
	assert.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)

	_, err = svc.GetByName(ctx, "Nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_OrderedByName(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	for _, name := range []string{"Zeta LLC", "Acme Studio", "Mid Corp"} {
		req := validRequest()
		req.Name = name
		_, err := svc.Save(ctx, req)
		assert.NoError(t, err)
	}

	clients, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, clients, 3)
	assert.Equal(t, "Acme Studio", clients[0].Name)
	assert.Equal(t, "Mid Corp", clients[1].Name)
	assert.Equal(t, "Zeta LLC", clients[2].Name)
}

func TestSearch(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, validRequest())
	assert.NoError(t, err)

	req := validRequest()
	req.Name = "Initech"
	req.Email = "billing@initech.test"
	_, err = svc.Save(ctx, req)
	assert.NoError(t, err)

	byName, err := svc.Search(ctx, "Glob")
	assert.NoError(t, err)
	assert.Len(t, byName, 1)

	byEmail, err := svc.Search(ctx, "initech.test")
	assert.NoError(t, err)
	assert.Len(t, byEmail, 1)
	assert.Equal(t, "Initech", byEmail[0].Name)
}

func TestDelete(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	client, err := svc.Save(ctx, validRequest())
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, client.ID))
	_, err = svc.GetByID(ctx, client.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFullAddress(t *testing.T) {
	c := domain.Client{
		Address: "12 Harbor Way",
		City:    "Springfield",
		State:   "OR",
		ZipCode: "97401",
		Country: "USA",
	}
	assert.Equal(t, "12 Harbor Way\nSpringfield, OR, 97401\nUSA", c.FullAddress())

	sparse := domain.Client{City: "Springfield"}
	assert.Equal(t, "Springfield", sparse.FullAddress())

	assert.Equal(t, "", domain.Client{}.FullAddress())
}
