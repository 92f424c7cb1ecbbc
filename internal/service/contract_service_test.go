package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioyard/studio-api/internal/domain"
)

func validContractRequest() *domain.ContractRequest {
	return &domain.ContractRequest{
		Type:             domain.ContractTypeGraphic,
		ClientName:       "Ama Serwaa",
		ProjectTitle:     "Brand refresh",
		AgreedAmount:     "2500",
		ServicesSelected: []string{"Logo Design"},
	}
}

func TestContractCreateAssignsNumber(t *testing.T) {
	svc := newContractService(t)
	ctx := context.Background()
	year := time.Now().Year()

	contract, err := svc.Create(ctx, "user-1", validContractRequest())
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("CGY-%d-001", year), contract.ContractNumber)
	assert.Equal(t, 1, contract.Sequence)
	assert.Equal(t, domain.ContractStatusDraft, contract.Status)
	assert.NotNil(t, contract.SavedDate)

	// studio terms fill anything the request left out
	assert.Equal(t, 50, contract.DepositPercent)
	assert.Equal(t, "Non-exclusive commercial", contract.LicenseType)
	assert.True(t, contract.PortfolioRights)
}

func TestContractDraftDoesNotConsumeCounter(t *testing.T) {
	svc := newContractService(t)
	ctx := context.Background()
	year := time.Now().Year()

	draft, err := svc.NewDraft(ctx, "user-1", domain.ContractTypeMerch)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("CGY-%d-001", year), draft.ContractNumber)
	assert.Nil(t, draft.SavedDate)

	// previewing twice still shows the same number
	again, err := svc.NewDraft(ctx, "user-1", domain.ContractTypeMerch)
	require.NoError(t, err)
	assert.Equal(t, draft.ContractNumber, again.ContractNumber)

	created, err := svc.Create(ctx, "user-1", validContractRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, created.Sequence)
}

func TestContractCreateRejectsInvalidType(t *testing.T) {
	svc := newContractService(t)
	req := validContractRequest()
	req.Type = "web"

	_, err := svc.Create(context.Background(), "user-1", req)

	assert.ErrorIs(t, err, ErrInvalidContractType)
}

func TestContractCreateAcceptsZeroAgreedAmount(t *testing.T) {
	svc := newContractService(t)
	req := validContractRequest()
	req.AgreedAmount = "0"

	contract, err := svc.Create(context.Background(), "user-1", req)

	require.NoError(t, err)
	assert.True(t, contract.AgreedAmount.Valid)
	assert.True(t, contract.AgreedAmount.Decimal.IsZero())
}

func TestContractCreateRejectsMissingAmount(t *testing.T) {
	svc := newContractService(t)
	req := validContractRequest()
	req.AgreedAmount = ""

	_, err := svc.Create(context.Background(), "user-1", req)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, domain.RuleAmountRequired, ve.Rule)
}

func TestContractUpdateKeepsNumber(t *testing.T) {
	svc := newContractService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", validContractRequest())
	require.NoError(t, err)

	req := validContractRequest()
	req.Status = domain.ContractStatusSigned
	updated, err := svc.Update(ctx, "user-1", created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, created.ContractNumber, updated.ContractNumber)
	assert.Equal(t, created.Sequence, updated.Sequence)
	assert.Equal(t, domain.ContractStatusSigned, updated.Status)

	// the edit must not have consumed a sequence number
	next, err := svc.Create(ctx, "user-1", validContractRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, next.Sequence)
}

func TestContractDuplicateConsumesCounter(t *testing.T) {
	svc := newContractService(t)
	ctx := context.Background()

	src, err := svc.Create(ctx, "user-1", validContractRequest())
	require.NoError(t, err)

	dup, err := svc.Duplicate(ctx, "user-1", src.ID)
	require.NoError(t, err)

	assert.NotEqual(t, src.ID, dup.ID)
	assert.Equal(t, 2, dup.Sequence)
	assert.Equal(t, domain.ContractStatusDraft, dup.Status)
	assert.Nil(t, dup.SavedDate)
	assert.Equal(t, src.AgreedAmount, dup.AgreedAmount)
	assert.Equal(t, src.ClientName, dup.ClientName)

	// both records are stored independently
	list, err := svc.List(ctx, "user-1", domain.ContractListFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestContractListFilters(t *testing.T) {
	svc := newContractService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "user-1", validContractRequest())
	require.NoError(t, err)
	merch := validContractRequest()
	merch.Type = domain.ContractTypeMerch
	merch.ServicesSelected = []string{"Apparel Graphic"}
	merch.ProjectTitle = "Capsule drop"
	_, err = svc.Create(ctx, "user-1", merch)
	require.NoError(t, err)

	merchOnly, err := svc.List(ctx, "user-1", domain.ContractListFilter{Type: domain.ContractTypeMerch})
	require.NoError(t, err)
	require.Len(t, merchOnly, 1)
	assert.Equal(t, domain.ContractTypeMerch, merchOnly[0].Type)

	found, err := svc.List(ctx, "user-1", domain.ContractListFilter{Search: "capsule"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Capsule drop", found[0].ProjectTitle)
}

func TestContractDelete(t *testing.T) {
	svc := newContractService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", validContractRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "user-1", created.ID))
	_, err = svc.GetByID(ctx, "user-1", created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogLookup(t *testing.T) {
	svc := newContractService(t)

	catalog, err := svc.Catalog(domain.ContractTypeGraphic)
	require.NoError(t, err)
	assert.Equal(t, "Graphic Design & Branding", catalog.Label)
	assert.Len(t, catalog.Services, 6)

	_, err = svc.Catalog("web")
	assert.ErrorIs(t, err, ErrInvalidContractType)
}
