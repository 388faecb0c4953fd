package repository

import (
	"context"

	"nexus_settlement/internal/domain/entities"
	"nexus_settlement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

type fundingRequestItem struct {
	ID                    string            `dynamodbav:"id"`
	Title                 string            `dynamodbav:"title"`
	Description           string            `dynamodbav:"description"`
	RequiredAmount        string            `dynamodbav:"required_amount"`
	CurrentFunded         string            `dynamodbav:"current_funded"`
	FunderID              string            `dynamodbav:"funder_id"`
	Status                string            `dynamodbav:"status"`
	Deadline              string            `dynamodbav:"deadline"`
	CommittedReturnAmount string            `dynamodbav:"committed_return_amount"`
	InvestorAmounts       map[string]string `dynamodbav:"investor_amounts"`
	ReturnDistributed     bool              `dynamodbav:"return_distributed"`
	CreatedAt             string            `dynamodbav:"created_at"`
	UpdatedAt             string            `dynamodbav:"updated_at"`
	Version               int64             `dynamodbav:"version"`
}

// FundingRequestDynamoRepository persists the FundingRequest write model.
//
// Table requirements:
//   - PK: id (string)
//
// Save is conditional on the version read by the caller and bumps it.

type FundingRequestDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var (
	_ interfaces.IFundingRequestRepository = (*FundingRequestDynamoRepository)(nil)
	_ interfaces.IFundingRequestLookup     = (*FundingRequestDynamoRepository)(nil)
)

func NewFundingRequestDynamoRepository(ddb dynamoAPI, tableName string) *FundingRequestDynamoRepository {
	return &FundingRequestDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *FundingRequestDynamoRepository) Create(ctx context.Context, f entities.FundingRequest) (entities.FundingRequest, error) {
	f.Version = 1
	if err := r.put(ctx, f, 0); err != nil {
		return entities.FundingRequest{}, err
	}
	return f, nil
}

func (r *FundingRequestDynamoRepository) Save(ctx context.Context, f entities.FundingRequest) (entities.FundingRequest, error) {
	expected := f.Version
	f.Version++
	if err := r.put(ctx, f, expected); err != nil {
		return entities.FundingRequest{}, err
	}
	return f, nil
}

func (r *FundingRequestDynamoRepository) put(ctx context.Context, f entities.FundingRequest, expected int64) error {
	av, err := attributevalue.MarshalMap(toFundingRequestItem(f))
	if err != nil {
		return err
	}
	return putVersioned(ctx, r.ddb, r.tableName, "id", av, expected)
}

func (r *FundingRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.FundingRequest, error) {
	item, err := getItem(ctx, r.ddb, r.tableName, "id", id, true)
	if err != nil {
		return entities.FundingRequest{}, err
	}
	if len(item) == 0 {
		return entities.FundingRequest{}, nil
	}
	var it fundingRequestItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.FundingRequest{}, err
	}
	return fromFundingRequestItem(it)
}

func toFundingRequestItem(f entities.FundingRequest) fundingRequestItem {
	return fundingRequestItem{
		ID:                    f.ID,
		Title:                 f.Title,
		Description:           f.Description,
		RequiredAmount:        f.RequiredAmount.String(),
		CurrentFunded:         f.CurrentFunded.String(),
		FunderID:              f.FunderID,
		Status:                string(f.Status),
		Deadline:              formatTime(f.Deadline),
		CommittedReturnAmount: f.CommittedReturnAmount.String(),
		InvestorAmounts:       formatDecimalMap(f.InvestorAmounts),
		ReturnDistributed:     f.ReturnDistributed,
		CreatedAt:             formatTime(f.CreatedAt),
		UpdatedAt:             formatTime(f.UpdatedAt),
		Version:               f.Version,
	}
}

func fromFundingRequestItem(it fundingRequestItem) (entities.FundingRequest, error) {
	var dr decimalReader
	out := entities.FundingRequest{
		ID:                    it.ID,
		Title:                 it.Title,
		Description:           it.Description,
		RequiredAmount:        dr.parse("required_amount", it.RequiredAmount),
		CurrentFunded:         dr.parse("current_funded", it.CurrentFunded),
		FunderID:              it.FunderID,
		Status:                entities.FundingRequestStatus(it.Status),
		Deadline:              parseTime(it.Deadline),
		CommittedReturnAmount: dr.parse("committed_return_amount", it.CommittedReturnAmount),
		InvestorAmounts:       dr.parseMap("investor_amounts", it.InvestorAmounts),
		ReturnDistributed:     it.ReturnDistributed,
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
		Version:               it.Version,
	}
	if dr.err != nil {
		return entities.FundingRequest{}, dr.err
	}
	return out, nil
}
