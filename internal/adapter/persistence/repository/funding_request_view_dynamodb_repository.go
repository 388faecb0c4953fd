package repository

import (
	"context"
	"sort"

	"nexus_settlement/internal/domain/entities"
	"nexus_settlement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const fundingByFunderIndex = "funder_id-index"

type fundingRequestViewItem struct {
	ID                    string            `dynamodbav:"id"`
	Title                 string            `dynamodbav:"title"`
	Description           string            `dynamodbav:"description"`
	RequiredAmount        string            `dynamodbav:"required_amount"`
	CurrentFunded         string            `dynamodbav:"current_funded"`
	RemainingAmount       string            `dynamodbav:"remaining_amount"`
	FunderID              string            `dynamodbav:"funder_id"`
	Status                string            `dynamodbav:"status"`
	Deadline              string            `dynamodbav:"deadline"`
	CommittedReturnAmount string            `dynamodbav:"committed_return_amount"`
	InvestorAmounts       map[string]string `dynamodbav:"investor_amounts"`
	InvestorCount         int               `dynamodbav:"investor_count"`
	ReturnDistributed     bool              `dynamodbav:"return_distributed"`
	CreatedAt             string            `dynamodbav:"created_at"`
	UpdatedAt             string            `dynamodbav:"updated_at"`
	Version               int64             `dynamodbav:"version"`
}

// FundingRequestViewDynamoRepository stores the funding request read view.
//
// Table requirements:
//   - PK: id (string)
//   - GSI funder_id-index: funder_id (string)
//
// Upsert only replaces a stored view projected from an older version.

type FundingRequestViewDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IFundingRequestViewRepository = (*FundingRequestViewDynamoRepository)(nil)

func NewFundingRequestViewDynamoRepository(ddb dynamoAPI, tableName string) *FundingRequestViewDynamoRepository {
	return &FundingRequestViewDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *FundingRequestViewDynamoRepository) Upsert(ctx context.Context, v entities.FundingRequestView) error {
	av, err := attributevalue.MarshalMap(toFundingRequestViewItem(v))
	if err != nil {
		return err
	}
	return putIfNewer(ctx, r.ddb, r.tableName, "id", av, v.Version)
}

func (r *FundingRequestViewDynamoRepository) GetByID(ctx context.Context, id string) (entities.FundingRequestView, error) {
	item, err := getItem(ctx, r.ddb, r.tableName, "id", id, false)
	if err != nil {
		return entities.FundingRequestView{}, err
	}
	if len(item) == 0 {
		return entities.FundingRequestView{}, nil
	}
	var it fundingRequestViewItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.FundingRequestView{}, err
	}
	return fromFundingRequestViewItem(it)
}

func (r *FundingRequestViewDynamoRepository) List(ctx context.Context) ([]entities.FundingRequestView, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return decodeFundingRequestViews(items)
}

func (r *FundingRequestViewDynamoRepository) ListByFunderID(ctx context.Context, funderID string) ([]entities.FundingRequestView, error) {
	items, err := queryIndex(ctx, r.ddb, r.tableName, fundingByFunderIndex, "funder_id", funderID)
	if err != nil {
		return nil, err
	}
	return decodeFundingRequestViews(items)
}

// decodeFundingRequestViews returns newest first.
func decodeFundingRequestViews(items []map[string]types.AttributeValue) ([]entities.FundingRequestView, error) {
	var its []fundingRequestViewItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	out := make([]entities.FundingRequestView, 0, len(its))
	for _, it := range its {
		v, err := fromFundingRequestViewItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func toFundingRequestViewItem(v entities.FundingRequestView) fundingRequestViewItem {
	return fundingRequestViewItem{
		ID:                    v.ID,
		Title:                 v.Title,
		Description:           v.Description,
		RequiredAmount:        v.RequiredAmount.String(),
		CurrentFunded:         v.CurrentFunded.String(),
		RemainingAmount:       v.RemainingAmount.String(),
		FunderID:              v.FunderID,
		Status:                string(v.Status),
		Deadline:              formatTime(v.Deadline),
		CommittedReturnAmount: v.CommittedReturnAmount.String(),
		InvestorAmounts:       formatDecimalMap(v.InvestorAmounts),
		InvestorCount:         v.InvestorCount,
		ReturnDistributed:     v.ReturnDistributed,
		CreatedAt:             formatTime(v.CreatedAt),
		UpdatedAt:             formatTime(v.UpdatedAt),
		Version:               v.Version,
	}
}

func fromFundingRequestViewItem(it fundingRequestViewItem) (entities.FundingRequestView, error) {
	var dr decimalReader
	out := entities.FundingRequestView{
		ID:                    it.ID,
		Title:                 it.Title,
		Description:           it.Description,
		RequiredAmount:        dr.parse("required_amount", it.RequiredAmount),
		CurrentFunded:         dr.parse("current_funded", it.CurrentFunded),
		RemainingAmount:       dr.parse("remaining_amount", it.RemainingAmount),
		FunderID:              it.FunderID,
		Status:                entities.FundingRequestStatus(it.Status),
		Deadline:              parseTime(it.Deadline),
		CommittedReturnAmount: dr.parse("committed_return_amount", it.CommittedReturnAmount),
		InvestorAmounts:       dr.parseMap("investor_amounts", it.InvestorAmounts),
		InvestorCount:         it.InvestorCount,
		ReturnDistributed:     it.ReturnDistributed,
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
		Version:               it.Version,
	}
	if dr.err != nil {
		return entities.FundingRequestView{}, dr.err
	}
	return out, nil
}
