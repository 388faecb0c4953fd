package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nexus_settlement/internal/domain/entities"
	"nexus_settlement/internal/usecase/interfaces"
	"nexus_settlement/internal/usecase/settlement"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrFundingRequestNotFound     = errors.New("funding request not found")
	ErrInvalidFundingRequest      = errors.New("invalid funding request")
	ErrNotFundingRequestOwner     = errors.New("only the funder can modify this funding request")
	ErrFundingRequestNotOpen      = errors.New("funding request is not open")
	ErrFundingRequestNotFunded    = errors.New("funding request is not funded")
	ErrReturnsAlreadyDistributed  = errors.New("returns already distributed")
	ErrNoInvestors                = errors.New("funding request has no investors")
	ErrInvalidInvestmentAmount    = errors.New("wallet adjustment must be negative")
	ErrInvestmentExceedsRemaining = errors.New("investment exceeds remaining amount")
	ErrFunderCreditFailed         = errors.New("investment recorded but funder credit failed")
	// ErrConcurrentModification is returned when a version check fails at save.
	// Remote effects of the command were compensated; the caller may retry.
	ErrConcurrentModification = errors.New("concurrent modification, retry")
)

// DefaultMinRequiredAmount is the smallest RequiredAmount accepted by Create.
var DefaultMinRequiredAmount = decimal.NewFromInt(100)

type CreateFundingRequestInput struct {
	FunderID              string
	Title                 string
	Description           string
	RequiredAmount        decimal.Decimal
	CommittedReturnAmount decimal.Decimal
	Deadline              time.Time
}

// UpdateFundingRequestInput carries the fields to change; nil means unchanged.
type UpdateFundingRequestInput struct {
	Title                 *string
	Description           *string
	Deadline              *time.Time
	CommittedReturnAmount *decimal.Decimal
}

// IFundingRequestUseCase is the funding request ledger.
//
// Money rules:
//   - Invest debits the investor before anything is recorded.
//   - The funder receives the whole pool once, when the request becomes FUNDED.
//   - DistributeReturns pays principal plus pro-rata share of the committed return,
//     all or nothing.

type IFundingRequestUseCase interface {
	Create(ctx context.Context, in CreateFundingRequestInput) (entities.FundingRequest, error)
	Update(ctx context.Context, id, funderID string, in UpdateFundingRequestInput) (entities.FundingRequest, error)
	Invest(ctx context.Context, id, investorID string, walletAdjustment decimal.Decimal) (entities.FundingRequest, error)
	DistributeReturns(ctx context.Context, id string) (entities.FundingRequest, error)
	GetByID(ctx context.Context, id string) (entities.FundingRequestView, error)
	List(ctx context.Context) ([]entities.FundingRequestView, error)
	ListByFunder(ctx context.Context, funderID string) ([]entities.FundingRequestView, error)
}

type FundingRequestUseCase struct {
	repo      interfaces.IFundingRequestRepository
	views     interfaces.IFundingRequestViewRepository
	wallet    interfaces.IWalletLedger
	log       *zap.Logger
	minAmount decimal.Decimal
	now       func() time.Time
}

var _ IFundingRequestUseCase = (*FundingRequestUseCase)(nil)

func NewFundingRequestUseCase(repo interfaces.IFundingRequestRepository, views interfaces.IFundingRequestViewRepository, wallet interfaces.IWalletLedger, log *zap.Logger, minRequiredAmount decimal.Decimal) *FundingRequestUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	if !minRequiredAmount.IsPositive() {
		minRequiredAmount = DefaultMinRequiredAmount
	}
	return &FundingRequestUseCase{
		repo:      repo,
		views:     views,
		wallet:    wallet,
		log:       log,
		minAmount: minRequiredAmount,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *FundingRequestUseCase) Create(ctx context.Context, in CreateFundingRequestInput) (entities.FundingRequest, error) {
	now := u.now()
	in.FunderID = strings.TrimSpace(in.FunderID)
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	if err := requireNonBlank(ErrInvalidFundingRequest, map[string]string{
		"funderId":    in.FunderID,
		"title":       in.Title,
		"description": in.Description,
	}); err != nil {
		return entities.FundingRequest{}, err
	}
	if in.RequiredAmount.LessThan(u.minAmount) {
		return entities.FundingRequest{}, fmt.Errorf("%w: requiredAmount must be at least %s", ErrInvalidFundingRequest, u.minAmount.StringFixed(2))
	}
	if in.CommittedReturnAmount.IsNegative() {
		return entities.FundingRequest{}, fmt.Errorf("%w: committedReturnAmount must not be negative", ErrInvalidFundingRequest)
	}
	if !in.Deadline.After(now) {
		return entities.FundingRequest{}, fmt.Errorf("%w: deadline must be in the future", ErrInvalidFundingRequest)
	}

	f := entities.FundingRequest{
		ID:                    uuid.NewString(),
		Title:                 in.Title,
		Description:           in.Description,
		RequiredAmount:        in.RequiredAmount,
		CurrentFunded:         decimal.Zero,
		FunderID:              in.FunderID,
		Status:                entities.FundingRequestStatusOpen,
		Deadline:              in.Deadline.UTC(),
		CommittedReturnAmount: in.CommittedReturnAmount,
		InvestorAmounts:       map[string]decimal.Decimal{},
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	created, err := u.repo.Create(ctx, f)
	if err != nil {
		u.log.Error("[funding][usecase] create failed", zap.String("funder_id", in.FunderID), zap.Error(err))
		return entities.FundingRequest{}, err
	}
	u.log.Info("[funding][usecase] created", zap.String("id", created.ID), zap.String("funder_id", created.FunderID),
		zap.String("required_amount", created.RequiredAmount.StringFixed(2)))
	u.project(ctx, created)
	return created, nil
}

func (u *FundingRequestUseCase) Update(ctx context.Context, id, funderID string, in UpdateFundingRequestInput) (entities.FundingRequest, error) {
	f, err := u.load(ctx, id)
	if err != nil {
		return entities.FundingRequest{}, err
	}
	if f.FunderID != strings.TrimSpace(funderID) {
		u.log.Warn("[funding][usecase] update by non-owner", zap.String("id", id), zap.String("caller", funderID))
		return entities.FundingRequest{}, ErrNotFundingRequestOwner
	}
	if !f.IsOpen() {
		return entities.FundingRequest{}, ErrFundingRequestNotOpen
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return entities.FundingRequest{}, fmt.Errorf("%w: title must not be blank", ErrInvalidFundingRequest)
		}
		f.Title = title
	}
	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		if desc == "" {
			return entities.FundingRequest{}, fmt.Errorf("%w: description must not be blank", ErrInvalidFundingRequest)
		}
		f.Description = desc
	}
	if in.Deadline != nil {
		if !in.Deadline.After(u.now()) {
			return entities.FundingRequest{}, fmt.Errorf("%w: deadline must be in the future", ErrInvalidFundingRequest)
		}
		f.Deadline = in.Deadline.UTC()
	}
	if in.CommittedReturnAmount != nil {
		if in.CommittedReturnAmount.IsNegative() {
			return entities.FundingRequest{}, fmt.Errorf("%w: committedReturnAmount must not be negative", ErrInvalidFundingRequest)
		}
		f.CommittedReturnAmount = *in.CommittedReturnAmount
	}
	f.UpdatedAt = u.now()

	saved, err := u.repo.Save(ctx, f)
	if err != nil {
		return entities.FundingRequest{}, mapSaveError(err)
	}
	u.log.Info("[funding][usecase] updated", zap.String("id", id))
	u.project(ctx, saved)
	return saved, nil
}

// Invest records an investment. walletAdjustment is the signed change applied to
// the investor's wallet, so it must be negative.
func (u *FundingRequestUseCase) Invest(ctx context.Context, id, investorID string, walletAdjustment decimal.Decimal) (entities.FundingRequest, error) {
	investorID = strings.TrimSpace(investorID)
	if investorID == "" {
		return entities.FundingRequest{}, fmt.Errorf("%w: investor id is required", ErrInvalidFundingRequest)
	}
	f, err := u.load(ctx, id)
	if err != nil {
		return entities.FundingRequest{}, err
	}
	if !f.IsOpen() {
		return entities.FundingRequest{}, ErrFundingRequestNotOpen
	}
	if !walletAdjustment.IsNegative() {
		return entities.FundingRequest{}, ErrInvalidInvestmentAmount
	}
	amount := walletAdjustment.Neg()
	if amount.GreaterThan(f.RemainingAmount()) {
		return entities.FundingRequest{}, fmt.Errorf("%w: remaining %s", ErrInvestmentExceedsRemaining, f.RemainingAmount().StringFixed(2))
	}

	saga := settlement.New("invest:"+f.ID, u.log)
	debit := settlement.WalletStep(u.wallet, entities.WalletAdjustment{
		Account:          entities.InvestorAccount(investorID),
		Delta:            walletAdjustment,
		FundingRequestID: f.ID,
	})
	if err := saga.Run(ctx, debit); err != nil {
		u.log.Warn("[funding][usecase] investor debit failed", zap.String("id", f.ID), zap.String("investor_id", investorID), zap.Error(err))
		return entities.FundingRequest{}, err
	}

	funded := f.RecordInvestment(investorID, amount)
	f.UpdatedAt = u.now()
	saved, err := u.repo.Save(ctx, f)
	if err != nil {
		u.log.Warn("[funding][usecase] save after debit failed; refunding investor", zap.String("id", f.ID), zap.Error(err))
		_ = saga.Compensate(ctx)
		return entities.FundingRequest{}, mapSaveError(err)
	}
	u.log.Info("[funding][usecase] investment recorded", zap.String("id", saved.ID), zap.String("investor_id", investorID),
		zap.String("amount", amount.StringFixed(2)), zap.String("current_funded", saved.CurrentFunded.StringFixed(2)),
		zap.String("status", string(saved.Status)))
	u.project(ctx, saved)

	if funded {
		credit := entities.WalletAdjustment{
			Account:          entities.FunderAccount(saved.FunderID),
			Delta:            saved.CurrentFunded,
			FundingRequestID: saved.ID,
		}
		if err := u.wallet.Adjust(ctx, credit); err != nil {
			u.log.Error("[funding][usecase] funder credit failed; needs reconciliation", zap.String("id", saved.ID),
				zap.String("funder_id", saved.FunderID), zap.String("amount", saved.CurrentFunded.StringFixed(2)), zap.Error(err))
			return saved, fmt.Errorf("%w: %w", ErrFunderCreditFailed, err)
		}
		u.log.Info("[funding][usecase] funder credited", zap.String("id", saved.ID), zap.String("funder_id", saved.FunderID))
	}
	return saved, nil
}

func (u *FundingRequestUseCase) DistributeReturns(ctx context.Context, id string) (entities.FundingRequest, error) {
	f, err := u.load(ctx, id)
	if err != nil {
		return entities.FundingRequest{}, err
	}
	if !f.IsFunded() {
		return entities.FundingRequest{}, ErrFundingRequestNotFunded
	}
	if f.ReturnDistributed {
		return entities.FundingRequest{}, ErrReturnsAlreadyDistributed
	}
	if len(f.InvestorAmounts) == 0 || !f.CurrentFunded.IsPositive() {
		return entities.FundingRequest{}, ErrNoInvestors
	}

	totalPayout := f.CurrentFunded.Add(f.CommittedReturnAmount)
	steps := []settlement.Step{settlement.WalletStep(u.wallet, entities.WalletAdjustment{
		Account:          entities.FunderAccount(f.FunderID),
		Delta:            totalPayout.Neg(),
		FundingRequestID: f.ID,
	})}
	for _, adj := range ReturnPayouts(f) {
		steps = append(steps, settlement.WalletStep(u.wallet, adj))
	}

	saga := settlement.New("distribute:"+f.ID, u.log)
	if err := saga.Run(ctx, steps...); err != nil {
		u.log.Warn("[funding][usecase] distribution aborted", zap.String("id", f.ID), zap.Error(err))
		return entities.FundingRequest{}, err
	}

	f.ReturnDistributed = true
	f.UpdatedAt = u.now()
	saved, err := u.repo.Save(ctx, f)
	if err != nil {
		u.log.Warn("[funding][usecase] save after distribution failed; reversing", zap.String("id", f.ID), zap.Error(err))
		_ = saga.Compensate(ctx)
		return entities.FundingRequest{}, mapSaveError(err)
	}
	u.log.Info("[funding][usecase] returns distributed", zap.String("id", saved.ID),
		zap.String("total_payout", totalPayout.StringFixed(2)), zap.Int("investors", len(saved.InvestorAmounts)))
	u.project(ctx, saved)
	return saved, nil
}

// ReturnPayouts computes one credit per investor, in investor id order:
// principal plus principal/CurrentFunded of the committed return, rounded to
// cents. The last investor absorbs the rounding residue so the credits sum to
// CurrentFunded + CommittedReturnAmount exactly.
func ReturnPayouts(f entities.FundingRequest) []entities.WalletAdjustment {
	ids := f.InvestorIDs()
	total := f.CurrentFunded.Add(f.CommittedReturnAmount)
	out := make([]entities.WalletAdjustment, 0, len(ids))
	paid := decimal.Zero
	for i, id := range ids {
		principal := f.InvestorAmounts[id]
		share := principal.Add(principal.Mul(f.CommittedReturnAmount).Div(f.CurrentFunded)).Round(2)
		if i == len(ids)-1 {
			share = total.Sub(paid)
		}
		paid = paid.Add(share)
		out = append(out, entities.WalletAdjustment{
			Account:          entities.InvestorAccount(id),
			Delta:            share,
			FundingRequestID: f.ID,
		})
	}
	return out
}

func (u *FundingRequestUseCase) GetByID(ctx context.Context, id string) (entities.FundingRequestView, error) {
	v, err := u.views.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.FundingRequestView{}, err
	}
	if v.ID == "" {
		return entities.FundingRequestView{}, ErrFundingRequestNotFound
	}
	return v, nil
}

func (u *FundingRequestUseCase) List(ctx context.Context) ([]entities.FundingRequestView, error) {
	return u.views.List(ctx)
}

func (u *FundingRequestUseCase) ListByFunder(ctx context.Context, funderID string) ([]entities.FundingRequestView, error) {
	funderID = strings.TrimSpace(funderID)
	if funderID == "" {
		return nil, fmt.Errorf("%w: funder id is required", ErrInvalidFundingRequest)
	}
	return u.views.ListByFunderID(ctx, funderID)
}

func (u *FundingRequestUseCase) load(ctx context.Context, id string) (entities.FundingRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FundingRequest{}, ErrFundingRequestNotFound
	}
	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		u.log.Error("[funding][usecase] load failed", zap.String("id", id), zap.Error(err))
		return entities.FundingRequest{}, err
	}
	if f.ID == "" {
		return entities.FundingRequest{}, ErrFundingRequestNotFound
	}
	if f.InvestorAmounts == nil {
		f.InvestorAmounts = map[string]decimal.Decimal{}
	}
	return f, nil
}

// project rewrites the read view. A failure leaves the view stale but does not
// fail the command that already committed.
func (u *FundingRequestUseCase) project(ctx context.Context, f entities.FundingRequest) {
	if u.views == nil {
		return
	}
	if err := u.views.Upsert(ctx, entities.NewFundingRequestView(f)); err != nil {
		u.log.Warn("[funding][usecase] view projection failed", zap.String("id", f.ID), zap.Error(err))
	}
}
