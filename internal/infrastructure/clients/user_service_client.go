package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"nexus_settlement/internal/domain/entities"
	"nexus_settlement/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type walletAdjustmentRequest struct {
	WalletAdjustment  json.Number `json:"walletAdjustment"`
	FundingRequestIDs []string    `json:"fundingRequestIds,omitempty"`
}

type userBatchRequest struct {
	UserIDs []string `json:"userIds"`
}

type userBatchResponse struct {
	Data []struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"data"`
}

// UserServiceClient talks to the user service, which owns wallet balances and contact data.
//
// Endpoints:
//   - PUT  {base}/api/v1/users/{id}    {walletAdjustment, fundingRequestIds}
//   - POST {base}/api/v1/users/batch   {userIds} -> {data: [{id, email}]}

type UserServiceClient struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

var (
	_ interfaces.IWalletLedger  = (*UserServiceClient)(nil)
	_ interfaces.IUserDirectory = (*UserServiceClient)(nil)
)

func NewUserServiceClient(baseURL string, timeout time.Duration, log *zap.Logger) *UserServiceClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserServiceClient{baseURL: baseURL, http: newHTTPClient(timeout), log: log}
}

// Adjust applies a signed balance change. Zero is a no-op; failures are never retried.
func (c *UserServiceClient) Adjust(ctx context.Context, adj entities.WalletAdjustment) error {
	if adj.Delta.IsZero() {
		return nil
	}
	payload := walletAdjustmentRequest{WalletAdjustment: json.Number(adj.Delta.String())}
	if adj.FundingRequestID != "" {
		payload.FundingRequestIDs = []string{adj.FundingRequestID}
	}

	endpoint := c.baseURL + "/api/v1/users/" + url.PathEscape(adj.Account.ID)
	start := time.Now()
	status, body, err := doJSON(ctx, c.http, http.MethodPut, endpoint, payload)
	fields := []zap.Field{
		zap.String("account_id", adj.Account.ID),
		zap.String("role", string(adj.Account.Role)),
		zap.String("delta", adj.Delta.String()),
		zap.Int("status", status),
		zap.Duration("latency", time.Since(start)),
	}
	if err != nil {
		c.log.Error("[wallet][client] adjust transport failure", append(fields, zap.Error(err))...)
		return err
	}

	switch {
	case status >= 500:
		c.log.Error("[wallet][client] adjust upstream error", fields...)
		return fmt.Errorf("%w: user service HTTP %d", interfaces.ErrUpstreamUnavailable, status)
	case status >= 400:
		r := reason(status, body)
		c.log.Warn("[wallet][client] adjust rejected", append(fields, zap.String("reason", r))...)
		return fmt.Errorf("%w: %s", interfaces.ErrWalletRejected, r)
	}

	var re remoteError
	if err := json.Unmarshal(body, &re); err == nil && re.Success != nil && !*re.Success {
		r := reason(status, body)
		c.log.Warn("[wallet][client] adjust rejected", append(fields, zap.String("reason", r))...)
		return fmt.Errorf("%w: %s", interfaces.ErrWalletRejected, r)
	}
	c.log.Info("[wallet][client] adjusted", fields...)
	return nil
}

func (c *UserServiceClient) GetContacts(ctx context.Context, userIDs []string) ([]entities.UserContact, error) {
	status, body, err := doJSON(ctx, c.http, http.MethodPost, c.baseURL+"/api/v1/users/batch", userBatchRequest{UserIDs: userIDs})
	if err != nil {
		return nil, err
	}
	if status >= 500 {
		return nil, fmt.Errorf("%w: user service HTTP %d", interfaces.ErrUpstreamUnavailable, status)
	}
	if status >= 400 {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrUpstreamRejected, reason(status, body))
	}

	var out userBatchResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decode batch response: %v", interfaces.ErrUpstreamUnavailable, err)
	}
	contacts := make([]entities.UserContact, 0, len(out.Data))
	for _, u := range out.Data {
		contacts = append(contacts, entities.UserContact{ID: u.ID, Email: u.Email})
	}
	return contacts, nil
}
