package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nexus_settlement/internal/adapter/http/handlers/mocks"
	"nexus_settlement/internal/domain/entities"
	"nexus_settlement/internal/usecase"
	"nexus_settlement/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newFundingRouter(t *testing.T) (*gin.Engine, *mocks.MockIFundingRequestUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIFundingRequestUseCase(ctrl)
	h := NewFundingRequestHandler(uc)

	r := gin.New()
	g := r.Group("/api/v1/funding-requests")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/mine", h.ListMine)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.POST("/:id/investment", h.Invest)
	g.POST("/:id/distribute-returns", h.DistributeReturns)
	return r, uc
}

func doRequest(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleFundingRequest() entities.FundingRequest {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	return entities.FundingRequest{
		ID:                    "fr-1",
		Title:                 "Harvest inputs",
		Description:           "Seeds and fertilizer",
		RequiredAmount:        decimal.RequireFromString("1000"),
		CurrentFunded:         decimal.Zero,
		FunderID:              "funder-1",
		Status:                entities.FundingRequestStatusOpen,
		Deadline:              now.Add(30 * 24 * time.Hour),
		CommittedReturnAmount: decimal.RequireFromString("200"),
		InvestorAmounts:       map[string]decimal.Decimal{},
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func TestFundingRequestHandler_Create(t *testing.T) {
	body := `{"title":"Harvest inputs","description":"Seeds and fertilizer","requiredAmount":"1000","committedReturnAmount":200,"deadline":"2030-01-01T00:00:00Z"}`

	t.Run("missing user header", func(t *testing.T) {
		r, _ := newFundingRouter(t)
		w := doRequest(r, http.MethodPost, "/api/v1/funding-requests", body, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decodeError(t, w.Body.Bytes()).Code; got != "MISSING_USER_ID" {
			t.Fatalf("expected MISSING_USER_ID, got %s", got)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newFundingRouter(t)
		w := doRequest(r, http.MethodPost, "/api/v1/funding-requests", "{", map[string]string{HeaderUserID: "funder-1"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation details", func(t *testing.T) {
		r, _ := newFundingRouter(t)
		w := doRequest(r, http.MethodPost, "/api/v1/funding-requests",
			`{"title":"x","description":"y","requiredAmount":"0","committedReturnAmount":"0","deadline":"2030-01-01T00:00:00Z"}`,
			map[string]string{HeaderUserID: "funder-1"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		res := decodeError(t, w.Body.Bytes())
		if len(res.Details) != 1 || res.Details[0].Field != "requiredAmount" {
			t.Fatalf("expected requiredAmount detail, got %+v", res.Details)
		}
	})

	t.Run("below minimum is mapped to 400", func(t *testing.T) {
		r, uc := newFundingRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.FundingRequest{}, fmt.Errorf("%w: requiredAmount must be at least 100.00", usecase.ErrInvalidFundingRequest))

		w := doRequest(r, http.MethodPost, "/api/v1/funding-requests", body, map[string]string{HeaderUserID: "funder-1"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newFundingRouter(t)
		fr := sampleFundingRequest()
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateFundingRequestInput) (entities.FundingRequest, error) {
				if in.FunderID != "funder-1" || !in.RequiredAmount.Equal(decimal.NewFromInt(1000)) || !in.CommittedReturnAmount.Equal(decimal.NewFromInt(200)) {
					t.Errorf("unexpected input: %+v", in)
				}
				return fr, nil
			})

		w := doRequest(r, http.MethodPost, "/api/v1/funding-requests", body, map[string]string{HeaderUserID: "funder-1"})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["id"] != "fr-1" || res["status"] != "OPEN" || res["remainingAmount"] != "1000" {
			t.Fatalf("unexpected body: %v", res)
		}
	})
}

func TestFundingRequestHandler_Update(t *testing.T) {
	t.Run("not owner", func(t *testing.T) {
		r, uc := newFundingRouter(t)
		uc.EXPECT().Update(gomock.Any(), "fr-1", "intruder", gomock.Any()).Return(entities.FundingRequest{}, usecase.ErrNotFundingRequestOwner)

		w := doRequest(r, http.MethodPut, "/api/v1/funding-requests/fr-1", `{"title":"new"}`, map[string]string{HeaderUserID: "intruder"})
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("not open", func(t *testing.T) {
		r, uc := newFundingRouter(t)
		uc.EXPECT().Update(gomock.Any(), "fr-1", "funder-1", gomock.Any()).Return(entities.FundingRequest{}, usecase.ErrFundingRequestNotOpen)

		w := doRequest(r, http.MethodPut, "/api/v1/funding-requests/fr-1", `{"title":"new"}`, map[string]string{HeaderUserID: "funder-1"})
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("partial fields forwarded", func(t *testing.T) {
		r, uc := newFundingRouter(t)
		fr := sampleFundingRequest()
		uc.EXPECT().Update(gomock.Any(), "fr-1", "funder-1", gomock.Any()).DoAndReturn(
			func(_ any, _, _ string, in usecase.UpdateFundingRequestInput) (entities.FundingRequest, error) {
				if in.Title == nil || *in.Title != "new" {
					t.Errorf("expected title, got %+v", in.Title)
				}
				if in.Description != nil || in.Deadline != nil || in.CommittedReturnAmount != nil {
					t.Errorf("expected only title set, got %+v", in)
				}
				fr.Title = "new"
				return fr, nil
			})

		w := doRequest(r, http.MethodPut, "/api/v1/funding-requests/fr-1", `{"title":"new"}`, map[string]string{HeaderUserID: "funder-1"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestFundingRequestHandler_Invest(t *testing.T) {
	t.Run("body investor is never trusted without the header", func(t *testing.T) {
		r, uc := newFundingRouter(t)
		uc.EXPECT().Invest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := doRequest(r, http.MethodPost, "/api/v1/funding-requests/fr-1/investment",
			`{"investorId":"victim-investor","walletAdjustment":"-100"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decodeError(t, w.Body.Bytes()).Code; got != "MISSING_USER_ID" {
			t.Fatalf("expected MISSING_USER_ID, got %s", got)
		}
	})

	t.Run("body investor is ignored when the header is present", func(t *testing.T) {
		r, uc := newFundingRouter(t)
		uc.EXPECT().Invest(gomock.Any(), "fr-1", "inv-a", gomock.Any()).Return(sampleFundingRequest(), nil)

		w := doRequest(r, http.MethodPost, "/api/v1/funding-requests/fr-1/investment",
			`{"investorId":"victim-investor","walletAdjustment":-600}`, map[string]string{HeaderUserID: "inv-a"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"positive adjustment", usecase.ErrInvalidInvestmentAmount, http.StatusBadRequest, "INVALID_REQUEST"},
		{"exceeds remaining", usecase.ErrInvestmentExceedsRemaining, http.StatusBadRequest, "INVALID_REQUEST"},
		{"not open", usecase.ErrFundingRequestNotOpen, http.StatusConflict, "FUNDING_REQUEST_NOT_OPEN"},
		{"not found", usecase.ErrFundingRequestNotFound, http.StatusNotFound, "FUNDING_REQUEST_NOT_FOUND"},
		{"insufficient funds", fmt.Errorf("%w: insufficient balance", interfaces.ErrWalletRejected), http.StatusBadRequest, "WALLET_REJECTED"},
		{"wallet down", interfaces.ErrUpstreamUnavailable, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE"},
		{"version conflict", fmt.Errorf("%w: %w", usecase.ErrConcurrentModification, interfaces.ErrVersionConflict), http.StatusConflict, "CONCURRENT_MODIFICATION"},
		{"funder credit failed", fmt.Errorf("%w: %w", usecase.ErrFunderCreditFailed, interfaces.ErrWalletRejected), http.StatusBadGateway, "FUNDER_CREDIT_FAILED"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newFundingRouter(t)
			uc.EXPECT().Invest(gomock.Any(), "fr-1", "inv-a", gomock.Any()).Return(entities.FundingRequest{}, tc.err)

			w := doRequest(r, http.MethodPost, "/api/v1/funding-requests/fr-1/investment", `{"walletAdjustment":"-100"}`, map[string]string{HeaderUserID: "inv-a"})
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if got := decodeError(t, w.Body.Bytes()).Code; got != tc.code {
				t.Fatalf("expected %s, got %s", tc.code, got)
			}
		})
	}
}

func TestFundingRequestHandler_DistributeReturns(t *testing.T) {
	t.Run("wallet rejection carries reason", func(t *testing.T) {
		r, uc := newFundingRouter(t)
		uc.EXPECT().DistributeReturns(gomock.Any(), "fr-1").
			Return(entities.FundingRequest{}, fmt.Errorf("credit investor:inv-b: %w: account frozen", interfaces.ErrWalletRejected))

		w := doRequest(r, http.MethodPost, "/api/v1/funding-requests/fr-1/distribute-returns", "", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if msg := decodeError(t, w.Body.Bytes()).Message; !bytes.Contains([]byte(msg), []byte("account frozen")) {
			t.Fatalf("expected upstream reason in message, got %q", msg)
		}
	})

	t.Run("already distributed", func(t *testing.T) {
		r, uc := newFundingRouter(t)
		uc.EXPECT().DistributeReturns(gomock.Any(), "fr-1").Return(entities.FundingRequest{}, usecase.ErrReturnsAlreadyDistributed)

		w := doRequest(r, http.MethodPost, "/api/v1/funding-requests/fr-1/distribute-returns", "", nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newFundingRouter(t)
		fr := sampleFundingRequest()
		fr.Status = entities.FundingRequestStatusFunded
		fr.ReturnDistributed = true
		uc.EXPECT().DistributeReturns(gomock.Any(), "fr-1").Return(fr, nil)

		w := doRequest(r, http.MethodPost, "/api/v1/funding-requests/fr-1/distribute-returns", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["returnDistributed"] != true {
			t.Fatalf("expected returnDistributed true, got %v", res["returnDistributed"])
		}
	})
}

func TestFundingRequestHandler_Queries(t *testing.T) {
	view := entities.NewFundingRequestView(sampleFundingRequest())

	t.Run("get by id", func(t *testing.T) {
		r, uc := newFundingRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "fr-1").Return(view, nil)

		w := doRequest(r, http.MethodGet, "/api/v1/funding-requests/fr-1", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get by id not found", func(t *testing.T) {
		r, uc := newFundingRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.FundingRequestView{}, usecase.ErrFundingRequestNotFound)

		w := doRequest(r, http.MethodGet, "/api/v1/funding-requests/missing", "", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		r, uc := newFundingRouter(t)
		uc.EXPECT().List(gomock.Any()).Return([]entities.FundingRequestView{view, view}, nil)

		w := doRequest(r, http.MethodGet, "/api/v1/funding-requests", "", nil)
		var res []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if w.Code != http.StatusOK || len(res) != 2 {
			t.Fatalf("expected 200 with 2 items, got %d %v", w.Code, res)
		}
	})

	t.Run("mine routes before id", func(t *testing.T) {
		r, uc := newFundingRouter(t)
		uc.EXPECT().ListByFunder(gomock.Any(), "funder-1").Return(nil, nil)

		w := doRequest(r, http.MethodGet, "/api/v1/funding-requests/mine", "", map[string]string{HeaderUserID: "funder-1"})
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 [], got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("list failure is internal", func(t *testing.T) {
		r, uc := newFundingRouter(t)
		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("dynamo down"))

		w := doRequest(r, http.MethodGet, "/api/v1/funding-requests", "", nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
