package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/daehokimm/point-service/internal/config"
	"github.com/daehokimm/point-service/internal/models"
	"github.com/daehokimm/point-service/internal/point"
	"github.com/daehokimm/point-service/internal/repository/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := point.NewService(memory.NewBalances(), memory.NewHistories(), log)
	srv := httptest.NewServer(NewRouter(config.Config{RateRPS: 0}, svc, log))
	t.Cleanup(srv.Close)
	return srv
}

func patchJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPatch, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return v
}

func TestRouter_ChargeUseAndRead(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	resp := patchJSON(t, srv.URL+"/point/1/charge", `{"amount": 5000}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("charge status = %d, want 200", resp.StatusCode)
	}
	b := decode[models.PointBalance](t, resp)
	if b.AccountID != 1 || b.Amount != 5_000 {
		t.Fatalf("charge response = %+v", b)
	}

	resp = patchJSON(t, srv.URL+"/point/1/use", `{"amount": 2000}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("use status = %d, want 200", resp.StatusCode)
	}
	if b = decode[models.PointBalance](t, resp); b.Amount != 3_000 {
		t.Fatalf("balance after use = %d, want 3000", b.Amount)
	}

	getResp, err := http.Get(srv.URL + "/point/1")
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d, want 200", getResp.StatusCode)
	}
	if b = decode[models.PointBalance](t, getResp); b.Amount != 3_000 {
		t.Fatalf("read balance = %d, want 3000", b.Amount)
	}

	histResp, err := http.Get(srv.URL + "/point/1/histories")
	if err != nil {
		t.Fatalf("get histories: %v", err)
	}
	hs := decode[[]models.PointHistory](t, histResp)
	if len(hs) != 2 {
		t.Fatalf("history length = %d, want 2", len(hs))
	}
	if hs[0].Type != models.TxnCharge || hs[1].Type != models.TxnUse {
		t.Fatalf("history order wrong: %+v", hs)
	}
}

func TestRouter_ErrorMapping(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{name: "invalid_amount", path: "/point/1/charge", body: `{"amount": 1234}`, wantStatus: http.StatusBadRequest, wantCode: "invalid_amount"},
		{name: "insufficient_balance", path: "/point/1/use", body: `{"amount": 100000}`, wantStatus: http.StatusConflict, wantCode: "insufficient_balance"},
		{name: "malformed_body", path: "/point/1/charge", body: `{`, wantStatus: http.StatusBadRequest, wantCode: "bad_request"},
		{name: "bad_account_id", path: "/point/abc/charge", body: `{"amount": 1000}`, wantStatus: http.StatusBadRequest, wantCode: "bad_request"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			resp := patchJSON(t, srv.URL+tt.path, tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var apiErr struct {
				Code string `json:"code"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			resp.Body.Close()
			if apiErr.Code != tt.wantCode {
				t.Fatalf("code = %q, want %q", apiErr.Code, tt.wantCode)
			}
		})
	}
}

func TestRouter_BalanceLimitExceeded(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	// Charge up near the ceiling, then push past it.
	for i := 0; i < 9; i++ {
		resp := patchJSON(t, srv.URL+"/point/1/charge", `{"amount": 1000000}`)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("setup charge %d status = %d", i, resp.StatusCode)
		}
	}
	resp := patchJSON(t, srv.URL+"/point/1/charge", `{"amount": 1000000}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("charge to ceiling status = %d, want 200", resp.StatusCode)
	}

	resp = patchJSON(t, srv.URL+"/point/1/charge", `{"amount": 1000}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
