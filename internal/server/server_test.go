// internal/server/server_test.go
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/tamzrod/ook-gateway/internal/config"
	"github.com/tamzrod/ook-gateway/internal/ook"
)

// ---- fake transmitter ----

type fakeTransmitter struct {
	plans []ook.Plan
	err   error
}

func (f *fakeTransmitter) Transmit(plan ook.Plan) (ook.Result, error) {
	f.plans = append(f.plans, plan)
	if f.err != nil {
		return ook.Result{}, f.err
	}
	return ook.Result{Elapsed: 12, RepeatsDone: plan.Repeats()}, nil
}

func newTestServer(fake *fakeTransmitter) *Server {
	return New(config.GatewayConfig{
		Listen:         ":8087",
		TxGpio:         18,
		DefaultRepeats: 4,
	}, fake)
}

// ---- tests ----

func TestPicode_GetQuery(t *testing.T) {
	fake := &fakeTransmitter{}
	srv := newTestServer(fake)

	code := url.QueryEscape("c:0101;p:300,900@")
	req := httptest.NewRequest(http.MethodGet, "/picode?picode="+code, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "12 ms OK") {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
	if len(fake.plans) != 1 {
		t.Fatalf("expected 1 transmission, got %d", len(fake.plans))
	}
	if fake.plans[0].Pin() != 18 {
		t.Fatalf("expected pin 18, got %d", fake.plans[0].Pin())
	}
	if fake.plans[0].Repeats() != 4 {
		t.Fatalf("expected default repeats 4, got %d", fake.plans[0].Repeats())
	}
}

func TestPicode_PathForm(t *testing.T) {
	fake := &fakeTransmitter{}
	srv := newTestServer(fake)

	req := httptest.NewRequest(http.MethodGet, "/picode/c:0101;p:300,900;r:2@", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if fake.plans[0].Repeats() != 2 {
		t.Fatalf("expected r:2 to win over default, got %d", fake.plans[0].Repeats())
	}
}

func TestPicode_PostForm(t *testing.T) {
	fake := &fakeTransmitter{}
	srv := newTestServer(fake)

	form := url.Values{"picode": {"c:0101;p:300,900@"}}
	req := httptest.NewRequest(http.MethodPost, "/picode", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPicode_MissingData(t *testing.T) {
	srv := newTestServer(&fakeTransmitter{})

	req := httptest.NewRequest(http.MethodGet, "/picode", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPicode_ParseFailure(t *testing.T) {
	fake := &fakeTransmitter{}
	srv := newTestServer(fake)

	req := httptest.NewRequest(http.MethodGet, "/picode/garbage", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if len(fake.plans) != 0 {
		t.Fatalf("nothing must be transmitted on parse failure")
	}
}

func TestPicode_TransmitFailure(t *testing.T) {
	fake := &fakeTransmitter{err: errors.New("gpio gone")}
	srv := newTestServer(fake)

	req := httptest.NewRequest(http.MethodGet, "/picode/c:0101;p:300,900@", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusFailedDependency {
		t.Fatalf("expected 424, got %d", rec.Code)
	}
}

func TestStatus_CountsTransmissions(t *testing.T) {
	fake := &fakeTransmitter{}
	srv := newTestServer(fake)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/picode/c:0101;p:300,900@", nil)
		srv.ServeHTTP(httptest.NewRecorder(), req)
	}

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var status struct {
		TxCount int    `json:"tx_count"`
		LastTx  string `json:"last_tx"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("bad status JSON: %v", err)
	}
	if status.TxCount != 3 {
		t.Fatalf("expected tx_count 3, got %d", status.TxCount)
	}
	if status.LastTx == "never" {
		t.Fatalf("expected last_tx to be set")
	}
}

func TestConfig_Endpoint(t *testing.T) {
	srv := newTestServer(&fakeTransmitter{})

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var cfg struct {
		TxGpio int `json:"tx_gpio"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &cfg); err != nil {
		t.Fatalf("bad config JSON: %v", err)
	}
	if cfg.TxGpio != 18 {
		t.Fatalf("expected tx_gpio 18, got %d", cfg.TxGpio)
	}
}
