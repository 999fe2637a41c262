package http

import (
	"context"
	"encoding/csv"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	loanDomain "loantrack/internal/domain/loan"
	"loantrack/internal/testutil/loanmock"
	"loantrack/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

func TestDownload_CSVAttachment(t *testing.T) {
	e := echo.New()
	created := time.Now().UTC().Add(-20 * 24 * time.Hour) // long overdue
	repo := &loanmock.Repo{
		ListAllFn: func(ctx context.Context) ([]loanDomain.Loan, error) {
			return []loanDomain.Loan{
				{ID: 1, Name: "Okello", Phone: "0756000001", Amount: 50000, Interest: 1400,
					Fees: 8600, LateFee: 2500, Total: 62500, Status: loanDomain.StatusPaid,
					AssignedCollector: "alice", CreatedAt: created},
				{ID: 2, Name: "Apio", Phone: "0756000002", Amount: 10000, Interest: 280,
					Fees: 49720, Total: 60000, Status: loanDomain.StatusPending, CreatedAt: created},
			}, nil
		},
	}
	h := NewReportHandler(report.NewUsecase(repo))

	req := httptest.NewRequest(stdhttp.MethodGet, "/download_financials", nil)
	rec := httptest.NewRecorder()
	if err := h.Download(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Download error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("content type = %q", ct)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "financial_statements.csv") {
		t.Fatalf("content disposition = %q", cd)
	}

	records, err := csv.NewReader(rec.Body).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want header + 2 rows", len(records))
	}
	wantHeader := "Loan ID,Name,Phone,Principal,Interest,Fees,Late Fees,Total,Tax,Net Profit,Status,Collector"
	if got := strings.Join(records[0], ","); got != wantHeader {
		t.Fatalf("header = %q", got)
	}

	// Paid loan keeps its recorded late fee; pending overdue loan accrues.
	if records[1][6] != "2500" {
		t.Fatalf("paid late fee = %q", records[1][6])
	}
	if records[2][6] == "0" {
		t.Fatalf("pending overdue late fee = %q, want accrued", records[2][6])
	}
	if records[1][11] != "alice" || records[2][11] != "" {
		t.Fatalf("collector columns = %q / %q", records[1][11], records[2][11])
	}
}
