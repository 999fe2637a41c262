package http

import (
	"encoding/csv"
	"net/http"
	"time"

	"loantrack/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

const reportFilename = "financial_statements.csv"

type ReportHandler struct{ uc *report.Usecase }

func NewReportHandler(uc *report.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

// Download streams the financial export as a CSV attachment.
func (h *ReportHandler) Download(c echo.Context) error {
	rows, err := h.uc.FinancialRows(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return err
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition, "attachment;filename="+reportFilename)
	res.WriteHeader(http.StatusOK)

	w := csv.NewWriter(res)
	if err := w.Write(report.Header()); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row.Record()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
