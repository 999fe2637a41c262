package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"loantrack/internal/adapter/middleware"
	loanDomain "loantrack/internal/domain/loan"
	"loantrack/internal/domain/user"
	loanuc "loantrack/internal/usecase/loan"
	"loantrack/pkg/finance"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loanuc.Usecase }

func NewLoanHandler(uc *loanuc.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type applyReq struct {
	Name   string  `form:"name" validate:"required"`
	Phone  string  `form:"phone" validate:"required"`
	Amount float64 `form:"amount" validate:"required,gt=0,dec2"`
}

// Apply originates a loan and answers with the confirmation fragment the
// borrower dials from: repayment figure, deadline and the two USSD links.
func (h *LoanHandler) Apply(c echo.Context) error {
	var req applyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Apply(c.Request().Context(), loanuc.ApplyInput{
		Name: req.Name, Phone: req.Phone, Amount: req.Amount,
	})
	if err != nil {
		if errors.Is(err, finance.ErrPrincipalTooLarge) {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "validation failed",
				Details: []FieldError{{Field: "Amount", Message: "exceeds the repayment target"}},
			})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	fragment := fmt.Sprintf(
		"Loan applied.<br>\n"+
			"Total repay (7 days): UGX %v<br>\n"+
			"Due date: %s<br>\n"+
			"<a href='%s'>DISBURSE</a> | <a href='%s'>REPAY</a>",
		dto.Total, dto.DueDate.Format("2006-01-02 15:04"), dto.DisburseLink, dto.RepayLink,
	)
	return c.HTML(http.StatusOK, fragment)
}

func (h *LoanHandler) Assign(c echo.Context) error {
	loanID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.String(http.StatusBadRequest, "bad loan id")
	}
	collector := c.Param("collector")

	if err := h.uc.Assign(c.Request().Context(), loanID, collector); err != nil {
		if errors.Is(err, loanDomain.ErrNotFound) {
			return c.String(http.StatusNotFound, "loan not found")
		}
		return err
	}
	return c.Redirect(http.StatusFound, "/admin")
}

func (h *LoanHandler) MarkPaid(c echo.Context) error {
	loanID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.String(http.StatusBadRequest, "bad loan id")
	}

	if _, err := h.uc.MarkPaid(c.Request().Context(), loanID, time.Now().UTC()); err != nil {
		if errors.Is(err, loanDomain.ErrNotFound) {
			return c.String(http.StatusNotFound, "loan not found")
		}
		return err
	}

	target := c.Request().Referer()
	if target == "" {
		target = "/"
		if sess := middleware.SessionFromContext(c); sess != nil {
			target = homeFor(sess.Role)
		}
	}
	return c.Redirect(http.StatusFound, target)
}

type adminPage struct {
	Username string
	Loans    []loanuc.LoanDTO
	Profit   float64
}

func (h *LoanHandler) AdminBoard(c echo.Context) error {
	board, err := h.uc.AdminBoard(c.Request().Context())
	if err != nil {
		return err
	}
	page := adminPage{Loans: board.Loans, Profit: board.Profit}
	if sess := middleware.SessionFromContext(c); sess != nil {
		page.Username = sess.Username
	}
	return c.Render(http.StatusOK, "admin.html", page)
}

type collectorPage struct {
	Username string
	Loans    []loanuc.LoanDTO
}

func (h *LoanHandler) CollectorBoard(c echo.Context) error {
	sess := middleware.SessionFromContext(c)
	if sess == nil || sess.Role != user.RoleCollector {
		return c.Redirect(http.StatusFound, "/")
	}
	loans, err := h.uc.CollectorBoard(c.Request().Context(), sess.Username)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "collector.html", collectorPage{Username: sess.Username, Loans: loans})
}
