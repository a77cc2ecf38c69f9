// Package dashboard serves the summary page for the signed-in account's active business.
package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/hustler-ledger/ledger-server/internal/handlers/v1/envelope"
	"github.com/hustler-ledger/ledger-server/internal/handlers/v1/transaction"
	"github.com/hustler-ledger/ledger-server/internal/logging"
	"github.com/hustler-ledger/ledger-server/internal/service"
)

type gateway interface {
	RequireBusiness(ctx context.Context) (*service.Account, *service.Business, error)
	Dashboard(ctx context.Context, account service.Account, business service.Business, r service.TimeRange) service.Dashboard
}

type Metrics struct {
	Revenue     string `json:"revenue"`
	Expenses    string `json:"expenses"`
	NetProfit   string `json:"net_profit"`
	CreditGiven string `json:"credit_given"`
	TotalDebt   string `json:"total_debt"`
}

type CategoryTotal struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

type Debt struct {
	ID          string `json:"id"`
	Customer    string `json:"customer"`
	Amount      string `json:"amount"`
	DueDate     string `json:"due_date"`
	DaysOverdue int    `json:"days_overdue" doc:"Negative while not yet due"`
}

type Budget struct {
	Category    string `json:"category"`
	Limit       string `json:"limit"`
	Spent       string `json:"spent"`
	Remaining   string `json:"remaining"`
	PercentUsed string `json:"percent_used"`
}

type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type" enum:"info,success,warning,error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
}

// Data is the dashboard response body. Metrics and the expense breakdown cover the whole range,
// transactions only the most recent entries.
type Data struct {
	Range               string                    `json:"range"`
	Metrics             Metrics                   `json:"metrics"`
	ExpenseBreakdown    []CategoryTotal           `json:"expense_breakdown" doc:"Expense totals per category, largest first"`
	Transactions        []transaction.Transaction `json:"transactions"`
	Debts               []Debt                    `json:"debts"`
	Budgets             []Budget                  `json:"budgets"`
	Notifications       []Notification            `json:"notifications"`
	UnreadNotifications int                       `json:"unread_notifications"`
}

func fromService(d service.Dashboard) Data {
	data := Data{
		Range: string(d.Range),
		Metrics: Metrics{
			Revenue:     d.Metrics.Revenue.String(),
			Expenses:    d.Metrics.Expenses.String(),
			NetProfit:   d.Metrics.NetProfit.String(),
			CreditGiven: d.Metrics.CreditGiven.String(),
			TotalDebt:   d.Metrics.TotalDebt.String(),
		},
		ExpenseBreakdown:    make([]CategoryTotal, len(d.ExpenseBreakdown)),
		Transactions:        make([]transaction.Transaction, len(d.Transactions)),
		Debts:               make([]Debt, len(d.Debts)),
		Budgets:             make([]Budget, len(d.Budgets)),
		Notifications:       make([]Notification, len(d.Notifications)),
		UnreadNotifications: d.UnreadNotifications,
	}

	for i, c := range d.ExpenseBreakdown {
		data.ExpenseBreakdown[i] = CategoryTotal{Category: c.Category, Amount: c.Amount.String()}
	}

	for i, tx := range d.Transactions {
		data.Transactions[i] = transaction.FromService(tx)
	}
	for i, debt := range d.Debts {
		data.Debts[i] = Debt{
			ID:          debt.ID,
			Customer:    debt.Customer,
			Amount:      debt.Amount.String(),
			DueDate:     debt.DueDate.Format(time.RFC3339),
			DaysOverdue: debt.DaysOverdue,
		}
	}
	for i, b := range d.Budgets {
		data.Budgets[i] = Budget{
			Category:    b.Category,
			Limit:       b.Limit.String(),
			Spent:       b.Spent.String(),
			Remaining:   b.Remaining().String(),
			PercentUsed: b.PercentUsed().String(),
		}
	}
	for i, n := range d.Notifications {
		data.Notifications[i] = Notification{
			ID:        n.ID,
			Type:      string(n.Type),
			Message:   n.Message,
			Timestamp: n.Timestamp.Format(time.RFC3339),
			Read:      n.Read,
		}
	}
	return data
}

type Input struct {
	Range string `query:"range" enum:"today,week,month" default:"today" doc:"Window the metrics cover"`
}

type Output struct {
	Body envelope.Envelope[Data]
}

// Handler handles GET /dashboard.
type Handler struct {
	Gateway gateway
}

func NewHandler(gw gateway) *Handler {
	return &Handler{Gateway: gw}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/dashboard",
		Summary:     "Dashboard",
		Description: "Returns metrics and an expense breakdown for the range, recent transactions, debts, budgets and notifications.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *Input) (*Output, error) {
	account, business, err := h.Gateway.RequireBusiness(ctx)
	if err != nil {
		return nil, envelope.FromServiceError(err, http.StatusUnauthorized)
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		logData.AddData("range", input.Range)
		stopTimer = logData.AddTiming("dashboardMs")
	}
	dashboard := h.Gateway.Dashboard(ctx, *account, *business, service.TimeRange(input.Range))
	if stopTimer != nil {
		stopTimer()
	}

	return &Output{Body: envelope.OK(fromService(dashboard))}, nil
}
