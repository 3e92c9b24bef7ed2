// Package dashboard reduces the persisted collections into the metrics shown
// on the home screen. It is a pure read over the supplied slices; nothing
// here touches the store.
package dashboard

import (
	"time"

	"github.com/frostline/hvac-office/internal/models"
)

// upcomingWindowDays is how far ahead the dashboard looks for scheduled
// maintenance visits.
const upcomingWindowDays = 15

// Summary holds the dashboard metrics for the month containing the
// reference instant.
type Summary struct {
	MonthlyIncome       float64         `json:"monthly_income"`
	MonthlyExpenses     float64         `json:"monthly_expenses"`
	NetProfit           float64         `json:"net_profit"`
	UpcomingMaintenance []models.Client `json:"upcoming_maintenance"`
}

// Summarize computes the dashboard metrics as of now.
//
// Income counts only Paid invoices issued in now's calendar month; expenses
// count everything dated in that month. Net profit may be negative — that
// is a styling concern for the UI, not an error. The upcoming-maintenance
// list holds each client once, in order of the first invoice that put them
// there; invoices whose client has since been deleted are skipped.
func Summarize(invoices []models.Invoice, clients []models.Client, expenses []models.Expense, now time.Time) Summary {
	var s Summary
	s.UpcomingMaintenance = []models.Client{}

	for _, inv := range invoices {
		if inv.Status == models.InvoicePaid && sameMonth(inv.IssueDate, now) {
			s.MonthlyIncome += inv.Total()
		}
	}

	for _, exp := range expenses {
		if sameMonth(exp.Date, now) {
			s.MonthlyExpenses += exp.Amount
		}
	}

	s.NetProfit = s.MonthlyIncome - s.MonthlyExpenses

	byID := make(map[string]models.Client, len(clients))
	for _, c := range clients {
		byID[c.ID] = c
	}

	windowEnd := now.AddDate(0, 0, upcomingWindowDays)
	seen := make(map[string]bool)
	for _, inv := range invoices {
		next := inv.NextMaintenanceDate
		if next == nil || next.Before(now) || next.After(windowEnd) {
			continue
		}
		if seen[inv.ClientID] {
			continue
		}
		client, ok := byID[inv.ClientID]
		if !ok {
			continue
		}
		seen[inv.ClientID] = true
		s.UpcomingMaintenance = append(s.UpcomingMaintenance, client)
	}

	return s
}

func sameMonth(t, ref time.Time) bool {
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}
