// Package render turns fetched data into styled terminal output. Every
// function is pure: data in, string out.
package render

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finhub-dev/finhub/internal/api"
	"github.com/finhub-dev/finhub/internal/model"
	"github.com/finhub-dev/finhub/internal/notes"
	"github.com/finhub-dev/finhub/internal/report"
)

const indentWidth = 2

// ReportTable renders flattened report rows with nesting indents, bold
// header/summary lines, and right-aligned amounts.
func ReportTable(rows []report.DisplayRow) string {
	if len(rows) == 0 {
		return faintStyle.Render("No report data.") + "\n"
	}

	labelWidth := 0
	for _, row := range rows {
		if w := row.Indent*indentWidth + len(row.Label); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	for _, row := range rows {
		label := strings.Repeat(" ", row.Indent*indentWidth) + row.Label
		line := fmt.Sprintf("%-*s  %12s", labelWidth, label, row.Amount)
		if row.Bold {
			line = boldStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// BreakdownChart renders expense slices as proportional colored bars.
func BreakdownChart(slices []report.BreakdownSlice) string {
	if len(slices) == 0 {
		return faintStyle.Render("No expense data.") + "\n"
	}

	const maxBar = 30
	top := slices[0].Value

	nameWidth := 0
	for _, s := range slices {
		if len(s.Name) > nameWidth {
			nameWidth = len(s.Name)
		}
	}

	var b strings.Builder
	for _, s := range slices {
		width := int(s.Value / top * maxBar)
		if width < 1 {
			width = 1
		}
		bar := barStyle(s.Color).Render(strings.Repeat("█", width))
		b.WriteString(fmt.Sprintf("%-*s  %s %s\n", nameWidth, s.Name, bar, report.FormatAmount(s.Value)))
	}
	return b.String()
}

// CashflowSummary renders the three canonical cash-flow sections.
func CashflowSummary(sections []report.CashflowSection) string {
	if len(sections) == 0 {
		return faintStyle.Render("No cash flow data.") + "\n"
	}

	var b strings.Builder
	for _, s := range sections {
		amount := report.FormatAmount(s.Value)
		if s.Value < 0 {
			amount = negStyle.Render(amount)
		} else {
			amount = posStyle.Render(amount)
		}
		b.WriteString(fmt.Sprintf("%-10s %s\n", s.Name, amount))
	}
	return b.String()
}

// SnapshotCard renders the headline finance numbers.
func SnapshotCard(snap api.FinanceSnapshot) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Finance snapshot") + "\n")
	b.WriteString(fmt.Sprintf("%-12s %s\n", "Cash", money(snap.Cash)))
	b.WriteString(fmt.Sprintf("%-12s %s\n", "Revenue", money(snap.Revenue)))
	b.WriteString(fmt.Sprintf("%-12s %s\n", "Expenses", money(snap.Expenses)))
	b.WriteString(fmt.Sprintf("%-12s %s\n", "Net income", money(snap.NetIncome)))
	if !snap.AsOf.IsZero() {
		b.WriteString(faintStyle.Render("as of "+snap.AsOf.Format("2006-01-02")) + "\n")
	}
	return b.String()
}

// TimelineList renders timeline events, one per line.
func TimelineList(events []api.TimelineEvent) string {
	if len(events) == 0 {
		return faintStyle.Render("Nothing on the timeline.") + "\n"
	}

	var b strings.Builder
	for _, e := range events {
		line := fmt.Sprintf("%s  %-10s %s", e.OccurredAt.Format("2006-01-02"), e.Kind, e.Title)
		if !e.Amount.IsZero() {
			line += "  " + money(e.Amount)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// InvoiceTable renders invoices.
func InvoiceTable(invoices []api.Invoice) string {
	if len(invoices) == 0 {
		return faintStyle.Render("No invoices.") + "\n"
	}

	var b strings.Builder
	b.WriteString(boldStyle.Render(fmt.Sprintf("%-14s %-20s %-10s %12s  %s", "NUMBER", "CUSTOMER", "STATUS", "AMOUNT", "DUE")) + "\n")
	for _, inv := range invoices {
		b.WriteString(fmt.Sprintf("%-14s %-20s %-10s %12s  %s\n",
			inv.Number, trim(inv.Customer, 20), inv.Status, money(inv.AmountDue), inv.DueDate))
	}
	return b.String()
}

// QuoteTable renders quotes.
func QuoteTable(quotes []api.Quote) string {
	if len(quotes) == 0 {
		return faintStyle.Render("No quotes.") + "\n"
	}

	var b strings.Builder
	b.WriteString(boldStyle.Render(fmt.Sprintf("%-14s %-20s %-10s %12s  %s", "NUMBER", "CUSTOMER", "STATUS", "TOTAL", "EXPIRES")) + "\n")
	for _, q := range quotes {
		b.WriteString(fmt.Sprintf("%-14s %-20s %-10s %12s  %s\n",
			q.Number, trim(q.Customer, 20), q.Status, money(q.AmountTotal), q.ExpiresAt))
	}
	return b.String()
}

// AuthorityTable renders pending authority-queue items.
func AuthorityTable(items []api.AuthorityItem) string {
	if len(items) == 0 {
		return faintStyle.Render("Authority queue is empty.") + "\n"
	}

	var b strings.Builder
	b.WriteString(boldStyle.Render(fmt.Sprintf("%-10s %-24s %12s %-10s %s", "ID", "ACTION", "AMOUNT", "STATUS", "SUMMARY")) + "\n")
	for _, item := range items {
		b.WriteString(fmt.Sprintf("%-10s %-24s %12s %-10s %s\n",
			item.ID, trim(item.Action, 24), money(item.Amount), item.Status, item.Summary))
	}
	return b.String()
}

// NoteList renders founder-hub notes; pinned notes carry a marker.
func NoteList(list []notes.Note) string {
	if len(list) == 0 {
		return faintStyle.Render("No notes yet.") + "\n"
	}

	var b strings.Builder
	for _, n := range list {
		title := n.Title
		if n.Pinned {
			title = "📌 " + title
		}
		b.WriteString(boldStyle.Render(title))
		b.WriteString(faintStyle.Render("  (" + n.ID + ")"))
		b.WriteString("\n")
		if n.Body != "" {
			b.WriteString("  " + n.Body + "\n")
		}
	}
	return b.String()
}

// ReceiptTable renders receipts.
func ReceiptTable(receipts []notes.Receipt) string {
	if len(receipts) == 0 {
		return faintStyle.Render("No receipts.") + "\n"
	}

	var b strings.Builder
	b.WriteString(boldStyle.Render(fmt.Sprintf("%-12s %-20s %12s  %s", "DATE", "VENDOR", "AMOUNT", "CATEGORY")) + "\n")
	for _, rc := range receipts {
		b.WriteString(fmt.Sprintf("%-12s %-20s %12s  %s\n", rc.Date, trim(rc.Vendor, 20), money(rc.Amount), rc.Category))
	}
	return b.String()
}

// SavedList renders locally saved items.
func SavedList(items []model.SavedItem) string {
	if len(items) == 0 {
		return faintStyle.Render("Nothing saved yet.") + "\n"
	}

	var b strings.Builder
	for _, item := range items {
		b.WriteString(fmt.Sprintf("%s  %-8s %s", item.ID, item.Kind, boldStyle.Render(item.Title)))
		if item.Ref != "" {
			b.WriteString(faintStyle.Render("  → " + item.Ref))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Transcript renders desk messages.
func Transcript(messages []model.Message) string {
	var b strings.Builder
	for _, msg := range messages {
		switch msg.From {
		case model.SenderUser:
			b.WriteString(userStyle.Render("You: "+msg.Text) + "\n")
		case model.SenderAgent:
			b.WriteString(agentStyle.Render("Ava: "+msg.Text) + "\n")
		default:
			b.WriteString(systemStyle.Render(msg.Text) + "\n")
		}
	}
	return b.String()
}

// ActivityFeed renders a run's activity events.
func ActivityFeed(run *model.Run) string {
	if run == nil || len(run.Events) == 0 {
		return ""
	}

	var b strings.Builder
	for _, event := range run.Events {
		line := fmt.Sprintf("%s %s", event.Icon, event.Message)
		if event.Type == model.ActivityDone {
			line = posStyle.Render(line)
		} else {
			line = faintStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func money(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

func trim(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
