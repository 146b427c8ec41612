package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Insight is one natural-language observation about the user's finances.
// Icon and Color are display tags chosen from a fixed palette; the core
// never interprets them.
type Insight struct {
	Text  string `json:"text"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Period labels selectable on the dashboard. They double as insight cache
// keys, so a transaction mutation invalidates exactly this set.
const (
	PeriodThisMonth = "Bulan Ini"
	PeriodLast3     = "3 Bulan Terakhir"
	PeriodLast6     = "6 Bulan Terakhir"
	PeriodLastYear  = "1 Tahun Terakhir"
)

// PeriodLabels lists every selectable period label.
func PeriodLabels() []string {
	return []string{PeriodThisMonth, PeriodLast3, PeriodLast6, PeriodLastYear}
}

// SinceForLabel resolves a period label to its lower bound date. Unknown
// labels fall back to the current month.
func SinceForLabel(label string, now time.Time) time.Time {
	switch label {
	case PeriodLast3:
		return now.AddDate(0, -3, 0)
	case PeriodLast6:
		return now.AddDate(0, -6, 0)
	case PeriodLastYear:
		return now.AddDate(-1, 0, 0)
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}

// InsightTransaction is the trimmed transaction shape sent to the provider.
type InsightTransaction struct {
	Type     TransactionType `json:"type"`
	Amount   int64           `json:"amount"`
	Category string          `json:"category"`
	Date     time.Time       `json:"date"`
}

// InsightPayload is the data summary handed to the insight provider.
type InsightPayload struct {
	PeriodLabel  string               `json:"periodLabel"`
	TotalIncome  int64                `json:"totalIncome"`
	TotalExpense int64                `json:"totalExpense"`
	Transactions []InsightTransaction `json:"transactions"`
	Goals        []FinancialGoal      `json:"goals"`
	Budgets      []Budget             `json:"budgets"`
}

// maxPayloadTransactions caps how many recent transactions are shared with
// the provider.
const maxPayloadTransactions = 20

// BuildInsightPayload shapes the summary the provider analyzes: period
// totals plus the most recent transactions, goals and budgets.
func BuildInsightPayload(s AppState, label string, now time.Time) InsightPayload {
	since := SinceForLabel(label, now)
	summary := Summarize(s, since)

	payload := InsightPayload{
		PeriodLabel:  label,
		TotalIncome:  summary.TotalIncome,
		TotalExpense: summary.TotalExpense,
		Goals:        append([]FinancialGoal(nil), s.Goals...),
		Budgets:      append([]Budget(nil), s.Budgets...),
	}

	for _, t := range s.Transactions {
		if t.Date.Before(since) {
			continue
		}
		payload.Transactions = append(payload.Transactions, InsightTransaction{
			Type:     t.Type,
			Amount:   t.Amount,
			Category: t.Category,
			Date:     t.Date,
		})
		if len(payload.Transactions) == maxPayloadTransactions {
			break
		}
	}
	return payload
}

// FallbackInsights derives a local insight set from the snapshot alone,
// used when the remote provider is unavailable or unconfigured.
func FallbackInsights(s AppState, label string, now time.Time) []Insight {
	since := SinceForLabel(label, now)
	summary := Summarize(s, since)
	healthy := summary.Balance >= 0

	out := []Insight{healthInsight(label, healthy)}

	if largest, ok := largestOfType(s, TypeIncome, since); ok {
		out = append(out, Insight{
			Text:  fmt.Sprintf("Pemasukan terbesar %s pada %s (%s).", label, largest.Date.Format("2 January"), formatRupiah(largest.Amount)),
			Icon:  "TrendingUpIcon",
			Color: "text-green-500",
		})
	} else {
		out = append(out, Insight{
			Text:  fmt.Sprintf("Tidak ada pemasukan %s ini.", label),
			Icon:  "TrendingUpIcon",
			Color: "text-green-500",
		})
	}

	if largest, ok := largestOfType(s, TypeExpense, since); ok {
		out = append(out, Insight{
			Text:  fmt.Sprintf("Pengeluaran terbesar %s pada %s (%s - %s).", label, largest.Date.Format("2 January"), formatRupiah(largest.Amount), largest.Category),
			Icon:  "TrendingDownIcon",
			Color: "text-red-500",
		})
	} else {
		out = append(out, Insight{
			Text:  fmt.Sprintf("Tidak ada pengeluaran %s ini.", label),
			Icon:  "TrendingDownIcon",
			Color: "text-red-500",
		})
	}

	ratio := savingsRatio(summary)
	encouragement := "Yuk, tingkatkan lagi!"
	if ratio.GreaterThan(decimal.NewFromInt(20)) {
		encouragement = "Luar biasa!"
	}
	out = append(out, Insight{
		Text:  fmt.Sprintf("Rasio tabungan %s adalah %s%%. %s", label, ratio.StringFixed(1), encouragement),
		Icon:  "PercentIcon",
		Color: "text-blue-500",
	})

	days := int64(now.Sub(since).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	out = append(out, Insight{
		Text:  fmt.Sprintf("Rata-rata pengeluaran harian %s sekitar %s.", label, formatRupiah(summary.TotalExpense/days)),
		Icon:  "ReceiptIcon",
		Color: "text-indigo-500",
	})

	return out
}

func healthInsight(label string, healthy bool) Insight {
	status, color := "Sehat", "text-green-500"
	if !healthy {
		status, color = "Perlu Perhatian", "text-yellow-500"
	}
	return Insight{
		Text:  fmt.Sprintf("Status keuangan %s: %s", label, status),
		Icon:  "CheckCircleIcon",
		Color: color,
	}
}

func largestOfType(s AppState, typ TransactionType, since time.Time) (Transaction, bool) {
	var best Transaction
	found := false
	for _, t := range s.Transactions {
		if t.Type != typ || t.Date.Before(since) {
			continue
		}
		if !found || t.Amount > best.Amount {
			best = t
			found = true
		}
	}
	return best, found
}

func savingsRatio(summary PeriodSummary) decimal.Decimal {
	if summary.TotalIncome == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(summary.Balance).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(summary.TotalIncome))
}

func formatRupiah(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := fmt.Sprintf("%d", amount)
	var grouped []byte
	for i, c := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, c)
	}
	if neg {
		return "-Rp" + string(grouped)
	}
	return "Rp" + string(grouped)
}
