package tui

import (
	"fmt"
	"strconv"
	"strings"

	"medicompare/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// formatRupees renders whole rupees with Indian digit grouping (1,50,000)
func formatRupees(amount decimal.Decimal) string {
	n := amount.IntPart()
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return sign + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	return sign + strings.Join(groups, ",") + "," + tail
}

func budgetLabel(b entity.BudgetRange) string {
	upper := "₹" + formatRupees(b.Max)
	if b.Max.Equal(entity.OpenEndedMax) {
		upper = "₹10,000+"
	}
	return fmt.Sprintf("₹%s – %s", formatRupees(b.Min), upper)
}

func resultLabel(r entity.SearchResult) string {
	return fmt.Sprintf("%s  ★ %.1f  ₹%s (consultation ₹%s)",
		r.Hospital.Name,
		r.Hospital.Rating,
		formatRupees(r.Treatment.Cost),
		formatRupees(r.Treatment.ConsultationFee),
	)
}

// stars draws a five-star bar, rounding half stars up like the rating badges
func stars(rating float64) string {
	full := int(rating + 0.5)
	if full > 5 {
		full = 5
	}
	if full < 0 {
		full = 0
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}
