package tui

import (
	"fmt"
	"strings"

	"medicompare/internal/usecase"

	"github.com/charmbracelet/lipgloss"
)

func renderDetail(view *usecase.DetailView) string {
	h := view.Detail.Hospital
	t := view.Treatment

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", lipgloss.NewStyle().Bold(true).Render(h.Name))
	fmt.Fprintf(&b, "%s %.1f (%d reviews)\n", starStyle.Render(stars(h.Rating)), h.Rating, h.ReviewsCount)
	fmt.Fprintf(&b, "%s\n", h.Address)
	fmt.Fprintf(&b, "Timings: %s | Contact: %s\n", h.Timings, h.ContactNumber)
	fmt.Fprintf(&b, "Established %s | %d beds\n", h.Established, h.Beds)
	if len(h.Specialties) > 0 {
		fmt.Fprintf(&b, "Specialties: %s\n", strings.Join(h.Specialties, ", "))
	}

	b.WriteString(sectionStyle.Render("Treatment") + "\n")
	fmt.Fprintf(&b, "%s (%s)\n", t.Name, t.Duration)
	fmt.Fprintf(&b, "Cost %s | Consultation %s\n",
		priceStyle.Render("₹"+formatRupees(t.Cost)),
		priceStyle.Render("₹"+formatRupees(t.ConsultationFee)),
	)
	if t.Description != "" {
		fmt.Fprintf(&b, "%s\n", t.Description)
	}

	b.WriteString(sectionStyle.Render("Doctors") + "\n")
	if len(view.Detail.Doctors) == 0 {
		b.WriteString("No doctor information available.\n")
	}
	for _, d := range view.Detail.Doctors {
		fmt.Fprintf(&b, "• %s, %s (%s, %s)\n", d.Name, d.Specialization, d.Qualification, d.Experience)
	}

	summary := view.Detail.Summary
	b.WriteString(sectionStyle.Render(fmt.Sprintf("Reviews · %.1f average", summary.AverageRating)) + "\n")
	for _, bar := range summary.Histogram {
		fmt.Fprintf(&b, "%d★ %-20s %d\n", bar.Stars, strings.Repeat("█", int(bar.Percent/5)), bar.Count)
	}
	if len(view.Detail.Reviews) == 0 {
		b.WriteString("No reviews yet.\n")
	}
	for _, r := range view.Detail.Reviews {
		verified := ""
		if r.Verified {
			verified = " ✓"
		}
		fmt.Fprintf(&b, "%s %s%s (%s)\n  %s\n", starStyle.Render(stars(float64(r.Rating))), r.PatientName, verified, r.Date, r.Comment)
	}

	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}
