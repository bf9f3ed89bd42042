package analytics

import (
	"unicode/utf8"

	"payflow/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StatusBreakdown counts payments per status in first-seen order. Statuses
// that never occur are not listed and payments without a status are skipped.
func StatusBreakdown(payments []models.Payment) models.StatusBreakdown {
	out := models.StatusBreakdown{
		Series: []int{},
		Labels: []string{},
	}

	index := make(map[models.PaymentStatus]int)
	for _, p := range payments {
		if p.Status == "" {
			continue
		}
		i, ok := index[p.Status]
		if !ok {
			i = len(out.Series)
			index[p.Status] = i
			out.Series = append(out.Series, 0)
			out.Labels = append(out.Labels, StatusLabel(string(p.Status)))
		}
		out.Series[i]++
	}
	return out
}

// StatusLabel upper-cases the first character of a status and keeps the rest.
func StatusLabel(status string) string {
	r, size := utf8.DecodeRuneInString(status)
	if r == utf8.RuneError {
		return status
	}
	// Casers are stateful, so one is built per call.
	return cases.Upper(language.Und).String(status[:size]) + status[size:]
}
