package newsletter

import (
	"strings"

	"github.com/jawa-agence/core/internal/models"
)

// csvHeader matches what the back-office spreadsheet import expects, so the
// column names stay in French.
const csvHeader = "Email,Nom,Date,Statut,Source"

const csvDateLayout = "02/01/2006"

// ExportCSV renders subscribers as a CSV document. Fields are joined with a
// bare comma and no quoting; sanitize strips the separator out of free-text
// fields instead so the column count stays fixed.
func ExportCSV(subs []models.SubscriberModel) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')

	for _, sub := range subs {
		status := "Inactif"
		if sub.IsActive {
			status = "Actif"
		}
		row := []string{
			sanitize(sub.Email),
			sanitize(sub.Name),
			sub.CreatedAt.Format(csvDateLayout),
			status,
			sanitize(sub.Source),
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

func sanitize(s string) string {
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", "")
	return strings.TrimSpace(s)
}
