package currency

import "github.com/mmynk/tripsplit/internal/models"

// MaxHistory is the number of conversions kept in the converter history.
const MaxHistory = 10

// PushHistory returns history with c prepended, keeping at most MaxHistory
// entries, newest first. The input slice is not modified.
func PushHistory(history []models.Conversion, c models.Conversion) []models.Conversion {
	keep := len(history)
	if keep > MaxHistory-1 {
		keep = MaxHistory - 1
	}
	out := make([]models.Conversion, 0, keep+1)
	out = append(out, c)
	return append(out, history[:keep]...)
}
