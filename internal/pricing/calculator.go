package pricing

import (
	"fmt"

	"github.com/rashadgasimli/coffee-shop-api/internal/models"
)

// Total computes the display price for a selection: the coffee's base
// price multiplied by the chosen size factor, plus the flat price of every
// selected extra. The result is formatted to two decimal places; rounding
// happens only here, all intermediate arithmetic stays in float64.
//
// Unknown size keys fall back to factor 1 and selected extras missing from
// the catalog are ignored rather than rejected, matching how the menu
// behaves when the catalog changes under an open selection.
func Total(coffee *models.Coffee, sizeKey string, selected map[string]bool, sizes []models.Size, extras []models.Extra) string {
	if coffee == nil {
		return "0.00"
	}

	factor := 1.0
	for _, s := range sizes {
		if s.Key == sizeKey {
			factor = s.Factor
			break
		}
	}

	extraSum := 0.0
	for _, e := range extras {
		if selected[e.Name] {
			extraSum += e.Price
		}
	}

	return fmt.Sprintf("%.2f", coffee.Price*factor+extraSum)
}
