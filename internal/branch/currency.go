package branch

import (
	"math"
	"strconv"
	"strings"
)

// EURToXAF is the fixed CFA franc peg used for the consolidated
// (Global) revenue approximation on the dashboard. Stored amounts are
// always native to their branch and are never rescaled for display.
const EURToXAF = 655.0

// Format renders an amount in the branch's native currency:
// Cameroun amounts as whole XAF ("2 500 000 XAF"), everything else
// as EUR with two decimals and a comma separator ("15 000,00 €").
// The function is total: NaN and infinities render as an em dash
// placeholder rather than garbage.
func Format(amount float64, b Branch) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		if b == Cameroun {
			return "— XAF"
		}
		return "— €"
	}
	if b == Cameroun {
		return groupThousands(strconv.FormatFloat(math.Round(amount), 'f', 0, 64)) + " XAF"
	}
	fixed := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, frac, _ := strings.Cut(fixed, ".")
	return groupThousands(whole) + "," + frac + " €"
}

// FormatSelector renders an amount for a selector: concrete branches
// use their native currency, the Global view renders consolidated
// EUR figures.
func FormatSelector(amount float64, sel Selector) string {
	if b, ok := sel.Concrete(); ok {
		return Format(amount, b)
	}
	return Format(amount, France)
}

// groupThousands inserts a space every three digits, fr locale
// style, leaving any leading sign alone.
func groupThousands(digits string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}
	n := len(digits)
	if n <= 3 {
		return sign + digits
	}
	var sb strings.Builder
	head := n % 3
	if head > 0 {
		sb.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sign + sb.String()
}
