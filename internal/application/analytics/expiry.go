package analytics

import (
	"math"
	"time"
)

// expiryWindowDays productos que vencen dentro de este plazo generan alerta.
const expiryWindowDays = 30

// daysToExpiry días (redondeados hacia arriba) hasta la fecha YYYY-MM-DD; ok=false si no se puede leer.
func daysToExpiry(expiry string, now time.Time) (int, bool) {
	if expiry == "" {
		return 0, false
	}
	t, err := time.ParseInLocation(time.DateOnly, expiry, now.Location())
	if err != nil {
		return 0, false
	}
	return int(math.Ceil(t.Sub(now).Hours() / 24)), true
}

// expiringSoon vence en los próximos 30 días (sin incluir hoy ni vencidos).
func expiringSoon(expiry string, now time.Time) (int, bool) {
	days, ok := daysToExpiry(expiry, now)
	if !ok || days <= 0 || days > expiryWindowDays {
		return days, false
	}
	return days, true
}
