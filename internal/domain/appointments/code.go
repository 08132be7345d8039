package appointments

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// GenerateCode arma el código display APT-YYYYMMDD[-HHMM]-RRR con sufijo
// aleatorio en [100,999]. No se chequean colisiones: el código es una
// conveniencia de display, nunca una clave primaria.
func GenerateCode(date, timeOfDay string) string {
	d := strings.ReplaceAll(strings.TrimSpace(date), "-", "")
	if d == "" {
		d = time.Now().Format("20060102")
	}

	t := strings.ReplaceAll(strings.TrimSpace(timeOfDay), ":", "")
	if len(t) > 4 {
		t = t[:4]
	}

	suffix := rand.IntN(900) + 100

	if t != "" {
		return fmt.Sprintf("APT-%s-%s-%d", d, t, suffix)
	}
	return fmt.Sprintf("APT-%s-%d", d, suffix)
}
