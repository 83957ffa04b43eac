package utils

import (
	"strings"
	"time"
)

const (
	// RegionalTimezone é o fuso usado para todas as fronteiras de dia
	RegionalTimezone = "Asia/Kolkata"

	// BillingUnsetDate é o valor que o WHMCS usa para datas não preenchidas
	BillingUnsetDate = "0000-00-00 00:00:00"

	billingDateTimeLayout = "2006-01-02 15:04:05"
)

// layouts aceitos para datas vindas do WHMCS; os sem fuso são lidos no fuso regional
var billingLayouts = []string{
	billingDateTimeLayout,
	time.DateOnly,
	time.RFC3339,
}

// RegionalCalendar produz datas YYYY-MM-DD no fuso regional fixo.
// Strings nesse formato comparam lexicograficamente na ordem cronológica.
type RegionalCalendar struct {
	loc *time.Location
	now func() time.Time
}

// RegionalLocation carrega o fuso regional, com fallback para +05:30 fixo
func RegionalLocation() *time.Location {
	loc, err := time.LoadLocation(RegionalTimezone)
	if err != nil {
		return time.FixedZone("IST", 5*60*60+30*60)
	}
	return loc
}

// NewRegionalCalendar cria o calendário usando o relógio do sistema
func NewRegionalCalendar() *RegionalCalendar {
	return NewRegionalCalendarWithClock(time.Now)
}

// NewRegionalCalendarWithClock permite fixar o "agora" (testes, relatórios)
func NewRegionalCalendarWithClock(now func() time.Time) *RegionalCalendar {
	if now == nil {
		now = time.Now
	}
	return &RegionalCalendar{
		loc: RegionalLocation(),
		now: now,
	}
}

// Location retorna o fuso do calendário
func (c *RegionalCalendar) Location() *time.Location {
	return c.loc
}

// Today retorna a data de hoje no fuso regional
func (c *RegionalCalendar) Today() string {
	return c.DaysAgo(0)
}

// DaysAgo retorna a data de n dias atrás no fuso regional
func (c *RegionalCalendar) DaysAgo(n int) string {
	return c.now().In(c.loc).AddDate(0, 0, -n).Format(time.DateOnly)
}

// ParseBillingDate converte uma data do WHMCS para YYYY-MM-DD no fuso regional.
// Vazio, o sentinela "0000-00-00 00:00:00" e valores ilegíveis retornam ok=false.
func (c *RegionalCalendar) ParseBillingDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == BillingUnsetDate || strings.HasPrefix(raw, "0000-00-00") {
		return "", false
	}

	for _, layout := range billingLayouts {
		parsed, err := time.ParseInLocation(layout, raw, c.loc)
		if err == nil {
			return parsed.In(c.loc).Format(time.DateOnly), true
		}
	}

	return "", false
}

// ParseDate interpreta um parâmetro YYYY-MM-DD opcional
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
