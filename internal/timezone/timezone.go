package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "Asia/Seoul"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location cai para DefaultTimezone quando tz é inválido; UTC em último caso.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// Clock devolve o relógio real no fuso do restaurante.
func Clock(tz string) func() time.Time {
	loc := Location(tz)
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// ParseDateHour interpreta "2006-01-02" + "15:04" no fuso informado.
func ParseDateHour(tz, date, hm string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		date+" "+hm,
		Location(tz),
	)
}
