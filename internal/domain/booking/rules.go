package booking

import "time"

const DefaultRestDay = time.Sunday

// IsOnTheHour: minutos, segundos e frações zerados.
func IsOnTheHour(t time.Time) bool {
	return t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// IsDayOfRest olha o "agora" do atendimento, não o horário pedido.
func IsDayOfRest(now time.Time, restDay time.Weekday) bool {
	return now.Weekday() == restDay
}
