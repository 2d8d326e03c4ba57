package models

import (
	"errors"
	"time"
)

var ErrInvalidPartySize = errors.New("party size must be a positive number")

type Schedule struct {
	Time      time.Time `json:"time"`
	PartySize int       `json:"party_size"`
	Customer  Customer  `json:"customer"`
}

// NewSchedule só valida o formato. Regras de horário e lotação ficam no
// domain/booking.
func NewSchedule(at time.Time, partySize int, customer Customer) (Schedule, error) {
	if partySize <= 0 {
		return Schedule{}, ErrInvalidPartySize
	}

	return Schedule{
		Time:      at,
		PartySize: partySize,
		Customer:  customer,
	}, nil
}

// Equal compara por valor. Horários são comparados como instantes.
func (s Schedule) Equal(other Schedule) bool {
	return s.Time.Equal(other.Time) &&
		s.PartySize == other.PartySize &&
		s.Customer == other.Customer
}
