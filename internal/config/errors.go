package config

import "errors"

var (
	ErrInvalidCapacity = errors.New("CAPACITY_PER_HOUR must be a positive integer")
	ErrInvalidNumber   = errors.New("invalid integer value")
	ErrInvalidWeekday  = errors.New("REST_DAY must be a weekday name or 0-6")
	ErrInvalidTimezone = errors.New("RESTAURANT_TIMEZONE must be a valid IANA zone")
)
