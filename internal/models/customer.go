package models

import "strings"

// Customer é quem faz a reserva. Email vazio significa "sem email".
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

func NewCustomer(name, phone, email string) Customer {
	return Customer{
		Name:  strings.TrimSpace(name),
		Phone: strings.TrimSpace(phone),
		Email: strings.TrimSpace(email),
	}
}

func (c Customer) HasEmail() bool {
	return c.Email != ""
}
