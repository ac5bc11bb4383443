// Package party holds the references to people and vehicles that the
// workshop core embeds. Their CRUD lives outside this module.
package party

import (
	"strings"

	"github.com/google/uuid"
)

type Client struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

func (c Client) IsZero() bool {
	return c.ID == uuid.Nil || strings.TrimSpace(c.Name) == ""
}

type Vehicle struct {
	Plate string `json:"plate"`
	Model string `json:"model"`
}

func (v Vehicle) IsZero() bool {
	return strings.TrimSpace(v.Plate) == ""
}

type Mechanic struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (m Mechanic) IsZero() bool {
	return m.ID == uuid.Nil
}
