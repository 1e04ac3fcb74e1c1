package entity

import (
	"strings"

	"github.com/google/uuid"
)

// Branch representa una sucursal física de la cadena. Las ventas la
// referencian, nunca son dueñas: muchas ventas por sucursal.
type Branch struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
}

// NewBranch crea una sucursal validando sus atributos
func NewBranch(name, address string) (*Branch, error) {
	if err := validateBranch(name, address); err != nil {
		return nil, err
	}

	return &Branch{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(name),
		Address: strings.TrimSpace(address),
	}, nil
}

// Update reemplaza nombre y dirección de la sucursal
func (b *Branch) Update(name, address string) error {
	if err := validateBranch(name, address); err != nil {
		return err
	}

	b.Name = strings.TrimSpace(name)
	b.Address = strings.TrimSpace(address)
	return nil
}

func validateBranch(name, address string) error {
	trimmedName := strings.TrimSpace(name)
	if trimmedName == "" || len(trimmedName) > 100 {
		return ErrInvalidBranchName
	}
	trimmedAddress := strings.TrimSpace(address)
	if trimmedAddress == "" || len(trimmedAddress) > 200 {
		return ErrInvalidBranchAddress
	}
	return nil
}
