package entity

import "errors"

var (
	ErrRequestRequired   = errors.New("sale request is required")
	ErrBranchRequired    = errors.New("branch_id is required")
	ErrSaleMustHaveItems = errors.New("sale must have at least one item")

	ErrProductNameRequired = errors.New("product_name is required")
	ErrProductRequired     = errors.New("product_id is required")
	ErrInvalidQuantity     = errors.New("quantity must be greater than 0")
	ErrInvalidPrice        = errors.New("unit_price must be greater than or equal to 0")
	ErrInvalidStatus       = errors.New("status is not a valid sale status")
	ErrInvalidDate         = errors.New("date must have format YYYY-MM-DD")

	ErrSaleNotFound = errors.New("sale not found")
)
