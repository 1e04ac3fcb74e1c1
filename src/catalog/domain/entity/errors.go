package entity

import "errors"

var (
	ErrInvalidProductName  = errors.New("product name must be between 3 and 100 characters")
	ErrInvalidProductPrice = errors.New("product price must be greater than or equal to 0")
	ErrInvalidProductStock = errors.New("product stock must be greater than or equal to 0")

	ErrInvalidBranchName    = errors.New("branch name is required and must have at most 100 characters")
	ErrInvalidBranchAddress = errors.New("branch address is required and must have at most 200 characters")

	ErrProductNotFound = errors.New("product not found")
	ErrBranchNotFound  = errors.New("branch not found")
)
