package repo

import "errors"

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ErrSaleNotFound is returned when a sale is not found in the ledger.
var ErrSaleNotFound = errors.New("sale not found")

// ErrInvalidQuantityChange is returned when an adjustment would drive a
// product's quantity negative.
var ErrInvalidQuantityChange = errors.New("quantity cannot become negative")

// ErrDuplicatedValueUnique is returned on unique constraint violations.
var ErrDuplicatedValueUnique = errors.New("duplicated value violates unique constraint")
