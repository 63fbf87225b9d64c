package domain

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrUnsupportedOperator = errors.New("Operator type is not supported")
var ErrDuplicateProvider = errors.New("Operator type registered more than once")
var ErrNoProviders = errors.New("At least one capability provider is required")
var ErrIncompleteSpec = errors.New("Transaction spec is incomplete")
