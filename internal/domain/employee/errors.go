package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNationalIDExists = errors.New("national ID already registered")
	ErrInvalidSite      = errors.New("unknown work site")
	ErrInvalidPosition  = errors.New("unknown position")
	ErrAmbiguousSalary  = errors.New("exactly one of daily_salary or monthly_salary must be greater than zero")
)
