package store

import (
	"errors"
	"fmt"
)

// Entity names used in error values.
const (
	EntityApartment     = "apartment"
	EntityRoom          = "room"
	EntityReserveChoice = "reserve choice"
	EntityReserve       = "reserve"
	EntityRent          = "rent"
	EntityCommunity     = "community"
	EntitySchool        = "school"
)

// NotFoundError reports that an entity is missing or soft-deleted.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// NotAuthorizedError reports an ownership or party mismatch.
type NotAuthorizedError struct {
	Entity string
}

func (e *NotAuthorizedError) Error() string {
	return fmt.Sprintf("not authorized to operate on this %s", e.Entity)
}

// InvalidError reports a malformed field value, such as an unparsable date.
type InvalidError struct {
	Field string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid value for %s", e.Field)
}

// RequiredError reports a missing mandatory field.
type RequiredError struct {
	Field string
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsNotAuthorized reports whether err is a NotAuthorizedError.
func IsNotAuthorized(err error) bool {
	var na *NotAuthorizedError
	return errors.As(err, &na)
}

// IsBadInput reports whether err is an InvalidError or a RequiredError.
func IsBadInput(err error) bool {
	var inv *InvalidError
	var req *RequiredError
	return errors.As(err, &inv) || errors.As(err, &req)
}
