package store

import "rental-listing-backend/internal/model"

// verifyApartmentOwner fails unless username is the apartment's owner. Every
// mutating operation calls a check from this file before touching storage.
func verifyApartmentOwner(apartment *model.Apartment, username string) error {
	if apartment.Username != username {
		return &NotAuthorizedError{Entity: EntityApartment}
	}
	return nil
}

// verifyReserveParty fails unless username is the reserving tenant or the
// owner of the apartment the reserve belongs to.
func verifyReserveParty(reserve *model.Reserve, apartmentOwner, username string) error {
	if username != reserve.Username && username != apartmentOwner {
		return &NotAuthorizedError{Entity: EntityReserve}
	}
	return nil
}

// verifyRentParty fails unless username is the leasing tenant or the owner of
// the apartment the rented room belongs to.
func verifyRentParty(rent *model.Rent, apartmentOwner, username string) error {
	if username != rent.Username && username != apartmentOwner {
		return &NotAuthorizedError{Entity: EntityRent}
	}
	return nil
}
