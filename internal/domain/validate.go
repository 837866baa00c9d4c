package domain

// ValidateUserInput builds the user value objects from raw input, checking
// name, then last name, then email. It short-circuits on the first failing
// field: the returned error describes only that field. Cumulative reporting
// was considered and deliberately not adopted to keep the contract of "one
// code, one message" at the boundary.
func ValidateUserInput(name, lastName, email string) (PersonName, LastName, Email, error) {
	personName, err := NewPersonName(name)
	if err != nil {
		return PersonName{}, LastName{}, Email{}, err
	}

	last, err := NewLastName(lastName)
	if err != nil {
		return PersonName{}, LastName{}, Email{}, err
	}

	addr, err := NewEmail(email)
	if err != nil {
		return PersonName{}, LastName{}, Email{}, err
	}

	return personName, last, addr, nil
}
