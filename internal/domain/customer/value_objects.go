package customer

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName      = errors.New("name must not be empty")
	ErrNameTooLong    = errors.New("name must be at most 100 characters")
	ErrPhoneTooLong   = errors.New("phone must be at most 20 characters")
	ErrAddressTooLong = errors.New("address must be at most 300 characters")
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	if len(s) > 100 {
		return Name{}, ErrNameTooLong
	}
	return Name{value: s}, nil
}

func (n Name) Value() string { return n.value }

// Phone is free text; the agency takes landlines and shared numbers, so only
// a length cap applies.
type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if len(s) > 20 {
		return Phone{}, ErrPhoneTooLong
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string { return p.value }

type Address struct {
	value string
}

func NewAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if len(s) > 300 {
		return Address{}, ErrAddressTooLong
	}
	return Address{value: s}, nil
}

func (a Address) Value() string { return a.value }
