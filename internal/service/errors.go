// Package service implements the trip-splitting, personal-expense, budget and
// currency operations on top of the persisted state.
package service

import "errors"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrTripNotFound     = errors.New("trip not found")
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrInvalidShareCode = errors.New("the trip code you entered doesn't exist")
	ErrDuplicateMember  = errors.New("a member with this name is already part of the trip")
	ErrUnknownMember    = errors.New("not a member of this trip")
)
