// Package statemachine holds the legal status graph of a reservation.
package statemachine

import (
	"reservation-service/internal/module/reservation/models/entity"
	"reservation-service/internal/pkg/errors"
)

type Action string

const (
	ActionConfirm Action = "confirm"
	ActionCancel  Action = "cancel"
)

const (
	reasonAlreadyConfirmed = "reservation is already confirmed"
	reasonAlreadyCancelled = "reservation is already cancelled"
	reasonUndefined        = "transition is not defined for this status"
)

type outcome struct {
	next   entity.ReservationStatus
	reason string
}

type key struct {
	from   entity.ReservationStatus
	action Action
}

// transitions is keyed by (current status, action). An empty next status
// means the move is rejected with reason.
var transitions = map[key]outcome{
	{entity.StatusPending, ActionConfirm}:   {next: entity.StatusConfirmed},
	{entity.StatusPending, ActionCancel}:    {next: entity.StatusCancelled},
	{entity.StatusConfirmed, ActionConfirm}: {reason: reasonAlreadyConfirmed},
	{entity.StatusConfirmed, ActionCancel}:  {next: entity.StatusCancelled},
	{entity.StatusCancelled, ActionConfirm}: {reason: reasonAlreadyCancelled},
	{entity.StatusCancelled, ActionCancel}:  {reason: reasonAlreadyCancelled},
}

// Next returns the status reached by applying action to from, without
// mutating anything.
func Next(from entity.ReservationStatus, action Action) (entity.ReservationStatus, error) {
	o, ok := transitions[key{from, action}]
	if !ok {
		return from, errors.InvalidTransition(string(action), string(from), reasonUndefined)
	}
	if o.next == "" {
		return from, errors.InvalidTransition(string(action), string(from), o.reason)
	}
	return o.next, nil
}

func apply(r *entity.Reservation, action Action) error {
	next, err := Next(r.Status, action)
	if err != nil {
		return err
	}
	r.Status = next
	return nil
}

// Confirm moves r to Confirmed. Attaching the payment is up to the caller.
func Confirm(r *entity.Reservation) error {
	return apply(r, ActionConfirm)
}

func Cancel(r *entity.Reservation) error {
	return apply(r, ActionCancel)
}
