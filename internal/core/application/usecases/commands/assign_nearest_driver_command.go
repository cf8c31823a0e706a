package commands

import (
	"errors"
)

var ErrAssignNearestDriverCommandIsNotConstructed = errors.New(
	"AssignNearestDriverCommand must be created via NewAssignNearestDriverCommand constructor",
)

// AssignNearestDriverCommand triggers the automatic matching of the
// oldest pending load with the nearest available driver. It is the job
// entry point for the marketplace matching loop.
//
// Example:
//
//	cmd := NewAssignNearestDriverCommand()
//	handler := NewAssignNearestDriverCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No loads to assign or no drivers in range: %v", err)
//	}
type AssignNearestDriverCommand struct {
	isConstructed bool
}

// NewAssignNearestDriverCommand creates a new command to trigger driver matching.
// This is a parameterless command that initiates the driver-load matching process.
func NewAssignNearestDriverCommand() AssignNearestDriverCommand {
	return AssignNearestDriverCommand{
		isConstructed: true,
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignNearestDriverCommandIsNotConstructed if validation fails.
func (c AssignNearestDriverCommand) Validate() error {
	if !c.isConstructed {
		return ErrAssignNearestDriverCommandIsNotConstructed
	}
	return nil
}
