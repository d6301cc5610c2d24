package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dagimg/loan-management/internal/auth"
	"github.com/dagimg/loan-management/internal/core/events"
)

// Dispatcher turns loan lifecycle events into stored notifications. Every
// failure is logged and swallowed: notification delivery never rolls back
// or blocks a workflow transition.
type Dispatcher struct {
	service   *Service
	directory Directory
	logger    *slog.Logger
}

func NewDispatcher(service *Service, directory Directory, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		service:   service,
		directory: directory,
		logger:    logger,
	}
}

// Register subscribes the dispatcher to the loan lifecycle events.
func (d *Dispatcher) Register(bus *events.EventBus) {
	bus.Subscribe(events.EventTypeLoanSubmitted, d.handleSubmitted)
	bus.Subscribe(events.EventTypeLoanRecommended, d.handleRecommended)
	bus.Subscribe(events.EventTypeLoanApproved, d.handleApproved)
	bus.Subscribe(events.EventTypeLoanRejected, d.handleRejected)
}

func (d *Dispatcher) handleSubmitted(ctx context.Context, event events.Event) error {
	e, ok := event.(*events.LoanSubmittedEvent)
	if !ok {
		d.logger.Error("unexpected event payload", "event_type", event.EventType())
		return nil
	}

	d.notify(e.EmployeeUserID, fmt.Sprintf(
		"Your loan request #%d for %d has been submitted and awaits review.",
		e.QueueNumber, e.RequestedAmount))

	d.notifyHolders(auth.PermRecommendLoans, fmt.Sprintf(
		"New loan request #%d from %s awaits your recommendation.",
		e.QueueNumber, e.EmployeeName))

	return nil
}

func (d *Dispatcher) handleRecommended(ctx context.Context, event events.Event) error {
	e, ok := event.(*events.LoanRecommendedEvent)
	if !ok {
		d.logger.Error("unexpected event payload", "event_type", event.EventType())
		return nil
	}

	d.notify(e.EmployeeUserID,
		"Your loan request has been reviewed and awaits final approval.")

	d.notifyHolders(auth.PermFinalizeLoans, fmt.Sprintf(
		"Loan request from %s for %d awaits final approval.",
		e.EmployeeName, e.RequestedAmount))

	return nil
}

func (d *Dispatcher) handleApproved(ctx context.Context, event events.Event) error {
	e, ok := event.(*events.LoanFinalizedEvent)
	if !ok {
		d.logger.Error("unexpected event payload", "event_type", event.EventType())
		return nil
	}

	d.notify(e.EmployeeUserID, fmt.Sprintf(
		"Your loan request has been approved for %d. Your contract is ready for download.",
		e.ApprovedAmount))

	return nil
}

func (d *Dispatcher) handleRejected(ctx context.Context, event events.Event) error {
	e, ok := event.(*events.LoanFinalizedEvent)
	if !ok {
		d.logger.Error("unexpected event payload", "event_type", event.EventType())
		return nil
	}

	d.notify(e.EmployeeUserID, "Your loan request has been rejected.")

	return nil
}

func (d *Dispatcher) notify(userID int64, message string) {
	if err := d.service.Notify(userID, message); err != nil {
		d.logger.Error("failed to deliver notification", "error", err, "user_id", userID)
	}
}

func (d *Dispatcher) notifyHolders(permission, message string) {
	userIDs, err := d.directory.UserIDsWithPermission(permission)
	if err != nil {
		d.logger.Error("failed to resolve notification recipients", "error", err, "permission", permission)
		return
	}
	for _, userID := range userIDs {
		d.notify(userID, message)
	}
}
