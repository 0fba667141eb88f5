package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/events"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/eventbus"
)

// NotificationListener turns lifecycle events into operator notifications.
// The current sink is the structured log; a mail or chat transport can hang
// off the same subscriptions later.
type NotificationListener struct {
	logger *zap.Logger
}

func NewNotificationListener(logger *zap.Logger) *NotificationListener {
	return &NotificationListener{logger: logger}
}

func (l *NotificationListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.RequestCreatedName, l.onRequestCreated)
	bus.Subscribe(events.RequestCompletedName, l.onRequestCompleted)
	bus.Subscribe(events.EquipmentScrappedName, l.onEquipmentScrapped)
	bus.Subscribe(events.BreakdownWarningName, l.onBreakdownWarning)
}

func (l *NotificationListener) onRequestCreated(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.RequestCreatedEvent)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Name())
	}
	l.logger.Info("maintenance request created",
		zap.Uint64("request_id", e.RequestID),
		zap.Uint64("equipment_id", e.EquipmentID),
		zap.String("type", e.Type),
		zap.String("priority", e.Priority),
	)
	return nil
}

func (l *NotificationListener) onRequestCompleted(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.RequestCompletedEvent)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Name())
	}
	l.logger.Info("maintenance request closed",
		zap.Uint64("request_id", e.RequestID),
		zap.Uint64("equipment_id", e.EquipmentID),
		zap.String("status", e.Status),
	)
	return nil
}

func (l *NotificationListener) onEquipmentScrapped(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.EquipmentScrappedEvent)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Name())
	}
	l.logger.Warn("equipment scrapped",
		zap.Uint64("request_id", e.RequestID),
		zap.Uint64("equipment_id", e.EquipmentID),
	)
	return nil
}

func (l *NotificationListener) onBreakdownWarning(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.BreakdownWarningEvent)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Name())
	}
	l.logger.Warn("breakdown warning",
		zap.Uint64("equipment_id", e.EquipmentID),
		zap.String("equipment_name", e.EquipmentName),
		zap.Int("breakdown_count", e.BreakdownCount),
	)
	return nil
}
