package ws

import (
	"encoding/json"
	"time"

	"venturehive/internal/domain/dealroom"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type dealRoomEvent struct {
	Type      string    `json:"type"`
	RoomID    uuid.UUID `json:"room_id"`
	ProjectID uuid.UUID `json:"project_id"`
	Status    string    `json:"status"`
	Timestamp string    `json:"timestamp"`
}

// DealRoomNotifier pushes deal-room lifecycle events to the two participants
// over the hub. It satisfies the deal-room usecase's notifier dependency.
type DealRoomNotifier struct {
	hub    *Hub
	logger *zap.Logger
}

func NewDealRoomNotifier(hub *Hub, logger *zap.Logger) *DealRoomNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DealRoomNotifier{hub: hub, logger: logger}
}

func (n *DealRoomNotifier) NotifyDealRoom(room dealroom.Room, event string) {
	if n == nil || n.hub == nil {
		return
	}

	payload, err := json.Marshal(dealRoomEvent{
		Type:      event,
		RoomID:    room.ID,
		ProjectID: room.ProjectID,
		Status:    room.Status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		n.logger.Warn("deal event marshal failed", zap.Error(err))
		return
	}

	n.hub.Publish([]uuid.UUID{room.FounderID, room.InvestorID}, payload)
}
