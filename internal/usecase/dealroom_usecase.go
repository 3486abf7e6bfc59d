package usecase

import (
	"context"
	"errors"
	"strings"

	"venturehive/internal/domain/dealroom"
	"venturehive/internal/repository"

	"github.com/google/uuid"
)

// DealNotifier pushes deal-room events to connected participants. The ws hub
// implements it; a nil notifier disables notifications.
type DealNotifier interface {
	NotifyDealRoom(room dealroom.Room, event string)
}

type DealRoomUsecase interface {
	Open(ctx context.Context, requesterID, contactRequestID uuid.UUID, terms dealroom.Terms) (dealroom.Room, error)
	UpdateTerms(ctx context.Context, requesterID, roomID uuid.UUID, terms dealroom.Terms) (dealroom.Room, error)
	Transition(ctx context.Context, requesterID, roomID uuid.UUID, status string) (dealroom.Room, error)
	Get(ctx context.Context, requesterID, roomID uuid.UUID) (dealroom.Room, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]dealroom.Room, error)
}

type DealRooms struct {
	rooms    repository.DealRoomRepository
	requests repository.ContactRequestRepository
	projects repository.ProjectRepository
	notifier DealNotifier
}

func NewDealRoomUsecase(
	rooms repository.DealRoomRepository,
	requests repository.ContactRequestRepository,
	projects repository.ProjectRepository,
	notifier DealNotifier,
) *DealRooms {
	return &DealRooms{rooms: rooms, requests: requests, projects: projects, notifier: notifier}
}

// Open creates a draft room from an accepted contact request. Either side of
// the accepted request may open the room.
func (d *DealRooms) Open(ctx context.Context, requesterID, contactRequestID uuid.UUID, terms dealroom.Terms) (dealroom.Room, error) {
	if requesterID == uuid.Nil {
		return dealroom.Room{}, ErrUnauthorized
	}
	if err := validateTerms(terms); err != nil {
		return dealroom.Room{}, err
	}

	cr, err := d.requests.GetByID(ctx, contactRequestID)
	if err != nil {
		if errors.Is(err, repository.ErrContactRequestNotFound) {
			return dealroom.Room{}, ErrNotFound
		}
		return dealroom.Room{}, ErrInternal
	}
	if cr.Status != repository.ContactAccepted {
		return dealroom.Room{}, ErrConflict
	}

	proj, err := d.projects.GetByID(ctx, cr.ProjectID)
	if err != nil {
		return dealroom.Room{}, ErrInternal
	}
	if requesterID != proj.FounderID && requesterID != cr.InvestorID {
		return dealroom.Room{}, ErrForbidden
	}

	room := dealroom.Room{
		ID:         uuid.New(),
		ProjectID:  cr.ProjectID,
		FounderID:  proj.FounderID,
		InvestorID: cr.InvestorID,
		Status:     dealroom.StatusDraft,
		Terms:      terms,
	}
	if err := d.rooms.Create(ctx, room); err != nil {
		return dealroom.Room{}, ErrInternal
	}

	d.notify(room, "deal_room_opened")
	return room, nil
}

func (d *DealRooms) UpdateTerms(ctx context.Context, requesterID, roomID uuid.UUID, terms dealroom.Terms) (dealroom.Room, error) {
	room, err := d.participantRoom(ctx, requesterID, roomID)
	if err != nil {
		return dealroom.Room{}, err
	}
	if !room.Negotiable() {
		return dealroom.Room{}, ErrConflict
	}
	if err := validateTerms(terms); err != nil {
		return dealroom.Room{}, err
	}

	room.Terms = terms
	if err := d.rooms.Update(ctx, room); err != nil {
		return dealroom.Room{}, ErrInternal
	}

	d.notify(room, "deal_terms_updated")
	return room, nil
}

func (d *DealRooms) Transition(ctx context.Context, requesterID, roomID uuid.UUID, status string) (dealroom.Room, error) {
	room, err := d.participantRoom(ctx, requesterID, roomID)
	if err != nil {
		return dealroom.Room{}, err
	}

	if err := room.Transition(status); err != nil {
		return dealroom.Room{}, ErrConflict
	}
	if err := d.rooms.Update(ctx, room); err != nil {
		return dealroom.Room{}, ErrInternal
	}

	d.notify(room, "deal_status_changed")
	return room, nil
}

func (d *DealRooms) Get(ctx context.Context, requesterID, roomID uuid.UUID) (dealroom.Room, error) {
	return d.participantRoom(ctx, requesterID, roomID)
}

func (d *DealRooms) ListMine(ctx context.Context, userID uuid.UUID) ([]dealroom.Room, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	rooms, err := d.rooms.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return rooms, nil
}

func (d *DealRooms) participantRoom(ctx context.Context, requesterID, roomID uuid.UUID) (dealroom.Room, error) {
	if requesterID == uuid.Nil {
		return dealroom.Room{}, ErrUnauthorized
	}
	room, err := d.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrDealRoomNotFound) {
			return dealroom.Room{}, ErrNotFound
		}
		return dealroom.Room{}, ErrInternal
	}
	if requesterID != room.FounderID && requesterID != room.InvestorID {
		return dealroom.Room{}, ErrForbidden
	}
	return room, nil
}

func (d *DealRooms) notify(room dealroom.Room, event string) {
	if d.notifier != nil {
		d.notifier.NotifyDealRoom(room, event)
	}
}

func validateTerms(t dealroom.Terms) error {
	if t.Amount < 0 {
		return ErrInvalidInput
	}
	if t.EquityPercent < 0 || t.EquityPercent > 100 {
		return ErrInvalidInput
	}
	if len(strings.TrimSpace(t.Notes)) > 8000 {
		return ErrInvalidInput
	}
	return nil
}
