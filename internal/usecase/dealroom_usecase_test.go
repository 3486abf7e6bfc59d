package usecase

import (
	"context"
	"errors"
	"testing"

	"venturehive/internal/domain/dealroom"
	"venturehive/internal/domain/project"
	"venturehive/internal/repository"

	"github.com/google/uuid"
)

type mockDealRoomRepo struct {
	rooms map[uuid.UUID]dealroom.Room
}

func (m *mockDealRoomRepo) Create(ctx context.Context, room dealroom.Room) error {
	if m.rooms == nil {
		m.rooms = map[uuid.UUID]dealroom.Room{}
	}
	m.rooms[room.ID] = room
	return nil
}

func (m *mockDealRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (dealroom.Room, error) {
	room, ok := m.rooms[id]
	if !ok {
		return dealroom.Room{}, repository.ErrDealRoomNotFound
	}
	return room, nil
}

func (m *mockDealRoomRepo) Update(ctx context.Context, room dealroom.Room) error {
	if _, ok := m.rooms[room.ID]; !ok {
		return repository.ErrDealRoomNotFound
	}
	m.rooms[room.ID] = room
	return nil
}

func (m *mockDealRoomRepo) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]dealroom.Room, error) {
	out := make([]dealroom.Room, 0)
	for _, room := range m.rooms {
		if room.FounderID == userID || room.InvestorID == userID {
			out = append(out, room)
		}
	}
	return out, nil
}

type mockContactRepo struct {
	requests map[uuid.UUID]repository.ContactRequest
}

func (m *mockContactRepo) Create(ctx context.Context, cr repository.ContactRequest) error {
	if m.requests == nil {
		m.requests = map[uuid.UUID]repository.ContactRequest{}
	}
	m.requests[cr.ID] = cr
	return nil
}

func (m *mockContactRepo) GetByID(ctx context.Context, id uuid.UUID) (repository.ContactRequest, error) {
	cr, ok := m.requests[id]
	if !ok {
		return repository.ContactRequest{}, repository.ErrContactRequestNotFound
	}
	return cr, nil
}

func (m *mockContactRepo) HasPending(ctx context.Context, projectID, investorID uuid.UUID) (bool, error) {
	for _, cr := range m.requests {
		if cr.ProjectID == projectID && cr.InvestorID == investorID && cr.Status == repository.ContactPending {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockContactRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	cr, ok := m.requests[id]
	if !ok {
		return repository.ErrContactRequestNotFound
	}
	cr.Status = status
	m.requests[id] = cr
	return nil
}

func (m *mockContactRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]repository.ContactRequest, error) {
	return nil, nil
}

func (m *mockContactRepo) ListByInvestor(ctx context.Context, investorID uuid.UUID) ([]repository.ContactRequest, error) {
	return nil, nil
}

type recordingNotifier struct {
	events []string
}

func (n *recordingNotifier) NotifyDealRoom(room dealroom.Room, event string) {
	n.events = append(n.events, event)
}

func newDealRoomFixture(t *testing.T) (*DealRooms, *recordingNotifier, uuid.UUID, uuid.UUID, uuid.UUID) {
	t.Helper()

	founderID := uuid.New()
	investorID := uuid.New()
	proj := project.Project{ID: uuid.New(), FounderID: founderID, Status: project.StatusPublished}

	cr := repository.ContactRequest{
		ID:         uuid.New(),
		ProjectID:  proj.ID,
		InvestorID: investorID,
		Status:     repository.ContactAccepted,
	}

	projects := &mockProjectRepo{projects: map[uuid.UUID]project.Project{proj.ID: proj}}
	contacts := &mockContactRepo{requests: map[uuid.UUID]repository.ContactRequest{cr.ID: cr}}
	notifier := &recordingNotifier{}

	uc := NewDealRoomUsecase(&mockDealRoomRepo{}, contacts, projects, notifier)
	return uc, notifier, founderID, investorID, cr.ID
}

func TestDealRoomOpenFromAcceptedRequest(t *testing.T) {
	uc, notifier, founderID, investorID, requestID := newDealRoomFixture(t)

	room, err := uc.Open(context.Background(), investorID, requestID, dealroom.Terms{Amount: 50000, EquityPercent: 10})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if room.Status != dealroom.StatusDraft {
		t.Fatalf("Status = %q, want %q", room.Status, dealroom.StatusDraft)
	}
	if room.FounderID != founderID || room.InvestorID != investorID {
		t.Fatalf("participants = %s/%s, want %s/%s", room.FounderID, room.InvestorID, founderID, investorID)
	}
	if len(notifier.events) != 1 || notifier.events[0] != "deal_room_opened" {
		t.Fatalf("events = %v, want [deal_room_opened]", notifier.events)
	}
}

func TestDealRoomOpenRejectsOutsiders(t *testing.T) {
	uc, _, _, _, requestID := newDealRoomFixture(t)

	_, err := uc.Open(context.Background(), uuid.New(), requestID, dealroom.Terms{})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("error = %v, want ErrForbidden", err)
	}
}

func TestDealRoomCounterOfferFlow(t *testing.T) {
	uc, notifier, founderID, investorID, requestID := newDealRoomFixture(t)

	room, err := uc.Open(context.Background(), founderID, requestID, dealroom.Terms{Amount: 50000, EquityPercent: 10})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	for _, status := range []string{dealroom.StatusProposed, dealroom.StatusUnderReview} {
		if room, err = uc.Transition(context.Background(), investorID, room.ID, status); err != nil {
			t.Fatalf("Transition(%q) error = %v", status, err)
		}
	}

	// Counter-offer: back to proposed with revised terms.
	room, err = uc.Transition(context.Background(), investorID, room.ID, dealroom.StatusProposed)
	if err != nil {
		t.Fatalf("counter-offer transition error = %v", err)
	}
	room, err = uc.UpdateTerms(context.Background(), investorID, room.ID, dealroom.Terms{Amount: 40000, EquityPercent: 8})
	if err != nil {
		t.Fatalf("UpdateTerms() error = %v", err)
	}
	if room.Terms.Amount != 40000 {
		t.Fatalf("Amount = %v, want 40000", room.Terms.Amount)
	}

	if _, err = uc.Transition(context.Background(), founderID, room.ID, dealroom.StatusUnderReview); err != nil {
		t.Fatalf("re-review transition error = %v", err)
	}
	room, err = uc.Transition(context.Background(), founderID, room.ID, dealroom.StatusAccepted)
	if err != nil {
		t.Fatalf("accept transition error = %v", err)
	}

	if _, err = uc.UpdateTerms(context.Background(), founderID, room.ID, dealroom.Terms{Amount: 1}); !errors.Is(err, ErrConflict) {
		t.Fatalf("UpdateTerms on accepted room error = %v, want ErrConflict", err)
	}
	if _, err = uc.Transition(context.Background(), founderID, room.ID, dealroom.StatusProposed); !errors.Is(err, ErrConflict) {
		t.Fatalf("Transition from accepted room error = %v, want ErrConflict", err)
	}

	want := []string{"deal_room_opened", "deal_status_changed", "deal_status_changed", "deal_status_changed", "deal_terms_updated", "deal_status_changed", "deal_status_changed"}
	if len(notifier.events) != len(want) {
		t.Fatalf("events = %v, want %v", notifier.events, want)
	}
}

func TestDealRoomOpenRequiresAcceptedRequest(t *testing.T) {
	founderID := uuid.New()
	investorID := uuid.New()
	proj := project.Project{ID: uuid.New(), FounderID: founderID, Status: project.StatusPublished}
	cr := repository.ContactRequest{
		ID:         uuid.New(),
		ProjectID:  proj.ID,
		InvestorID: investorID,
		Status:     repository.ContactPending,
	}

	projects := &mockProjectRepo{projects: map[uuid.UUID]project.Project{proj.ID: proj}}
	contacts := &mockContactRepo{requests: map[uuid.UUID]repository.ContactRequest{cr.ID: cr}}
	uc := NewDealRoomUsecase(&mockDealRoomRepo{}, contacts, projects, nil)

	_, err := uc.Open(context.Background(), investorID, cr.ID, dealroom.Terms{})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("error = %v, want ErrConflict", err)
	}
}
