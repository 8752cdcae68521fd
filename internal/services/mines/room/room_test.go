package room

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	apperrors "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/platform/errors"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/board"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/engine"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/session"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/domain/view"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/observability/audit"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/mines/storage"
)

type nopSink struct{}

func (nopSink) Deliver(context.Context, view.GameStateView) error { return nil }

type memoryStore struct {
	mu     sync.Mutex
	events []storage.MoveEvent
}

func (s *memoryStore) AppendMoveEvent(_ context.Context, evt storage.MoveEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
	return nil
}

func (s *memoryStore) Events() []storage.MoveEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]storage.MoveEvent(nil), s.events...)
}

func quiet(string, ...any) {}

func newRoom(t *testing.T, opts ...Option) *Room {
	t.Helper()
	b, err := board.FromMines(4, 4, []board.Point{{X: 2, Y: 2}})
	if err != nil {
		t.Fatalf("from mines: %v", err)
	}
	n := 0
	registry := session.NewRegistry(
		session.WithOutboxSize(1024),
		session.WithIDGenerator(func() (string, error) {
			n++
			return fmt.Sprintf("p%d", n), nil
		}),
	)
	return New(b, append([]Option{WithRegistry(registry), WithLogger(quiet)}, opts...)...)
}

func join(t *testing.T, r *Room, name string) *session.Session {
	t.Helper()
	sess, err := r.Join(context.Background(), name, nopSink{})
	if err != nil {
		t.Fatalf("join %s: %v", name, err)
	}
	return sess
}

func next(t *testing.T, sess *session.Session) view.GameStateView {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v, err := sess.Next(ctx)
	if err != nil {
		t.Fatalf("next frame for %s: %v", sess.ID(), err)
	}
	return v
}

func drain(sess *session.Session) []view.GameStateView {
	var frames []view.GameStateView
	for sess.Pending() > 0 {
		v, err := sess.Next(context.Background())
		if err != nil {
			break
		}
		frames = append(frames, v)
	}
	return frames
}

func TestJoinSendsWelcomeThenBroadcast(t *testing.T) {
	r := newRoom(t)
	alice := join(t, r, "Alice")

	welcome := next(t, alice)
	if welcome.Message != "Welcome Alice! You joined the game." {
		t.Fatalf("welcome message = %q", welcome.Message)
	}
	if len(welcome.Players) != 1 || welcome.Players[0].ID != alice.ID() {
		t.Fatalf("welcome players = %+v", welcome.Players)
	}
	shared := next(t, alice)
	if shared.Message != engine.MessageInProgress {
		t.Fatalf("shared message = %q", shared.Message)
	}

	bob := join(t, r, "Bob")
	aliceFrames := drain(alice)
	if len(aliceFrames) != 1 || len(aliceFrames[0].Players) != 2 {
		t.Fatalf("alice should see one join broadcast with two players, got %+v", aliceFrames)
	}
	bobFrames := drain(bob)
	if len(bobFrames) != 2 || bobFrames[0].Message != "Welcome Bob! You joined the game." {
		t.Fatalf("unexpected bob frames %+v", bobFrames)
	}
	if &aliceFrames[0].Cells[0] != &bobFrames[1].Cells[0] {
		t.Fatal("join broadcast should share one snapshot")
	}
}

func TestJoinRejectsEmptyName(t *testing.T) {
	r := newRoom(t)
	alice := join(t, r, "Alice")
	drain(alice)

	_, err := r.Join(context.Background(), "  ", nopSink{})
	if apperrors.CodeOf(err) != apperrors.CodePlayerNameEmpty {
		t.Fatalf("expected %s, got %v", apperrors.CodePlayerNameEmpty, err)
	}
	if alice.Pending() != 0 || r.Players() != 1 {
		t.Fatal("failed join must not broadcast or register")
	}
}

func TestSuccessfulMoveBroadcastsOneSnapshot(t *testing.T) {
	r := newRoom(t)
	alice := join(t, r, "Alice")
	bob := join(t, r, "Bob")
	drain(alice)
	drain(bob)

	res := r.Reveal(context.Background(), alice.ID(), 0, 0)
	if !res.Success {
		t.Fatalf("reveal: %+v", res)
	}
	a, b := next(t, alice), next(t, bob)
	if &a.Cells[0] != &b.Cells[0] {
		t.Fatal("sessions received different snapshots")
	}
	if !a.At(0, 0).Revealed || a.At(2, 2).IsMine {
		t.Fatal("unexpected projected cells")
	}
}

func TestRejectedMoveDoesNotBroadcast(t *testing.T) {
	r := newRoom(t)
	alice := join(t, r, "Alice")
	drain(alice)

	res := r.Flag(context.Background(), alice.ID(), 9, 9)
	if res.Success || res.Code != apperrors.CodeCellOutOfBounds {
		t.Fatalf("expected bounds rejection, got %+v", res)
	}
	if alice.Pending() != 0 {
		t.Fatal("rejected move must not broadcast")
	}
}

func TestLeaveBroadcastsAndIsIdempotent(t *testing.T) {
	r := newRoom(t)
	alice := join(t, r, "Alice")
	bob := join(t, r, "Bob")
	drain(alice)
	drain(bob)

	if !r.Leave(context.Background(), bob.ID()) {
		t.Fatal("expected first leave to succeed")
	}
	if r.Leave(context.Background(), bob.ID()) {
		t.Fatal("expected second leave to be a no-op")
	}
	frames := drain(alice)
	if len(frames) != 1 || len(frames[0].Players) != 1 || frames[0].Players[0].Name != "Alice" {
		t.Fatalf("unexpected frames after leave %+v", frames)
	}
	if bob.Alive() {
		t.Fatal("left session should be closed")
	}
	if res := r.Reveal(context.Background(), bob.ID(), 0, 0); res.Code != apperrors.CodePlayerNotFound {
		t.Fatalf("move after leave = %+v", res)
	}
}

func TestLeaveKeepsBoardState(t *testing.T) {
	r := newRoom(t)
	alice := join(t, r, "Alice")
	r.Flag(context.Background(), alice.ID(), 3, 3)
	r.Leave(context.Background(), alice.ID())

	v := r.Snapshot(view.AudiencePlayers)
	if !v.At(3, 3).Flagged || v.MinesRemaining != 0 || len(v.Players) != 0 {
		t.Fatalf("board state changed on leave: %+v", v.At(3, 3))
	}
}

func TestMineExplosionVisibleToEveryone(t *testing.T) {
	r := newRoom(t)
	alice := join(t, r, "Alice")
	bob := join(t, r, "Bob")
	drain(alice)
	drain(bob)

	res := r.Reveal(context.Background(), bob.ID(), 2, 2)
	if !res.Success || res.Message != "You hit a mine!" {
		t.Fatalf("unexpected result %+v", res)
	}
	v := next(t, alice)
	if v.GameStatus != engine.StatusLost || !v.At(2, 2).IsMine || v.Message != engine.MessageLost {
		t.Fatalf("unexpected loss frame %+v", v.GameStatus)
	}
	if res := r.Flag(context.Background(), alice.ID(), 0, 0); res.Code != apperrors.CodeGameNotActive {
		t.Fatalf("flag after loss = %+v", res)
	}
}

func TestSnapshotPrivilegedAudience(t *testing.T) {
	r := newRoom(t)
	if !r.Snapshot(view.AudiencePrivileged).At(2, 2).IsMine {
		t.Fatal("expected privileged snapshot to expose mines")
	}
	if r.Snapshot(view.AudiencePlayers).At(2, 2).IsMine {
		t.Fatal("expected player snapshot to hide mines")
	}
}

func TestAuditRecordsEveryOperation(t *testing.T) {
	store := &memoryStore{}
	r := newRoom(t, WithAudit(audit.NewEmitter(store)))
	alice := join(t, r, "Alice")
	r.Reveal(context.Background(), alice.ID(), 0, 0)
	r.Flag(context.Background(), alice.ID(), 0, 0)
	r.Leave(context.Background(), alice.ID())

	events := store.Events()
	if len(events) != 4 {
		t.Fatalf("events = %d, want 4", len(events))
	}
	wantKinds := []storage.MoveKind{storage.MoveJoin, storage.MoveReveal, storage.MoveFlag, storage.MoveLeave}
	for i, want := range wantKinds {
		if events[i].Kind != want || events[i].PlayerID != alice.ID() {
			t.Fatalf("event %d = %s/%s, want %s", i, events[i].Kind, events[i].PlayerID, want)
		}
	}
	if !events[1].Success || *events[1].X != 0 || *events[1].Y != 0 {
		t.Fatalf("unexpected reveal event %+v", events[1])
	}
	if events[2].Success || events[2].Reason != string(apperrors.CodeCellAlreadyRevealed) {
		t.Fatalf("unexpected flag event %+v", events[2])
	}
	if events[0].X != nil {
		t.Fatal("join event should carry no coordinates")
	}
}

func TestConcurrentMovesDeliverIdenticalOrder(t *testing.T) {
	r := newRoom(t)
	sessions := make([]*session.Session, 4)
	for i := range sessions {
		sessions[i] = join(t, r, fmt.Sprintf("player-%d", i))
	}
	for _, sess := range sessions {
		drain(sess)
	}

	var wg sync.WaitGroup
	for i, sess := range sessions {
		wg.Add(1)
		go func(i int, sess *session.Session) {
			defer wg.Done()
			for n := 0; n < 24; n++ {
				r.Flag(context.Background(), sess.ID(), i%4, 3)
			}
		}(i, sess)
	}
	wg.Wait()

	reference := drain(sessions[0])
	if len(reference) != 96 {
		t.Fatalf("frames = %d, want 96", len(reference))
	}
	for _, sess := range sessions[1:] {
		frames := drain(sess)
		if len(frames) != len(reference) {
			t.Fatalf("%s frames = %d, want %d", sess.ID(), len(frames), len(reference))
		}
		for i := range frames {
			if &frames[i].Cells[0] != &reference[i].Cells[0] {
				t.Fatalf("%s frame %d differs from reference order", sess.ID(), i)
			}
		}
	}
	if got := r.Snapshot(view.AudiencePlayers).MinesRemaining; got != 1 {
		t.Fatalf("mines remaining = %d, want 1 after even toggles", got)
	}
}

func TestLeaveDuringBroadcastIsSafe(t *testing.T) {
	r := newRoom(t)
	alice := join(t, r, "Alice")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		sess := join(t, r, fmt.Sprintf("guest-%d", i))
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.Leave(context.Background(), sess.ID())
		}()
		go func() {
			defer wg.Done()
			r.Flag(context.Background(), alice.ID(), 0, 3)
		}()
	}
	wg.Wait()
	if r.Players() != 1 {
		t.Fatalf("players = %d, want 1", r.Players())
	}
}
