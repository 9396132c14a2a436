package draft

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anrdraft/draft-bot-discord/internal/entities"
	apperrors "github.com/anrdraft/draft-bot-discord/internal/errors"
	"github.com/anrdraft/draft-bot-discord/internal/repositories/drafts"
	"github.com/anrdraft/draft-bot-discord/internal/shuffle"
	"github.com/anrdraft/draft-bot-discord/internal/testutils"
)

type serviceFixture struct {
	svc      Service
	repo     drafts.Repository
	catalog  *fakeCatalog
	notifier *recordingNotifier
}

func newServiceFixture(t *testing.T, opts ...func(*ServiceConfig)) *serviceFixture {
	t.Helper()

	cat := newFakeCatalog()
	for _, side := range entities.Sides() {
		cat.setPool(side, entities.PoolIdentities, testutils.CreateTestPool(side, entities.PoolIdentities, 10))
		cat.setPool(side, entities.PoolCards, testutils.CreateTestPool(side, entities.PoolCards, 90))
	}

	repo := drafts.NewInMemoryRepository()
	notifier := newRecordingNotifier()

	cfg := &ServiceConfig{
		Repository: repo,
		Catalog:    cat,
		Notifier:   notifier,
		Shuffler:   shuffle.NewMockShuffler(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &serviceFixture{
		svc:      NewService(cfg),
		repo:     repo,
		catalog:  cat,
		notifier: notifier,
	}
}

func TestCreateDraft(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	draft, err := f.svc.CreateDraft(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, draft.ID, 4)
	assert.Equal(t, "alice", draft.CreatorID)
	assert.True(t, draft.HasPlayer("alice"))
	assert.False(t, draft.Started)
}

func TestCreateDraft_RegeneratesCollidingCode(t *testing.T) {
	f := newServiceFixture(t, func(cfg *ServiceConfig) {
		cfg.IDGenerator = &scriptedIDGen{codes: []string{"aaaa", "aaaa", "bbbb"}}
	})
	ctx := context.Background()

	first, err := f.svc.CreateDraft(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "aaaa", first.ID)

	second, err := f.svc.CreateDraft(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "bbbb", second.ID)
}

func TestCreateDraft_AlreadyDrafting(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateDraft(ctx, "alice")
	require.NoError(t, err)

	_, err = f.svc.CreateDraft(ctx, "alice")
	require.Error(t, err)
	assert.True(t, apperrors.IsAlreadyDrafting(err))
}

func TestJoinDraft(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	draft, err := f.svc.CreateDraft(ctx, "alice")
	require.NoError(t, err)

	joined, err := f.svc.JoinDraft(ctx, draft.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, 2, joined.NumPlayers())

	// The creator hears about the join
	texts := f.notifier.textsFor("alice")
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "<@bob> has joined your draft")
}

func TestJoinDraft_Errors(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	draft, err := f.svc.CreateDraft(ctx, "alice")
	require.NoError(t, err)

	_, err = f.svc.JoinDraft(ctx, "zzzz", "bob")
	assert.True(t, apperrors.IsNotFound(err))

	_, err = f.svc.JoinDraft(ctx, draft.ID, "alice")
	assert.True(t, apperrors.IsAlreadyJoined(err))

	other, err := f.svc.CreateDraft(ctx, "carol")
	require.NoError(t, err)
	_, err = f.svc.JoinDraft(ctx, draft.ID, "carol")
	assert.True(t, apperrors.IsAlreadyDrafting(err))

	_, err = f.svc.JoinDraft(ctx, other.ID, "bob")
	require.NoError(t, err)
	require.NoError(t, f.svc.StartDraft(ctx, other.ID, "carol"))
	_, err = f.svc.JoinDraft(ctx, other.ID, "dave")
	assert.True(t, apperrors.IsAlreadyStarted(err))
}

func TestLeaveDraft(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	draft, err := f.svc.CreateDraft(ctx, "alice")
	require.NoError(t, err)
	_, err = f.svc.JoinDraft(ctx, draft.ID, "bob")
	require.NoError(t, err)

	require.NoError(t, f.svc.LeaveDraft(ctx, "bob"))
	assert.Equal(t, 1, draft.NumPlayers())

	// Bob is free to join another draft
	other, err := f.svc.CreateDraft(ctx, "carol")
	require.NoError(t, err)
	_, err = f.svc.JoinDraft(ctx, other.ID, "bob")
	require.NoError(t, err)
}

func TestLeaveDraft_NotEnrolled(t *testing.T) {
	f := newServiceFixture(t)

	err := f.svc.LeaveDraft(context.Background(), "mallory")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotEnrolled(err))
}

func TestLeaveDraft_CreatorLeavingCancels(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	draft, err := f.svc.CreateDraft(ctx, "alice")
	require.NoError(t, err)
	_, err = f.svc.JoinDraft(ctx, draft.ID, "bob")
	require.NoError(t, err)

	require.NoError(t, f.svc.LeaveDraft(ctx, "alice"))

	_, err = f.repo.Get(ctx, draft.ID)
	require.Error(t, err)

	texts := f.notifier.textsFor("bob")
	require.NotEmpty(t, texts)
	assert.Contains(t, texts[len(texts)-1], "was cancelled by <@alice>")

	// Both players are free again
	_, err = f.svc.CreateDraft(ctx, "bob")
	require.NoError(t, err)
}

func TestCancelDraft(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	draft, err := f.svc.CreateDraft(ctx, "alice")
	require.NoError(t, err)
	_, err = f.svc.JoinDraft(ctx, draft.ID, "bob")
	require.NoError(t, err)

	err = f.svc.CancelDraft(ctx, draft.ID, "bob")
	require.Error(t, err)
	assert.True(t, apperrors.IsPermissionDenied(err))

	require.NoError(t, f.svc.CancelDraft(ctx, draft.ID, "alice"))
	_, err = f.repo.Get(ctx, draft.ID)
	require.Error(t, err)
}

func TestCancelDraft_AfterStart(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	draft, err := f.svc.CreateDraft(ctx, "alice")
	require.NoError(t, err)
	_, err = f.svc.JoinDraft(ctx, draft.ID, "bob")
	require.NoError(t, err)
	require.NoError(t, f.svc.StartDraft(ctx, draft.ID, "alice"))

	require.NoError(t, f.svc.CancelDraft(ctx, draft.ID, "alice"))
	_, err = f.repo.GetByParticipant(ctx, "bob")
	require.Error(t, err)
}

func TestStartDraft(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	draft, err := f.svc.CreateDraft(ctx, "alice")
	require.NoError(t, err)
	_, err = f.svc.JoinDraft(ctx, draft.ID, "bob")
	require.NoError(t, err)

	require.NoError(t, f.svc.StartDraft(ctx, draft.ID, "alice"))
	assert.True(t, draft.Started)

	// Every player has a seat, a welcome, and an open first pack
	seats := map[int]bool{}
	for _, participantID := range draft.PlayerIDs() {
		seats[draft.SeatOf(participantID)] = true
		state := draft.Player(participantID)
		assert.True(t, state.HasOpenPack)
		require.NotEmpty(t, state.Inbox)
		assert.Contains(t, f.notifier.textsFor(participantID),
			"Welcome to the draft! Here is your first pack. Good luck!")
	}
	assert.Len(t, seats, 2)
}

func TestStartDraft_Errors(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	draft, err := f.svc.CreateDraft(ctx, "alice")
	require.NoError(t, err)

	err = f.svc.StartDraft(ctx, "zzzz", "alice")
	assert.True(t, apperrors.IsNotFound(err))

	err = f.svc.StartDraft(ctx, draft.ID, "bob")
	assert.True(t, apperrors.IsPermissionDenied(err))

	require.NoError(t, f.svc.StartDraft(ctx, draft.ID, "alice"))
	err = f.svc.StartDraft(ctx, draft.ID, "alice")
	assert.True(t, apperrors.IsAlreadyStarted(err))
}

func TestStartDraft_CatalogDownLeavesDraftPending(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	draft, err := f.svc.CreateDraft(ctx, "alice")
	require.NoError(t, err)

	f.catalog.err = errors.New("catalog down")
	err = f.svc.StartDraft(ctx, draft.ID, "alice")
	require.Error(t, err)

	assert.False(t, draft.Started)
	assert.Empty(t, draft.Player("alice").Packs)

	// Recovers once the catalog is back
	f.catalog.err = nil
	require.NoError(t, f.svc.StartDraft(ctx, draft.ID, "alice"))
}

func TestListPicks(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	draft, err := f.svc.CreateDraft(ctx, "alice")
	require.NoError(t, err)
	_, err = f.svc.JoinDraft(ctx, draft.ID, "bob")
	require.NoError(t, err)
	require.NoError(t, f.svc.StartDraft(ctx, draft.ID, "alice"))

	before := len(f.notifier.textsFor("alice"))
	require.NoError(t, f.svc.ListPicks(ctx, "alice"))

	texts := f.notifier.textsFor("alice")
	require.Len(t, texts, before+3)
	assert.Equal(t, "Here are your picks so far:", texts[before])
	assert.Contains(t, texts[before+1], "Corp:")
	assert.Contains(t, texts[before+2], "Runner:")
}

func TestListPicks_NotEnrolled(t *testing.T) {
	f := newServiceFixture(t)

	err := f.svc.ListPicks(context.Background(), "mallory")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotEnrolled(err))
}

func TestFormatPicks(t *testing.T) {
	// The identity boundary follows the actual identities drafted, which
	// can be fewer than a full identity pack when the pool ran short
	got := formatPicks("Corp:", []string{"Id One", "Id Two", "Card One", "Card Two"}, 2)
	assert.Equal(t, "```Corp:\n\n1 Id One\n1 Id Two\n3 Card One\n3 Card Two```", got)

	assert.Equal(t, "```Runner:\n\n```", formatPicks("Runner:", nil, 0))
}

func TestDumpState(t *testing.T) {
	dir := t.TempDir()
	f := newServiceFixture(t, func(cfg *ServiceConfig) {
		cfg.OwnerID = "owner"
		cfg.DumpDir = dir
	})
	ctx := context.Background()

	draft, err := f.svc.CreateDraft(ctx, "alice")
	require.NoError(t, err)

	path, err := f.svc.DumpState(ctx, "owner")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var dump struct {
		Drafts []struct {
			ID      string `json:"id"`
			Players []struct {
				ParticipantID string `json:"participant_id"`
			} `json:"players"`
		} `json:"drafts"`
	}
	require.NoError(t, json.Unmarshal(data, &dump))
	require.Len(t, dump.Drafts, 1)
	assert.Equal(t, draft.ID, dump.Drafts[0].ID)
	require.Len(t, dump.Drafts[0].Players, 1)
	assert.Equal(t, "alice", dump.Drafts[0].Players[0].ParticipantID)
}

func TestDumpState_PermissionDenied(t *testing.T) {
	f := newServiceFixture(t, func(cfg *ServiceConfig) {
		cfg.OwnerID = "owner"
	})

	_, err := f.svc.DumpState(context.Background(), "alice")
	require.Error(t, err)
	assert.True(t, apperrors.IsPermissionDenied(err))
}

func TestDumpState_DisabledWithoutOwner(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.DumpState(context.Background(), "anyone")
	require.Error(t, err)
	assert.True(t, apperrors.IsPermissionDenied(err))
}

func TestNotificationFailureDoesNotBlockJoin(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	draft, err := f.svc.CreateDraft(ctx, "alice")
	require.NoError(t, err)

	f.notifier.err = errors.New("dm closed")
	joined, err := f.svc.JoinDraft(ctx, draft.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, 2, joined.NumPlayers())
}
