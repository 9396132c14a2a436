package draft

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anrdraft/draft-bot-discord/internal/entities"
	apperrors "github.com/anrdraft/draft-bot-discord/internal/errors"
	"github.com/anrdraft/draft-bot-discord/internal/repositories/drafts"
	"github.com/anrdraft/draft-bot-discord/internal/shuffle"
	"github.com/anrdraft/draft-bot-discord/internal/testutils"
)

// engineFixture is a started two-player draft with small deterministic
// pools: two identities and six cards per player per side
type engineFixture struct {
	svc      *service
	repo     drafts.Repository
	notifier *recordingNotifier
	draft    *entities.Draft
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()

	cat := newFakeCatalog()
	for _, side := range entities.Sides() {
		cat.setPool(side, entities.PoolIdentities, testutils.CreateTestPool(side, entities.PoolIdentities, 4))
		cat.setPool(side, entities.PoolCards, testutils.CreateTestPool(side, entities.PoolCards, 12))
	}

	repo := drafts.NewInMemoryRepository()
	notifier := newRecordingNotifier()
	svc := NewService(&ServiceConfig{
		Repository: repo,
		Catalog:    cat,
		Notifier:   notifier,
		Shuffler:   shuffle.NewMockShuffler(),
	}).(*service)

	ctx := context.Background()
	draft, err := svc.CreateDraft(ctx, "alice")
	require.NoError(t, err)
	_, err = svc.JoinDraft(ctx, draft.ID, "bob")
	require.NoError(t, err)
	require.NoError(t, svc.StartDraft(ctx, draft.ID, "alice"))

	return &engineFixture{svc: svc, repo: repo, notifier: notifier, draft: draft}
}

func (f *engineFixture) openCode(participantID string) string {
	state := f.draft.Player(participantID)
	if state == nil || !state.HasOpenPack || len(state.Inbox) == 0 {
		return ""
	}
	return state.Inbox[0][0].Code
}

func TestSubmitPick_FirstPickPassesRemainder(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	bobBefore := len(f.draft.Player("bob").Inbox)

	code := f.openCode("alice")
	require.NotEmpty(t, code)
	card, err := f.svc.SubmitPick(ctx, "alice", code)
	require.NoError(t, err)
	assert.Equal(t, code, card.Code)

	alice := f.draft.Player("alice")
	assert.False(t, alice.HasOpenPack)
	assert.Len(t, alice.Picks[card.Side], 1)
	assert.Equal(t, 1, alice.IdentityPicks[card.Side])

	// The one-card remainder of alice's identity pack lands in bob's inbox
	bob := f.draft.Player("bob")
	require.Len(t, bob.Inbox, bobBefore+1)
	assert.Len(t, bob.Inbox[len(bob.Inbox)-1], 1)
}

func TestSubmitPick_PassFollowsSeatsNotJoinOrder(t *testing.T) {
	cat := newFakeCatalog()
	for _, side := range entities.Sides() {
		cat.setPool(side, entities.PoolIdentities, testutils.CreateTestPool(side, entities.PoolIdentities, 6))
		cat.setPool(side, entities.PoolCards, testutils.CreateTestPool(side, entities.PoolCards, 18))
	}

	repo := drafts.NewInMemoryRepository()
	shuffler := shuffle.NewMockShuffler()
	svc := NewService(&ServiceConfig{
		Repository: repo,
		Catalog:    cat,
		Notifier:   newRecordingNotifier(),
		Shuffler:   shuffler,
	}).(*service)

	ctx := context.Background()
	draft, err := svc.CreateDraft(ctx, "alice")
	require.NoError(t, err)
	_, err = svc.JoinDraft(ctx, draft.ID, "bob")
	require.NoError(t, err)
	_, err = svc.JoinDraft(ctx, draft.ID, "carol")
	require.NoError(t, err)

	// Seat the players out of join order: alice 2, bob 0, carol 1
	shuffler.QueuePerm([]int{2, 0, 1})
	require.NoError(t, svc.StartDraft(ctx, draft.ID, "alice"))
	require.Equal(t, 2, draft.SeatOf("alice"))
	require.Equal(t, 0, draft.SeatOf("bob"))
	require.Equal(t, 1, draft.SeatOf("carol"))

	inboxes := func() map[string]int {
		counts := make(map[string]int)
		for _, id := range draft.PlayerIDs() {
			counts[id] = len(draft.Player(id).Inbox)
		}
		return counts
	}

	// Alice occupies seat 2, so her remainder wraps to seat 0: bob, the
	// previous player in join order, not carol, the next one
	before := inboxes()
	_, err = svc.SubmitPick(ctx, "alice", draft.Player("alice").Inbox[0][0].Code)
	require.NoError(t, err)
	after := inboxes()
	assert.Equal(t, before["bob"]+1, after["bob"])
	assert.Equal(t, before["carol"], after["carol"])

	// Bob (seat 0) passes to carol (seat 1)
	before = after
	_, err = svc.SubmitPick(ctx, "bob", draft.Player("bob").Inbox[0][0].Code)
	require.NoError(t, err)
	after = inboxes()
	assert.Equal(t, before["carol"]+1, after["carol"])

	// Carol (seat 1) passes to alice (seat 2)
	before = after
	_, err = svc.SubmitPick(ctx, "carol", draft.Player("carol").Inbox[0][0].Code)
	require.NoError(t, err)
	after = inboxes()
	assert.Equal(t, before["alice"]+1, after["alice"])
}

func TestSubmitPick_NoOpenPackAfterPicking(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	_, err := f.svc.SubmitPick(ctx, "alice", f.openCode("alice"))
	require.NoError(t, err)

	// Alice is now waiting on bob's pass
	_, err = f.svc.SubmitPick(ctx, "alice", "anything")
	require.Error(t, err)
	assert.True(t, apperrors.IsNoOpenPack(err))
}

func TestSubmitPick_UnknownCardLeavesStateUntouched(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	alice := f.draft.Player("alice")
	inboxBefore := len(alice.Inbox)
	packBefore := len(alice.Inbox[0])
	picksBefore := len(alice.Picks[entities.SideCorp]) + len(alice.Picks[entities.SideRunner])

	_, err := f.svc.SubmitPick(ctx, "alice", "no-such-card")
	require.Error(t, err)
	assert.True(t, apperrors.IsCardNotInPack(err))

	assert.True(t, alice.HasOpenPack)
	assert.Len(t, alice.Inbox, inboxBefore)
	assert.Len(t, alice.Inbox[0], packBefore)
	assert.Equal(t, picksBefore, len(alice.Picks[entities.SideCorp])+len(alice.Picks[entities.SideRunner]))
}

func TestSubmitPick_NotEnrolled(t *testing.T) {
	f := newEngineFixture(t)

	_, err := f.svc.SubmitPick(context.Background(), "mallory", "whatever")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotEnrolled(err))
}

func TestDraft_RunsToCompletion(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	players := []string{"alice", "bob"}

	picked := make(map[string][]string)
	for rounds := 0; rounds < 200; rounds++ {
		if _, err := f.repo.Get(ctx, f.draft.ID); err != nil {
			break
		}

		progressed := false
		for _, participantID := range players {
			code := f.openCode(participantID)
			if code == "" {
				continue
			}
			card, err := f.svc.SubmitPick(ctx, participantID, code)
			require.NoError(t, err)
			picked[participantID] = append(picked[participantID], card.Code)
			progressed = true
		}
		require.True(t, progressed, "draft stalled with no open packs")
	}

	// The registry forgets the draft and frees both players
	_, err := f.repo.Get(ctx, f.draft.ID)
	require.Error(t, err)
	_, err = f.repo.GetByParticipant(ctx, "alice")
	require.Error(t, err)

	// 2 identities and 6 cards per side, per player
	perPlayer := 2 * (2 + 6)
	seen := make(map[string]bool)
	for _, participantID := range players {
		require.Len(t, picked[participantID], perPlayer)
		for _, code := range picked[participantID] {
			require.False(t, seen[code], "card %s picked twice", code)
			seen[code] = true
		}
	}
	assert.Len(t, seen, 2*perPlayer)

	for _, participantID := range players {
		texts := f.notifier.textsFor(participantID)
		require.NotEmpty(t, texts)
		assert.Contains(t, texts, "The draft is complete! Here are your picks:")

		// Each side drafted two identities and six playsets; the single
		// prefix must track the identities actually drafted, not assume a
		// full identity pack
		var corpBlock string
		for _, text := range texts {
			if strings.HasPrefix(text, "```Corp:") {
				corpBlock = text
			}
		}
		require.NotEmpty(t, corpBlock)
		assert.Equal(t, 2, strings.Count(corpBlock, "\n1 "))
		assert.Equal(t, 6, strings.Count(corpBlock, "\n3 "))
	}
}

func TestSubmitPick_DeliversArrivingPacks(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	// Opening hands: each player saw their first pack of two identities
	require.Len(t, f.notifier.cardsFor("alice"), 2)
	require.Len(t, f.notifier.cardsFor("bob"), 2)

	// Both pick; the passed single-card remainders open immediately
	_, err := f.svc.SubmitPick(ctx, "alice", f.openCode("alice"))
	require.NoError(t, err)
	_, err = f.svc.SubmitPick(ctx, "bob", f.openCode("bob"))
	require.NoError(t, err)

	assert.Len(t, f.notifier.cardsFor("alice"), 3)
	assert.Len(t, f.notifier.cardsFor("bob"), 3)
	assert.True(t, f.draft.Player("alice").HasOpenPack)
	assert.True(t, f.draft.Player("bob").HasOpenPack)
}
