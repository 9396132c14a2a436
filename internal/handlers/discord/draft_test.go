package discord

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/anrdraft/draft-bot-discord/internal/errors"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "already drafting",
			err:  apperrors.AlreadyDrafting("enrolled elsewhere"),
			want: "You are already in a draft. Leave it before creating or joining another.",
		},
		{
			name: "already joined",
			err:  apperrors.AlreadyJoined("duplicate join"),
			want: "You cannot join the same draft more than once.",
		},
		{
			name: "already started",
			err:  apperrors.AlreadyStarted("too late"),
			want: "That draft has already started.",
		},
		{
			name: "not found",
			err:  apperrors.NotFoundf("draft '%s' does not exist", "zzzz"),
			want: "That draft does not exist.",
		},
		{
			name: "not enrolled",
			err:  apperrors.NotEnrolled("no draft"),
			want: "You are not enrolled in a draft.",
		},
		{
			name: "permission denied",
			err:  apperrors.PermissionDenied("creator only"),
			want: "You are not allowed to do that.",
		},
		{
			name: "no open pack",
			err:  apperrors.NoOpenPack("waiting"),
			want: "You have no open pack to pick from.",
		},
		{
			name: "card not in pack",
			err:  apperrors.CardNotInPackf("card '%s' is not in your open pack", "01001"),
			want: "That card is not in your open pack.",
		},
		{
			name: "catalog unavailable",
			err:  apperrors.CatalogUnavailable("nrdb down"),
			want: "Card data is unavailable right now. Please try again later.",
		},
		{
			name: "notification failed",
			err:  apperrors.NotificationFailed("dm closed"),
			want: "Could not DM you. Make sure your DMs are open.",
		},
		{
			name: "invalid argument passes through",
			err:  apperrors.InvalidArgument("draft ID is required"),
			want: "draft ID is required",
		},
		{
			name: "foreign error stays generic",
			err:  errors.New("redis: connection pool timeout"),
			want: "Something went wrong. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userMessage(tt.err))
		})
	}
}
