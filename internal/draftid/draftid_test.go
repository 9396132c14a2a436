package draftid_test

import (
	"testing"

	"github.com/anrdraft/draft-bot-discord/internal/draftid"
	"github.com/stretchr/testify/assert"
)

func TestRandomGenerator_New(t *testing.T) {
	gen := draftid.NewRandomGenerator()

	for i := 0; i < 100; i++ {
		code := gen.New()
		assert.Len(t, code, draftid.Length)
		for _, r := range code {
			assert.True(t, r >= 'a' && r <= 'z', "code %q contains %q", code, r)
		}
	}
}
