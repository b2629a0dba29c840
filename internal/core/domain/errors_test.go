package domain_test

import (
	"errors"
	"testing"

	"github.com/hackeros/hbuild/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

// Sentinels are matched with errors.Is after context and metadata are
// attached. Metadata must go on a wrap of the sentinel, never on the
// sentinel itself: zerr.With clones its receiver, and a clone of a bare
// sentinel no longer unwraps to it.
func TestSentinels_MatchThroughWrapAndMetadata(t *testing.T) {
	sentinels := []error{
		domain.ErrNoConfig,
		domain.ErrNoSources,
		domain.ErrToolchain,
		domain.ErrCompile,
		domain.ErrLink,
		domain.ErrArchive,
		domain.ErrFolderNotFound,
	}

	for _, sentinel := range sentinels {
		err := zerr.Wrap(sentinel, "while building")
		err = zerr.With(err, "file", "main.c")
		err = zerr.With(err, "exit_code", 1)

		assert.ErrorIs(t, err, sentinel, sentinel.Error())
	}
}

func TestSentinels_AreDistinct(t *testing.T) {
	assert.False(t, errors.Is(domain.ErrCompile, domain.ErrLink))
	assert.False(t, errors.Is(domain.ErrNoConfig, domain.ErrNoSources))
}
