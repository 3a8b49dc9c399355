package aethel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/aethel"
	"github.com/stretchr/testify/assert"
)

func TestNopReporter(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() {
		aethel.NopReporter{}.Report(context.Background(), errors.New("x"), nil)
	})
}
