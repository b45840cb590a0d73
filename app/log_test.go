package app_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"glquad/app"
)

func TestErrorCounterCountsOnlyErrors(t *testing.T) {
	var buf bytes.Buffer
	counter := app.NewErrorCounter(slog.NewTextHandler(&buf, nil))
	logger := slog.New(counter)

	logger.Info("milestone")
	logger.Warn("best effort failed")
	assert.Zero(t, counter.Errors())

	logger.Error("stage failed")
	logger.Error("another stage failed")
	assert.Equal(t, int64(2), counter.Errors())
	assert.Contains(t, buf.String(), "stage failed")
}

func TestErrorCounterSharedAcrossWith(t *testing.T) {
	var buf bytes.Buffer
	counter := app.NewErrorCounter(slog.NewTextHandler(&buf, nil))
	logger := slog.New(counter).With("component", "renderer")

	logger.Error("stage failed")
	assert.Equal(t, int64(1), counter.Errors())
}
