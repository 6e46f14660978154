package main

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLogLevelFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, logrus.WarnLevel, logLevelFor(false))
	require.Equal(t, logrus.DebugLevel, logLevelFor(true))
}
