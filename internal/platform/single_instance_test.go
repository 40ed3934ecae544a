package platform

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortFromNameIsStableAndInRange(t *testing.T) {
	port := portFromName("Pomodoro")
	assert.Equal(t, port, portFromName("Pomodoro"))
	assert.GreaterOrEqual(t, port, minPort)
	assert.LessOrEqual(t, port, maxPort)
	assert.Equal(t, fmt.Sprintf("127.0.0.1:%d", port), InstanceAddress("Pomodoro"))
}

func TestSecondAcquireFails(t *testing.T) {
	name := fmt.Sprintf("pomodoro-test-%d", time.Now().UnixNano())

	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.Equal(t, InstanceAddress(name), guard.Address())

	_, err = AcquireSingleInstance(name)
	require.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestNilGuard(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
}
