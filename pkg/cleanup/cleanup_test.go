package cleanup_test

import (
	"errors"
	"testing"

	"github.com/limbo/levelup/pkg/cleanup"
	"github.com/stretchr/testify/assert"
)

func TestCleanUp(t *testing.T) {
	var order []string
	cleanup.Register(&cleanup.Job{Name: "pool", F: func() error {
		order = append(order, "pool")
		return nil
	}})
	cleanup.Register(&cleanup.Job{Name: "scheduler", F: func() error {
		order = append(order, "scheduler")
		return errors.New("still running")
	}})
	cleanup.Register(&cleanup.Job{Name: "server", F: func() error {
		order = append(order, "server")
		return nil
	}})

	err := cleanup.CleanUp()
	assert.Equal(t, []string{"server", "scheduler", "pool"}, order)
	assert.EqualError(t, err, "scheduler: still running")

	// jobs run once
	assert.NoError(t, cleanup.CleanUp())
	assert.Len(t, order, 3)
}
