package protocal

import (
	"testing"

	"todo-api/configs"
	"todo-api/internal/adapters/output/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepositoryMemory(t *testing.T) {
	conf := &configs.Config{Storage: configs.Storage{Driver: configs.StorageMemory}}

	repo, closeRepo, err := newRepository(conf)
	require.NoError(t, err)
	defer closeRepo()
	assert.IsType(t, &memory.TodoRepository{}, repo)
}

func TestNewRepositoryUnknownDriver(t *testing.T) {
	conf := &configs.Config{Storage: configs.Storage{Driver: "cassandra"}}

	_, _, err := newRepository(conf)
	assert.EqualError(t, err, `unknown storage driver "cassandra"`)
}
