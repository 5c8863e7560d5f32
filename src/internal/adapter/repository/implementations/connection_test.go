package implementations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolOptionsDefaults(t *testing.T) {
	got := PoolOptions{}.withDefaults()

	assert.Equal(t, 30, got.MaxOpenConns)
	assert.Equal(t, 20, got.MaxIdleConns)
	assert.Equal(t, 5*time.Minute, got.ConnMaxIdleTime)
	assert.Equal(t, 15*time.Minute, got.ConnMaxLifetime)
}

func TestPoolOptionsCapsIdleAtOpen(t *testing.T) {
	got := PoolOptions{MaxOpenConns: 4, MaxIdleConns: 10}.withDefaults()

	assert.Equal(t, 4, got.MaxOpenConns)
	assert.Equal(t, 4, got.MaxIdleConns)
}
