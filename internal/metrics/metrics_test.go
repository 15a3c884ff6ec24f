package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Mutations.WithLabelValues("config", "update").Inc()
	m.Entities.WithLabelValues("folder").Set(3)

	assert.Equal(t, 1.0, promtest.ToFloat64(m.Mutations.WithLabelValues("config", "update")))
	assert.Equal(t, 3.0, promtest.ToFloat64(m.Entities.WithLabelValues("folder")))

	count, err := promtest.GatherAndCount(reg)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestGlobal_IsSingleton(t *testing.T) {
	assert.Same(t, Global(), Global())
}
