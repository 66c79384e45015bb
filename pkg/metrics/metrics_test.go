package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordGeneration(t *testing.T) {
	before := testutil.ToFloat64(GenerationTotal.WithLabelValues(PathOffline))
	RecordGeneration(PathOffline)
	after := testutil.ToFloat64(GenerationTotal.WithLabelValues(PathOffline))
	assert.Equal(t, before+1, after)
}

func TestRecordProviderCall(t *testing.T) {
	before := testutil.ToFloat64(ProviderCalls.WithLabelValues("test-model", "error"))
	RecordProviderCall("test-model", "error", 150*time.Millisecond)
	after := testutil.ToFloat64(ProviderCalls.WithLabelValues("test-model", "error"))
	assert.Equal(t, before+1, after)
	assert.Equal(t, 1, testutil.CollectAndCount(ProviderCallDuration, "hustle_provider_call_duration_seconds"))
}
