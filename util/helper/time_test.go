package helper_util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper_util "github.com/medicore-hms/hmsctl/util/helper"
)

func TestEpochMillisRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	got, err := helper_util.ParseEpochMillis(helper_util.EpochMillis(now))
	require.NoError(t, err)
	assert.True(t, got.Equal(now))
}

func TestParseEpochMillisRejectsGarbage(t *testing.T) {
	_, err := helper_util.ParseEpochMillis("not-a-number")
	assert.Error(t, err)

	_, err = helper_util.ParseEpochMillis("")
	assert.Error(t, err)
}

func TestListParamsEncode(t *testing.T) {
	assert.Equal(t, "", helper_util.ListParams{}.Encode())

	p := helper_util.ListParams{Page: 2, Limit: 25, Query: "smith"}
	assert.Equal(t, "?limit=25&page=2&q=smith", p.Encode())
}
