package cowtrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestPointFrequency(t *testing.T) {
	defer TestPointResetAll()

	enabled, _ := TestPointIsEnabled(testPointInvalid)
	assert.False(t, enabled)

	TestPointEnable(testPointFailPublish, 3)
	enabled, freq := TestPointIsEnabled(testPointFailPublish)
	assert.True(t, enabled)
	assert.Equal(t, 3, freq)
	enabled, _ = TestPointIsEnabled(testPointInvalid)
	assert.True(t, enabled, "any enabled test point")

	var fired []bool
	for i := 0; i < 6; i++ {
		fired = append(fired, TestPointExecute(testPointFailPublish))
	}
	assert.Equal(t, []bool{false, false, true, false, false, true}, fired)

	TestPointDisable(testPointFailPublish)
	assert.False(t, TestPointExecute(testPointFailPublish))
	enabled, _ = TestPointIsEnabled(testPointInvalid)
	assert.False(t, enabled)

	assert.False(t, TestPointExecute(testPointMax))
	TestPointEnable(testPointFailDecode, 0)
	enabled, _ = TestPointIsEnabled(testPointFailDecode)
	assert.False(t, enabled, "zero frequency is ignored")
}
