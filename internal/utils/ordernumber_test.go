package utils

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderNumber_Format(t *testing.T) {
	re := regexp.MustCompile(`^LPA-(\d{4})$`)

	for i := 0; i < 100; i++ {
		num := GenerateOrderNumber()
		m := re.FindStringSubmatch(num)
		require.NotNil(t, m, "unexpected order number %q", num)

		digits, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, digits, 1000)
		assert.LessOrEqual(t, digits, 9999)
	}
}
