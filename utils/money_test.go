package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	inr := FormatAmount(1299, "inr")
	assert.Contains(t, inr, "1,299.00")
	assert.NotContains(t, inr, "INR 1")

	assert.Equal(t, "QQQ 12.50", FormatAmount(12.5, "qqq"))
	assert.Equal(t, "12.50", FormatMoney(12.5))
}
