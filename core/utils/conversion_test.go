package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat(t *testing.T) {
	assert.Equal(t, 1.5, ToFloat("1.5"))
	assert.Equal(t, 2.0, ToFloat(" 2 "))
	assert.Equal(t, 3.0, ToFloat(3))
	assert.Equal(t, 0.5, ToFloat(0.5))
	assert.Equal(t, 4.0, ToFloat([]byte("4")))
	assert.Equal(t, 0.0, ToFloat("not a number"))
	assert.Equal(t, 0.0, ToFloat(""))
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 42, ToInt("42"))
	assert.Equal(t, 7, ToInt(" 7 "))
	assert.Equal(t, 3, ToInt(int64(3)))
	assert.Equal(t, 2, ToInt(2.9))
	assert.Equal(t, 0, ToInt("abc"))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "hello", ToString("hello"))
	assert.Equal(t, "bytes", ToString([]byte("bytes")))
	assert.Equal(t, "5", ToString(5))
}
