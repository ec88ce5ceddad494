package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTourReaction_OverallIsFlooredMean(t *testing.T) {
	r := NewTourReaction("nice route", 7, 8, 9, 10, 1, 2)
	assert.Equal(t, 8, r.OverallCriteria) // 34/4 = 8.5, floored

	r = NewTourReaction("", 1, 1, 1, 2, 1, 2)
	assert.Equal(t, 1, r.OverallCriteria)

	r = NewTourReaction("", 10, 10, 10, 10, 1, 2)
	assert.Equal(t, 10, r.OverallCriteria)
}
