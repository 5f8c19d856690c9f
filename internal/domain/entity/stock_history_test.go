package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/stocktrack-api/internal/domain/entity"
)

func TestValidReason(t *testing.T) {
	cases := []struct {
		reason string
		want   bool
	}{
		{entity.ReasonRestock, true},
		{entity.ReasonSale, true},
		{entity.ReasonCorrection, true},
		{entity.ReasonOther, true},
		{"", false},
		{"donacion", false},
		{"RESTOCK", false}, // sensible a mayúsculas
		{"sale ", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, entity.ValidReason(tc.reason), "reason=%q", tc.reason)
	}
}
