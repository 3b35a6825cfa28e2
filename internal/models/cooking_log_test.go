package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCookingLogValidate(t *testing.T) {
	tests := []struct {
		name    string
		log     CookingLog
		wantErr bool
	}{
		{"valid", CookingLog{Rating: 5, Outcome: OutcomeSuccess}, false},
		{"lowest rating", CookingLog{Rating: 1, Outcome: OutcomeFailed}, false},
		{"rating zero", CookingLog{Rating: 0, Outcome: OutcomeSuccess}, true},
		{"rating six", CookingLog{Rating: 6, Outcome: OutcomePartial}, true},
		{"unknown outcome", CookingLog{Rating: 3, Outcome: "BURNT"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.log.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCookingLog)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCookingTimeRangeValid(t *testing.T) {
	assert.True(t, CookingTime15To30.Valid())
	assert.False(t, CookingTimeRange("FOREVER").Valid())
}
