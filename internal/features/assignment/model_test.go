package assignment

import (
	"testing"
	"time"
)

func TestEffectivelyActive(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name       string
		assignment UserSubRole
		want       bool
	}{
		{name: "Active Without Expiry", assignment: UserSubRole{IsActive: true}, want: true},
		{name: "Active Before Expiry", assignment: UserSubRole{IsActive: true, ExpiresAt: &future}, want: true},
		{name: "Active But Expired", assignment: UserSubRole{IsActive: true, ExpiresAt: &past}, want: false},
		{name: "Inactive", assignment: UserSubRole{IsActive: false}, want: false},
		{name: "Inactive With Future Expiry", assignment: UserSubRole{IsActive: false, ExpiresAt: &future}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.assignment.EffectivelyActive(now); got != tt.want {
				t.Errorf("EffectivelyActive() = %v, want %v", got, tt.want)
			}
		})
	}
}
