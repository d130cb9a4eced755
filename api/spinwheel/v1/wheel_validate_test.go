package v1

import (
	"strings"
	"testing"
)

func TestSessionRequestValidate(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"abc-123_X", false},
		{"", true},
		{"bad id!", true},
		{strings.Repeat("a", 64), false},
		{strings.Repeat("a", 65), true},
	}
	for _, tt := range tests {
		err := (&SessionRequest{Id: tt.id}).Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%q) err=%v, wantErr=%v", tt.id, err, tt.wantErr)
		}
	}
}

func TestCreateSessionRequestValidate(t *testing.T) {
	// wheel_id 为空表示默认转盘
	if err := (&CreateSessionRequest{}).Validate(); err != nil {
		t.Errorf("空 wheel_id: %v", err)
	}
	if err := (&CreateSessionRequest{WheelId: "cylinder"}).Validate(); err != nil {
		t.Errorf("cylinder: %v", err)
	}
	err := (&CreateSessionRequest{WheelId: "bad id!"}).ValidateAll()
	multi, ok := err.(CreateSessionRequestMultiError)
	if !ok || len(multi.AllErrors()) != 1 {
		t.Fatalf("err=%v", err)
	}
	if ve := multi.AllErrors()[0].(CreateSessionRequestValidationError); ve.Field() != "WheelId" {
		t.Errorf("field=%s", ve.Field())
	}
}
