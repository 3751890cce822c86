package excel

import (
	"errors"
	"testing"

	"weldwatch/app/apperr"
)

func TestParseFileName(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantModel  string
		wantPartID string
		wantErr    bool
	}{
		{name: "typical", in: "ABC123_toolX_99.xlsx", wantModel: "ABC123", wantPartID: "99"},
		{name: "model run stops at underscore", in: "a1_b2_3.xlsx", wantModel: "A1", wantPartID: "3"},
		{name: "lowercase model upper-cased", in: "abc_7.xlsx", wantModel: "ABC", wantPartID: "7"},
		{name: "no underscore keeps whole base", in: "ABC.xlsx", wantModel: "ABC", wantPartID: "ABC"},
		{name: "empty part id", in: "ABC_.xlsx", wantErr: true},
		{name: "no model run", in: "-foo_1.xlsx", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := ParseFileName(tt.in)
			if tt.wantErr {
				if !errors.Is(err, apperr.ErrValidation) {
					t.Fatalf("err = %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if info.Model != tt.wantModel || info.PartID != tt.wantPartID {
				t.Fatalf("got %+v, want model=%s partId=%s", info, tt.wantModel, tt.wantPartID)
			}
		})
	}
}

func TestParseImageName(t *testing.T) {
	info, err := ParseImageName("shot_C7_P77_final.bmp")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if info.RobotName != "C7" || info.Position != "P77" {
		t.Fatalf("got %+v, want C7/P77", info)
	}

	if _, err := ParseImageName("no_tokens_here.bmp"); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}
