package dto

import (
	"strings"
	"testing"
)

func TestValidateTextFields(t *testing.T) {
	cases := []struct {
		name    string
		fields  []TextField
		wantErr string // substring; "" = valid
	}{
		{
			name: "valid",
			fields: []TextField{
				{FieldName: "name", X: 100, Y: 200},
				{FieldName: "date", X: 0, Y: 0},
			},
		},
		{
			name:    "nama kosong",
			fields:  []TextField{{FieldName: "  ", X: 1, Y: 1}},
			wantErr: "field_name kosong",
		},
		{
			name: "duplikat case-insensitive",
			fields: []TextField{
				{FieldName: "Name", X: 1, Y: 1},
				{FieldName: "name", X: 2, Y: 2},
			},
			wantErr: "duplikat",
		},
		{
			name:    "x di luar bounds",
			fields:  []TextField{{FieldName: "name", X: 1000, Y: 10}},
			wantErr: "di luar bounds",
		},
		{
			name:    "y negatif",
			fields:  []TextField{{FieldName: "name", X: 10, Y: -1}},
			wantErr: "di luar bounds",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTextFields(tc.fields, 1000, 500)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("tidak mengharapkan error, dapat: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("err = %v, want substring %q", err, tc.wantErr)
			}
		})
	}
}

func TestParseTextFields_Roundtrip(t *testing.T) {
	in := []TextField{
		{FieldName: "name", X: 100, Y: 200, FontSize: 48, FontFamily: "Roboto", FontColor: "#112233", Align: "center"},
	}
	raw, err := MarshalTextFields(in)
	if err != nil {
		t.Fatalf("MarshalTextFields error: %v", err)
	}

	out := ParseTextFields(raw)
	if len(out) != 1 || out[0] != in[0] {
		t.Fatalf("roundtrip mismatch: %+v", out)
	}
}

func TestParseTextFields_BadJSON(t *testing.T) {
	if got := ParseTextFields([]byte("{not json")); got != nil {
		t.Fatalf("JSON rusak harus menghasilkan nil, dapat %+v", got)
	}
	if got := ParseTextFields(nil); len(got) != 0 {
		t.Fatalf("kolom kosong harus slice kosong, dapat %+v", got)
	}
}
