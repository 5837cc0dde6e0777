package service

import (
	"strings"
	"testing"
)

func TestParseAttendeeCSV_HeaderAliases(t *testing.T) {
	cases := []struct {
		name   string
		csv    string
		wantOK int
	}{
		{
			name:   "header kanonik",
			csv:    "name,student_id\nBudi,12345\n",
			wantOK: 1,
		},
		{
			name:   "alias nama & nim",
			csv:    "Nama,NIM\nBudi,12345\n",
			wantOK: 1,
		},
		{
			name:   "alias full name + id",
			csv:    "Full Name,ID,Email\nBudi,12345,budi@kampus.ac.id\n",
			wantOK: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, rowErrs, err := ParseAttendeeCSV([]byte(tc.csv), "")
			if err != nil {
				t.Fatalf("ParseAttendeeCSV error: %v", err)
			}
			if len(rowErrs) != 0 {
				t.Fatalf("tidak mengharapkan row error, dapat: %+v", rowErrs)
			}
			if len(rows) != tc.wantOK {
				t.Fatalf("rows = %d, want %d", len(rows), tc.wantOK)
			}
		})
	}
}

func TestParseAttendeeCSV_MissingRequiredHeader(t *testing.T) {
	_, _, err := ParseAttendeeCSV([]byte("name,email\nBudi,budi@x.id\n"), "")
	if err == nil {
		t.Fatal("CSV tanpa student_id harus error")
	}
}

func TestParseAttendeeCSV_Empty(t *testing.T) {
	_, _, err := ParseAttendeeCSV(nil, "")
	if err != ErrEmptyCSV {
		t.Fatalf("err = %v, want ErrEmptyCSV", err)
	}
}

func TestParseAttendeeCSV_RowErrorsDoNotAbort(t *testing.T) {
	csv := strings.Join([]string{
		"name,student_id,email,role",
		"Budi,111,budi@x.id,student",    // ok
		",222,x@x.id,student",           // name kosong
		"Cici,,c@x.id,student",          // student_id kosong
		"Dedi,333,bukan-email,student",  // email invalid
		"Euis,444,e@x.id,dosen",         // role invalid
		"Fafa,111,f@x.id,management",    // duplikat dalam file
		"Gina,555,g@x.id,management",    // ok
	}, "\n")

	rows, rowErrs, err := ParseAttendeeCSV([]byte(csv), "student")
	if err != nil {
		t.Fatalf("ParseAttendeeCSV error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if len(rowErrs) != 5 {
		t.Fatalf("rowErrs = %d, want 5: %+v", len(rowErrs), rowErrs)
	}

	// nomor baris asli harus ikut di laporan (header = baris 1)
	if rowErrs[0].Row != 3 {
		t.Errorf("rowErrs[0].Row = %d, want 3", rowErrs[0].Row)
	}
	if rowErrs[len(rowErrs)-1].Row != 7 {
		t.Errorf("row error duplikat harus baris 7, dapat %d", rowErrs[len(rowErrs)-1].Row)
	}
}

func TestParseAttendeeCSV_ExtraColumnsKept(t *testing.T) {
	csv := "name,student_id,Fakultas\nBudi,123,Teknik\n"
	rows, _, err := ParseAttendeeCSV([]byte(csv), "")
	if err != nil {
		t.Fatalf("ParseAttendeeCSV error: %v", err)
	}
	if got := rows[0].Fields["fakultas"]; got != "Teknik" {
		t.Fatalf("kolom ekstra hilang: fields = %+v", rows[0].Fields)
	}
}

func TestParseAttendeeCSV_RoleHandling(t *testing.T) {
	csv := "name,student_id,role\nBudi,1,Management\nCici,2,\n"
	rows, rowErrs, err := ParseAttendeeCSV([]byte(csv), "student")
	if err != nil || len(rowErrs) != 0 {
		t.Fatalf("err=%v rowErrs=%+v", err, rowErrs)
	}
	if rows[0].Role != "management" {
		t.Errorf("role harus dinormalisasi lowercase, dapat %q", rows[0].Role)
	}
	if rows[1].Role != "student" {
		t.Errorf("role kosong harus pakai default, dapat %q", rows[1].Role)
	}
	if _, ok := rows[0].Fields["role"]; ok {
		t.Error("role tidak boleh ikut di field map")
	}
}
