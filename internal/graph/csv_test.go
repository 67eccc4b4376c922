package graph

import (
	"errors"
	"strings"
	"testing"

	"cognigraph/internal/util"
)

func TestReadCSVMapsColumnsByHeaderName(t *testing.T) {
	src := strings.Join([]string{
		"x_name,x_type,relation,y_name,y_type,source_type,source_link,source_date",
		"Alzheimer's Disease,Disease,HAS_STAGE,Mild (MMSE 21-26),Stage,NICE Guideline,https://example.org,2018-06-20",
		"",
		"Donepezil,Drug,HAS_SIDE_EFFECT,Nausea,SideEffect,,,",
	}, "\n")
	rows, err := ReadCSV(strings.NewReader(src))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 data rows (blank line ignored), got %d", len(rows))
	}
	if rows[0].XName != "Alzheimer's Disease" || rows[0].SourceDate != "2018-06-20" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Line != 2 {
		t.Fatalf("expected line numbering to follow data rows, got %d", rows[1].Line)
	}
}

func TestReadCSVHeaderOrderIndependent(t *testing.T) {
	src := "relation,y_name,y_type,x_name,x_type\nUSES_DRUG,Donepezil,Drug,Donepezil Treatment (NICE),Treatment\n"
	rows, err := ReadCSV(strings.NewReader(src))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if rows[0].XName != "Donepezil Treatment (NICE)" || rows[0].Relation != "USES_DRUG" {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
}

func TestReadCSVMissingRequiredColumn(t *testing.T) {
	src := "x_name,x_type,y_name,y_type\na,b,c,d\n"
	if _, err := ReadCSV(strings.NewReader(src)); !errors.Is(err, util.ErrUnreadableInput) {
		t.Fatalf("expected ErrUnreadableInput, got %v", err)
	}
}

func TestReadCSVEmptyInput(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); !errors.Is(err, util.ErrUnreadableInput) {
		t.Fatalf("expected ErrUnreadableInput for empty input, got %v", err)
	}
}

func TestReadCSVShortRecordYieldsEmptyFields(t *testing.T) {
	src := "x_name,x_type,relation,y_name,y_type\nAlzheimer's Disease,Disease\n"
	rows, err := ReadCSV(strings.NewReader(src))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	_, report := Ingest(rows)
	if len(report.Rejected) != 1 {
		t.Fatalf("short record should be rejected at ingest, got %+v", report)
	}
}
