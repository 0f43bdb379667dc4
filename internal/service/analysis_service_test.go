package service

import (
	"testing"

	"vetclinic-backend/internal/domain/entity"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestEvaluateAnalysis_BloodNormal(t *testing.T) {
	record := &entity.MedicalRecord{
		AnalysisType: AnalysisTypeBlood,
		Temperature:  floatPtr(38.5),
		HeartRate:    intPtr(90),
	}

	result := EvaluateAnalysis(record)
	if result.Abnormal {
		t.Fatalf("expected normal result, got abnormal with findings %v", result.Findings)
	}
}

func TestEvaluateAnalysis_BloodAbnormal(t *testing.T) {
	cases := []struct {
		name   string
		record entity.MedicalRecord
	}{
		{"fever", entity.MedicalRecord{AnalysisType: AnalysisTypeBlood, Temperature: floatPtr(40.2)}},
		{"hypothermia", entity.MedicalRecord{AnalysisType: AnalysisTypeBlood, Temperature: floatPtr(36.9)}},
		{"tachycardia", entity.MedicalRecord{AnalysisType: AnalysisTypeBlood, HeartRate: intPtr(180)}},
		{"bradycardia", entity.MedicalRecord{AnalysisType: AnalysisTypeBlood, HeartRate: intPtr(40)}},
	}

	for _, tc := range cases {
		result := EvaluateAnalysis(&tc.record)
		if !result.Abnormal {
			t.Fatalf("%s: expected abnormal result", tc.name)
		}
		if len(result.Findings) == 0 {
			t.Fatalf("%s: expected findings", tc.name)
		}
	}
}

func TestEvaluateAnalysis_UrineMarkers(t *testing.T) {
	record := &entity.MedicalRecord{
		AnalysisType: AnalysisTypeUrine,
		Notes:        "Trace protein and bacteria observed in the sample",
	}

	result := EvaluateAnalysis(record)
	if !result.Abnormal {
		t.Fatal("expected abnormal urine result")
	}
	if len(result.Findings) != 2 {
		t.Fatalf("expected 2 findings, got %d: %v", len(result.Findings), result.Findings)
	}
}

func TestEvaluateAnalysis_UnknownTypeFallsBack(t *testing.T) {
	record := &entity.MedicalRecord{AnalysisType: "XRAY"}

	result := EvaluateAnalysis(record)
	if result.Abnormal {
		t.Fatal("unknown analysis type must not be flagged abnormal")
	}
	if result.Recommendation == "" {
		t.Fatal("expected a fallback recommendation")
	}
}
