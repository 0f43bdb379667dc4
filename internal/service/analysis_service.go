package service

import (
	"strings"

	"vetclinic-backend/internal/domain/entity"
)

// Canine reference ranges used by the blood evaluation
const (
	bloodTempLow   = 38.0
	bloodTempHigh  = 39.5
	bloodPulseLow  = 60
	bloodPulseHigh = 140
)

// Analysis type tags accepted on ANALYSIS records
const (
	AnalysisTypeBlood = "BLOOD_ANALYSIS"
	AnalysisTypeUrine = "URINE_ANALYSIS"
)

// AnalysisResult is the evaluation outcome for one analysis record.
type AnalysisResult struct {
	AnalysisType   string   `json:"analysis_type"`
	Abnormal       bool     `json:"abnormal"`
	Findings       []string `json:"findings,omitempty"`
	Recommendation string   `json:"recommendation"`
}

type analysisEvaluator func(*entity.MedicalRecord) AnalysisResult

// analysisEvaluators maps an analysis type tag to its evaluation function.
var analysisEvaluators = map[string]analysisEvaluator{
	AnalysisTypeBlood: evaluateBlood,
	AnalysisTypeUrine: evaluateUrine,
}

// EvaluateAnalysis runs the evaluation registered for the record's analysis
// type. Unknown types fall back to a generic "no automated evaluation" result
// rather than failing.
func EvaluateAnalysis(record *entity.MedicalRecord) AnalysisResult {
	evaluate, ok := analysisEvaluators[strings.ToUpper(record.AnalysisType)]
	if !ok {
		return AnalysisResult{
			AnalysisType:   record.AnalysisType,
			Abnormal:       false,
			Recommendation: "No automated evaluation for this analysis type; routine follow-up recommended.",
		}
	}
	return evaluate(record)
}

func evaluateBlood(record *entity.MedicalRecord) AnalysisResult {
	result := AnalysisResult{AnalysisType: AnalysisTypeBlood}

	if record.Temperature != nil {
		switch {
		case *record.Temperature > bloodTempHigh:
			result.Abnormal = true
			result.Findings = append(result.Findings, "temperature high")
		case *record.Temperature < bloodTempLow:
			result.Abnormal = true
			result.Findings = append(result.Findings, "temperature low")
		}
	}

	if record.HeartRate != nil {
		switch {
		case *record.HeartRate > bloodPulseHigh:
			result.Abnormal = true
			result.Findings = append(result.Findings, "heart rate high")
		case *record.HeartRate < bloodPulseLow:
			result.Abnormal = true
			result.Findings = append(result.Findings, "heart rate low")
		}
	}

	if result.Abnormal {
		result.Recommendation = "Values outside the reference range; clinical follow-up is required."
	} else {
		result.Recommendation = "Blood values within the reference range; routine checks recommended."
	}
	return result
}

// evaluateUrine flags marker keywords recorded in the notes field.
func evaluateUrine(record *entity.MedicalRecord) AnalysisResult {
	result := AnalysisResult{AnalysisType: AnalysisTypeUrine}
	notes := strings.ToLower(record.Notes)

	markers := []struct {
		keyword string
		finding string
	}{
		{"protein", "protein detected; kidney function should be checked"},
		{"glucose", "glucose detected; additional diabetes screening advised"},
		{"blood", "blood detected; further examination required"},
		{"bacteria", "bacteria detected; urinary tract infection treatment may be needed"},
	}

	for _, m := range markers {
		if strings.Contains(notes, m.keyword) {
			result.Abnormal = true
			result.Findings = append(result.Findings, m.finding)
		}
	}

	if result.Abnormal {
		result.Recommendation = "Abnormal urine markers present; veterinary follow-up recommended."
	} else {
		result.Recommendation = "Urine analysis within the normal range; maintain regular water intake."
	}
	return result
}
