package model

import "time"

// VitalSign is a single vital-sign measurement for a patient.
// Measurement fields are pointers because each reading is optional.
type VitalSign struct {
	ID                int64     `json:"id"`
	PatientID         int64     `json:"patient_id"`
	RecordedBy        int64     `json:"recorded_by"`
	RecordedAt        time.Time `json:"recorded_at"`
	HeartRate         *int      `json:"heart_rate,omitempty"`
	SystolicPressure  *int      `json:"systolic_pressure,omitempty"`
	DiastolicPressure *int      `json:"diastolic_pressure,omitempty"`
	Temperature       *float64  `json:"temperature,omitempty"`
	OxygenSaturation  *float64  `json:"oxygen_saturation,omitempty"`
	RespiratoryRate   *int      `json:"respiratory_rate,omitempty"`
	Weight            *float64  `json:"weight,omitempty"`
	Height            *float64  `json:"height,omitempty"`
	GlucoseLevel      *float64  `json:"glucose_level,omitempty"`
	Notes             string    `json:"notes,omitempty"`
}

// VitalSignCreate holds the fields accepted by the record endpoint.
type VitalSignCreate struct {
	PatientID         int64    `json:"patient_id"`
	HeartRate         *int     `json:"heart_rate,omitempty"`
	SystolicPressure  *int     `json:"systolic_pressure,omitempty"`
	DiastolicPressure *int     `json:"diastolic_pressure,omitempty"`
	Temperature       *float64 `json:"temperature,omitempty"`
	OxygenSaturation  *float64 `json:"oxygen_saturation,omitempty"`
	RespiratoryRate   *int     `json:"respiratory_rate,omitempty"`
	Weight            *float64 `json:"weight,omitempty"`
	Height            *float64 `json:"height,omitempty"`
	GlucoseLevel      *float64 `json:"glucose_level,omitempty"`
	Notes             string   `json:"notes,omitempty"`
}

// VitalStats aggregates a patient's measurements over a period.
type VitalStats struct {
	AvgHeartRate   *float64 `json:"avg_heart_rate,omitempty"`
	AvgSystolic    *float64 `json:"avg_systolic,omitempty"`
	AvgDiastolic   *float64 `json:"avg_diastolic,omitempty"`
	AvgTemperature *float64 `json:"avg_temperature,omitempty"`
	AvgOxygen      *float64 `json:"avg_oxygen,omitempty"`
	MinHeartRate   *int     `json:"min_heart_rate,omitempty"`
	MaxHeartRate   *int     `json:"max_heart_rate,omitempty"`
	TotalRecords   int      `json:"total_records"`
}

// ChartDataPoint is a single labelled value in a chart series.
type ChartDataPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// VitalChartData holds per-metric chart series for a patient.
type VitalChartData struct {
	HeartRate        []ChartDataPoint `json:"heart_rate"`
	BloodPressure    []ChartDataPoint `json:"blood_pressure"`
	Temperature      []ChartDataPoint `json:"temperature"`
	OxygenSaturation []ChartDataPoint `json:"oxygen_saturation"`
}
