// Package exchange defines the JSON document format used to export and
// import training plans. Dates travel as "2006-01-02" strings; the
// document is the only supported external representation of a plan.
package exchange

import (
	"encoding/json"
	"fmt"
	"os"
)

// DocumentVersion is bumped on incompatible schema changes.
const DocumentVersion = 1

const dateLayout = "2006-01-02"

// PlanDocument is the top-level JSON structure for plan export/import.
type PlanDocument struct {
	Version   int           `json:"version"`
	ID        string        `json:"id,omitempty"`
	CreatedAt string        `json:"created_at,omitempty"`
	Request   RequestExport `json:"request"`
	Paces     PacesExport   `json:"paces"`
	Warnings  []string      `json:"warnings,omitempty"`
	Weeks     []WeekExport  `json:"weeks"`
}

// RequestExport mirrors the generation request that produced the plan.
type RequestExport struct {
	StartDate       string             `json:"start_date"`
	RaceDate        string             `json:"race_date"`
	RaceDistanceKm  float64            `json:"race_distance_km"`
	Level           string             `json:"level"`
	TrainingDays    []int              `json:"training_days"`
	LongRunDay      int                `json:"long_run_day"`
	CurrentWeeklyKm float64            `json:"current_weekly_km"`
	Performance     *PerformanceExport `json:"performance,omitempty"`
	SixMinTestKm    float64            `json:"six_min_test_km,omitempty"`
}

// PerformanceExport is a reference race result; time is whole seconds.
type PerformanceExport struct {
	DistanceKm float64 `json:"distance_km"`
	TimeSec    int     `json:"time_sec"`
}

// PacesExport carries the derived pace table in seconds per kilometer.
type PacesExport struct {
	EasyLow    float64 `json:"easy_low"`
	EasyHigh   float64 `json:"easy_high"`
	Marathon   float64 `json:"marathon"`
	Threshold  float64 `json:"threshold"`
	Interval   float64 `json:"interval"`
	Repetition float64 `json:"repetition"`
	Race       float64 `json:"race"`
}

// WeekExport is one plan week with its placed sessions.
type WeekExport struct {
	Number    int             `json:"number"`
	Phase     string          `json:"phase"`
	PhaseType string          `json:"phase_type"`
	StartDate string          `json:"start_date"`
	TotalKm   float64         `json:"total_km"`
	TSS       int             `json:"tss,omitempty"`
	Sessions  []SessionExport `json:"sessions"`
}

// SessionExport is one workout. Day is the Monday-first index, -1 when
// the session was never placed.
type SessionExport struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Category   string            `json:"category"`
	Intensity  int               `json:"intensity"`
	Day        int               `json:"day"`
	Date       string            `json:"date,omitempty"`
	DistanceKm float64           `json:"distance_km"`
	IsTest     bool              `json:"is_test,omitempty"`
	Structure  []SegmentExport   `json:"structure,omitempty"`
	Descriptor *DescriptorExport `json:"descriptor,omitempty"`
}

// SegmentExport is one named block of a session's rendered structure.
type SegmentExport struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// DescriptorExport is the structured workout content.
type DescriptorExport struct {
	WarmupMin      int     `json:"warmup_min,omitempty"`
	Reps           int     `json:"reps,omitempty"`
	RepDistanceKm  float64 `json:"rep_distance_km,omitempty"`
	RepDurationMin float64 `json:"rep_duration_min,omitempty"`
	RecoveryKm     float64 `json:"recovery_km,omitempty"`
	RecoveryMin    float64 `json:"recovery_min,omitempty"`
	CooldownMin    int     `json:"cooldown_min,omitempty"`
	Zone           string  `json:"zone,omitempty"`
}

// LoadDocument reads and parses a plan document from disk.
func LoadDocument(path string) (*PlanDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc PlanDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return &doc, nil
}

// SaveDocument writes a plan document to disk as indented JSON.
func SaveDocument(path string, doc *PlanDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
