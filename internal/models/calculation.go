package models

import "time"

// Request is a validated calculation request.
type Request struct {
	Target    time.Time
	Amount    float64
	Unit      Unit
	Direction Direction
	Language  Language
}

// DisplayFields are the rendered strings for one timestamp.
type DisplayFields struct {
	Full    string `json:"full" yaml:"full"`
	Date    string `json:"date" yaml:"date"`
	Time    string `json:"time" yaml:"time"`
	Weekday string `json:"weekday" yaml:"weekday"`
}

// Result is the outcome of a calculation. It is derived from the request
// every time and never stored.
type Result struct {
	Target    DisplayFields `json:"target" yaml:"target"`
	Result    DisplayFields `json:"result" yaml:"result"`
	Amount    float64       `json:"amount" yaml:"amount"`
	Unit      Unit          `json:"unit" yaml:"unit"`
	UnitLabel string        `json:"unit_label" yaml:"unit_label"`
	Direction Direction     `json:"direction" yaml:"direction"`
	Language  Language      `json:"language" yaml:"language"`

	// Headline reads like "36 Hours before" or "36小时前".
	Headline string `json:"headline" yaml:"headline"`

	OffsetMillis int64  `json:"offset_ms" yaml:"offset_ms"`
	TargetISO    string `json:"target_iso" yaml:"target_iso"`
	ResultISO    string `json:"result_iso" yaml:"result_iso"`

	TargetTime time.Time `json:"-" yaml:"-"`
	ResultTime time.Time `json:"-" yaml:"-"`
}
