package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/kilianp07/pvderate/core/model"
	"github.com/kilianp07/pvderate/core/report"
)

// Document is the JSON rendering of a report.
type Document struct {
	ReportID   string            `json:"report_id"`
	Generated  time.Time         `json:"generated"`
	Technology string            `json:"technology,omitempty"`
	Params     model.Parameters  `json:"params"`
	Summary    model.Summary     `json:"summary"`
	Warnings   []string          `json:"warnings,omitempty"`
	Rows       []model.ResultRow `json:"rows"`
}

// NewDocument converts a report to its JSON document.
func NewDocument(r *report.Report) Document {
	rows := r.Rows
	if rows == nil {
		rows = []model.ResultRow{}
	}
	return Document{
		ReportID:   r.ID,
		Generated:  r.Generated,
		Technology: r.Technology,
		Params:     r.Params,
		Summary:    r.Summary(),
		Warnings:   r.Warnings,
		Rows:       rows,
	}
}

// WriteJSON writes the report to w in JSON format.
func WriteJSON(w io.Writer, r *report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(r))
}
