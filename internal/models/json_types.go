package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonScan decodes a JSON database value (TEXT/BLOB/JSON column) into dest.
// NULL and empty values leave dest untouched.
func jsonScan(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported column type %T for JSON value", value)
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dest)
}

// Coordinates is a geographic point stored as a JSON column.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c Coordinates) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *Coordinates) Scan(value interface{}) error {
	return jsonScan(value, c)
}

// StringList is a list of display names stored as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	return jsonScan(value, l)
}

// Contains reports whether name is present in the list.
func (l StringList) Contains(name string) bool {
	for _, n := range l {
		if n == name {
			return true
		}
	}
	return false
}

// Remove deletes the first occurrence of name, reporting whether it was found.
func (l *StringList) Remove(name string) bool {
	for i, n := range *l {
		if n == name {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return true
		}
	}
	return false
}

// PartnerRequest is an NPO's offer to collaborate on a project.
type PartnerRequest struct {
	NPOID   string `json:"npoId"`
	NPOName string `json:"npoName"`
	Message string `json:"message"`
}

// PartnerRequestList is stored as a JSON column on the project row.
type PartnerRequestList []PartnerRequest

func (l PartnerRequestList) Value() (driver.Value, error) {
	if l == nil {
		l = PartnerRequestList{}
	}
	return json.Marshal(l)
}

func (l *PartnerRequestList) Scan(value interface{}) error {
	return jsonScan(value, l)
}

// ResourceLine is a priced, quantified material/service entry contributing
// to a project's budget.
type ResourceLine struct {
	ID            string  `json:"id"`
	Name          string  `json:"name,omitempty"`
	Resource      string  `json:"resource,omitempty"`
	Category      string  `json:"category,omitempty"`
	BasePrice     float64 `json:"basePrice"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit,omitempty"`
	EstimatedCost float64 `json:"estimatedCost,omitempty"`
}

// ResourceLineList is stored as a JSON column on the project and draft rows.
type ResourceLineList []ResourceLine

func (l ResourceLineList) Value() (driver.Value, error) {
	if l == nil {
		l = ResourceLineList{}
	}
	return json.Marshal(l)
}

func (l *ResourceLineList) Scan(value interface{}) error {
	return jsonScan(value, l)
}

// Total returns the summed cost of all lines: Σ(basePrice × quantity).
func (l ResourceLineList) Total() float64 {
	var total float64
	for _, r := range l {
		total += r.BasePrice * r.Quantity
	}
	return total
}

// BudgetBreakdown is the spent/remaining/total summary on project details.
type BudgetBreakdown struct {
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
	Total     float64 `json:"total"`
}

func (b BudgetBreakdown) Value() (driver.Value, error) {
	return json.Marshal(b)
}

func (b *BudgetBreakdown) Scan(value interface{}) error {
	return jsonScan(value, b)
}
