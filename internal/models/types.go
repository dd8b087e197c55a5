package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Default status values applied on insert
const (
	DefaultRecordStatus = "active"
	DefaultOrderStatus  = "pending"
)

// DateLayout is the wire and storage format of calendar dates
const DateLayout = "2006-01-02"

// Table identifies one of the fixed tables the API can target
type Table string

const (
	TableRecords    Table = "records"
	TableMaterials  Table = "materials"
	TableOperations Table = "operations"
	TableOrders     Table = "orders"
)

// CatalogTables is the allow-list of tables selectable through the X-Table-Name header
var CatalogTables = []Table{TableMaterials, TableOperations, TableOrders}

// DefaultCatalogTable is used when no table header is supplied
const DefaultCatalogTable = TableMaterials

// ParseCatalogTable resolves a header value to a catalog table.
// The second return value is false when the name is not in the allow-list.
func ParseCatalogTable(name string) (Table, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultCatalogTable, true
	}
	for _, t := range CatalogTables {
		if string(t) == name {
			return t, true
		}
	}
	return DefaultCatalogTable, false
}

// String returns the table name
func (t Table) String() string {
	return string(t)
}

// Entity returns the singular, capitalised entity name used in messages
func (t Table) Entity() string {
	switch t {
	case TableRecords:
		return "Record"
	case TableMaterials:
		return "Material"
	case TableOperations:
		return "Operation"
	case TableOrders:
		return "Order"
	default:
		return "Entity"
	}
}

// Date is a nullable calendar date serialized as "YYYY-MM-DD" or null
type Date struct {
	Time  time.Time
	Valid bool
}

// NewDate creates a valid date truncated to the day
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

// ParseDate parses "YYYY-MM-DD"; an empty string yields a null date
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	// Timestamps keep their date part
	if i := strings.IndexAny(s, "T "); i >= 0 {
		s = s[:i]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t), nil
}

// String formats the date, or returns an empty string when null
func (d Date) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(DateLayout)
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner. Drivers hand back either time.Time or text.
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

// Value implements driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.String(), nil
}

// Timestamp wraps time.Time so rows scan the same way on every driver
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	DateLayout,
}

// Scan implements sql.Scanner
func (t *Timestamp) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", value)
	}
}

func (t *Timestamp) parse(s string) error {
	s = strings.TrimSuffix(strings.TrimSpace(s), "Z")
	for _, layout := range timestampLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", s)
}

// MarshalJSON implements json.Marshaler
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return t.Time.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	return t.Time.UnmarshalJSON(data)
}

// HealthCheck represents system health status
type HealthCheck struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}
