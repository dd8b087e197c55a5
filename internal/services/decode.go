package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"db-console-api/internal/repositories"
)

// InvalidJSONMessage is returned when a request body cannot be decoded
const InvalidJSONMessage = "Invalid JSON body"

// decodeBody unmarshals a request body into dst. An empty body decodes as {}.
func decodeBody(entity, body string, dst interface{}) error {
	if strings.TrimSpace(body) == "" {
		body = "{}"
	}
	if err := json.Unmarshal([]byte(body), dst); err != nil {
		return &repositories.RepositoryError{
			Op:      "decode",
			Entity:  entity,
			Err:     fmt.Errorf("%w: %v", repositories.ErrValidation, err),
			Message: InvalidJSONMessage,
		}
	}
	return nil
}

// trimmed returns the trimmed value of an optional string, or "" when absent
func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// trimmedOr returns the trimmed value of an optional string, or def when absent
func trimmedOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return strings.TrimSpace(*s)
}

// Number is a JSON numeric field that also accepts numeric strings.
// null and "" decode as zero.
type Number float64

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*n = 0
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*n = 0
			return nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid number %q", raw)
	}
	*n = Number(v)
	return nil
}

// Float64 returns the value, 0 when absent
func (n *Number) Float64() float64 {
	if n == nil {
		return 0
	}
	return float64(*n)
}

// Integer is a Number that must hold a whole value within the int64 range
type Integer int64

// UnmarshalJSON implements json.Unmarshaler
func (i *Integer) UnmarshalJSON(data []byte) error {
	var n Number
	if err := n.UnmarshalJSON(data); err != nil {
		return err
	}

	v := float64(n)
	if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
		return fmt.Errorf("invalid integer %v", v)
	}
	*i = Integer(v)
	return nil
}

// Int64 returns the value, 0 when absent
func (i *Integer) Int64() int64 {
	if i == nil {
		return 0
	}
	return int64(*i)
}
