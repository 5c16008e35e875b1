package utils

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

func StrPtr(s string) *string {
	return &s
}

func Int32Ptr(i int32) *int32 {
	return &i
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func PtrInt32(i *int32) int32 {
	if i == nil {
		return 0
	}
	return *i
}

func PtrBool(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

// FirstName returns the first whitespace-delimited token of a display
// name, or the fallback when the name is blank.
func FirstName(name, fallback string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return fallback
	}
	return fields[0]
}

// City extracts the city portion of a "street, city" address. When the
// address has no comma the whole string is returned.
func City(address string) string {
	if idx := strings.LastIndex(address, ","); idx >= 0 {
		return strings.TrimSpace(address[idx+1:])
	}
	return address
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func FormatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTime(*t)
	return &s
}

func WriteJSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
