package converter

import "time"

const (
	dateLayout = "2006-01-02"
)

// optionalString maps an empty column to JSON null.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
