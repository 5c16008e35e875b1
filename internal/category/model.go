package category

import "time"

// Category is display-only reference data. Count is decorative and not
// recomputed from product rows.
type Category struct {
	ID        string
	Label     string
	Icon      string
	IsActive  bool
	Count     int32
	CreatedAt time.Time
}
