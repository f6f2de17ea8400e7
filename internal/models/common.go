package models

// MinMax is an ordered pair used for venue capacity, package guest
// counts and decoration space. Max >= Min is enforced at write time.
type MinMax struct {
	Min int `bson:"min" json:"min" validate:"gte=0"`
	Max int `bson:"max" json:"max" validate:"gte=0"`
}

// DateRange is an inclusive "YYYY-MM-DD" range. An empty End means the
// range covers only the start date.
type DateRange struct {
	Start string `bson:"start" json:"start" validate:"required,datetime=2006-01-02"`
	End   string `bson:"end" json:"end" validate:"required,datetime=2006-01-02"`
}

// TimeRange holds "HH:MM" 24-hour wall-clock times.
type TimeRange struct {
	Start string `bson:"start" json:"start" validate:"required,datetime=15:04"`
	End   string `bson:"end" json:"end" validate:"required,datetime=15:04"`
}
