package service

import (
	"fmt"
	"io"
	"time"

	"github.com/christianjamesnaguit/wcs-backend/backend/model"

	"github.com/emersion/go-ical"
)

const icalDateLayout = "20060102"

// BuildCalendar renders a user's events as an iCalendar feed. Planner
// events carry no time of day, so each one becomes an all-day VEVENT.
func BuildCalendar(events []*model.Event) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, "-//wcs-planner//Planner Feed//EN")
	cal.Props.SetText(ical.PropVersion, "2.0")

	now := time.Now().UTC()
	for _, event := range events {
		comp := ical.NewComponent(ical.CompEvent)
		comp.Props.SetText(ical.PropUID, fmt.Sprintf("event-%d@wcs-planner", event.ID))
		comp.Props.SetText(ical.PropSummary, event.Title)
		comp.Props.SetDateTime(ical.PropDateTimeStamp, now)

		start := ical.NewProp(ical.PropDateTimeStart)
		start.Params.Set(ical.ParamValue, "DATE")
		start.Value = event.Date.UTC().Format(icalDateLayout)
		comp.Props.Set(start)

		cal.Children = append(cal.Children, comp)
	}
	return cal
}

// WriteCalendar encodes the feed for an HTTP response body.
func WriteCalendar(w io.Writer, events []*model.Event) error {
	return ical.NewEncoder(w).Encode(BuildCalendar(events))
}
