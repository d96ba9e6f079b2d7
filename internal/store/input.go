package store

import (
	"time"
)

// Wire formats for dates and times of day.
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04:05"
)

// ParseDate parses a calendar date in DateFormat.
func ParseDate(field, value string) (time.Time, error) {
	d, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, &InvalidError{Field: field}
	}
	return d, nil
}

// ParseTimeOfDay validates a time-of-day string in TimeFormat and returns it
// normalized.
func ParseTimeOfDay(field, value string) (string, error) {
	t, err := time.Parse(TimeFormat, value)
	if err != nil {
		return "", &InvalidError{Field: field}
	}
	return t.Format(TimeFormat), nil
}

// DeviceInput is one element of the devices collection in an apartment
// creation request.
type DeviceInput struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func (d *DeviceInput) validate() error {
	if d.Name == "" {
		return &RequiredError{Field: "devices.name"}
	}
	if d.Count <= 0 {
		return &RequiredError{Field: "devices.count"}
	}
	return nil
}

// SlotInput is one element of the reserve_choices collection.
type SlotInput struct {
	Date      string `json:"date"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`

	date time.Time
}

func (s *SlotInput) validate() error {
	if s.Date == "" {
		return &RequiredError{Field: "reserve_choices.date"}
	}
	if s.TimeStart == "" {
		return &RequiredError{Field: "reserve_choices.time_start"}
	}
	if s.TimeEnd == "" {
		return &RequiredError{Field: "reserve_choices.time_end"}
	}

	var err error
	if s.date, err = ParseDate("reserve_choices.date", s.Date); err != nil {
		return err
	}
	if s.TimeStart, err = ParseTimeOfDay("reserve_choices.time_start", s.TimeStart); err != nil {
		return err
	}
	if s.TimeEnd, err = ParseTimeOfDay("reserve_choices.time_end", s.TimeEnd); err != nil {
		return err
	}
	if s.TimeEnd <= s.TimeStart {
		return &InvalidError{Field: "reserve_choices.time_end"}
	}
	return nil
}

// RoomInput is one element of the rooms collection.
type RoomInput struct {
	Name         string `json:"name"`
	Area         int    `json:"area"`
	Price        int    `json:"price"`
	DateEntrance string `json:"date_entrance"`

	dateEntrance time.Time
}

func (r *RoomInput) validate() error {
	if r.Name == "" {
		return &RequiredError{Field: "rooms.name"}
	}
	if r.Area <= 0 {
		return &RequiredError{Field: "rooms.area"}
	}
	if r.Price <= 0 {
		return &RequiredError{Field: "rooms.price"}
	}
	if r.DateEntrance == "" {
		return &RequiredError{Field: "rooms.date_entrance"}
	}

	var err error
	if r.dateEntrance, err = ParseDate("rooms.date_entrance", r.DateEntrance); err != nil {
		return err
	}
	return nil
}

// TagInput is one element of the tags collection.
type TagInput struct {
	Name string `json:"name"`
}

func (t *TagInput) validate() error {
	if t.Name == "" {
		return &RequiredError{Field: "tags.name"}
	}
	return nil
}

// ApartmentInput carries everything needed to create an apartment aggregate in
// one shot. The nested collections are validated before any write happens.
type ApartmentInput struct {
	CommunityID   int64  `json:"community_id"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Address       string `json:"address"`
	NumBedroom    int    `json:"num_bedroom"`
	NumLivingRoom int    `json:"num_livingroom"`
	NumBathroom   int    `json:"num_bathroom"`
	Type          int    `json:"type"`

	Devices        []DeviceInput `json:"devices"`
	ReserveChoices []SlotInput   `json:"reserve_choices"`
	Rooms          []RoomInput   `json:"rooms"`
	Tags           []TagInput    `json:"tags"`
}

func (in *ApartmentInput) validate() error {
	if in.Title == "" {
		return &RequiredError{Field: "title"}
	}
	for i := range in.Devices {
		if err := in.Devices[i].validate(); err != nil {
			return err
		}
	}
	for i := range in.ReserveChoices {
		if err := in.ReserveChoices[i].validate(); err != nil {
			return err
		}
	}
	for i := range in.Rooms {
		if err := in.Rooms[i].validate(); err != nil {
			return err
		}
	}
	for i := range in.Tags {
		if err := in.Tags[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

// ApartmentUpdate is a partial update: nil fields are left untouched, non-nil
// fields are written as given, so a caller can deliberately clear a field by
// pointing at its zero value.
type ApartmentUpdate struct {
	CommunityID   *int64  `json:"community_id"`
	Title         *string `json:"title"`
	Subtitle      *string `json:"subtitle"`
	Address       *string `json:"address"`
	NumBedroom    *int    `json:"num_bedroom"`
	NumLivingRoom *int    `json:"num_livingroom"`
	NumBathroom   *int    `json:"num_bathroom"`
	Type          *int    `json:"type"`
	ContractRef   *string `json:"contract_ref"`
	Cancelled     *bool   `json:"cancelled"`
}
