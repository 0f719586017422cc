package viewstate

import (
	"context"
	"errors"
)

type memStore struct {
	values map[string]string
	getErr error
	setErr error
	writes []string
}

func newMemStore() *memStore {
	return &memStore{values: map[string]string{}}
}

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	s.writes = append(s.writes, value)
	return nil
}

var errStoreDown = errors.New("store down")

type toastRecorder struct {
	messages []string
}

func (r *toastRecorder) Notify(message string) {
	r.messages = append(r.messages, message)
}

func sampleMenu() []MenuItem {
	return []MenuItem{
		{Label: "Dashboard", Active: true},
		{Label: "User Management", Children: []ChildLink{{Label: "Users"}, {Label: "Roles"}}},
		{Label: "Course Oversight", Children: []ChildLink{{Label: "Courses"}, {Label: "Modules"}}},
		{Label: "Announcement"},
		{Label: "Payments"},
	}
}

func sampleCards() []StatCard {
	return []StatCard{
		{Title: "Total students", Value: 300, Emphasized: true},
		{Title: "Total Instructors", Value: 120, Emphasized: true},
		{Title: "Total courses", Value: 4},
		{Title: "Number of Modules", Value: 120},
		{Title: "Sign-ups This Month", Value: 120},
	}
}

func sampleRevenue() []RevenuePoint {
	amounts := []int64{0, 0, 0, 0, 0, 0, 200000, 1500000, 10000, 20000, 10000, 20000}
	out := make([]RevenuePoint, len(Months))
	for i, m := range Months {
		out[i] = RevenuePoint{Month: m, Amount: amounts[i]}
	}
	return out
}

func sampleConfig() Config {
	return Config{
		Menu:          sampleMenu(),
		Expanded:      []string{"User Management", "Course Oversight"},
		Cards:         sampleCards(),
		Revenue:       sampleRevenue(),
		Periods:       DefaultPeriods,
		Currency:      "NGN",
		Notifications: 3,
	}
}

func titles(cards []StatCard) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Title
	}
	return out
}
