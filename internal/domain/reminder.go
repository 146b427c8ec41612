package domain

import (
	"fmt"
	"time"
)

// billReminderWindow is how many days ahead a due bill triggers a reminder.
const billReminderWindow = 3

// UpcomingBillNotifications returns warning notifications for bills due
// within the reminder window, skipping ids already present in the state.
// Due dates wrap around the end of the month.
func UpcomingBillNotifications(s AppState, now time.Time) []Notification {
	day := now.Day()
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	today := now.Format("2006-01-02")

	existing := make(map[string]bool, len(s.Notifications))
	for _, n := range s.Notifications {
		existing[n.ID] = true
	}

	var out []Notification
	for _, b := range s.Bills {
		diff := b.DueDate - day
		if diff < 0 {
			diff += daysInMonth
		}
		if diff > billReminderWindow {
			continue
		}

		id := fmt.Sprintf("bill-%s-%s", b.ID, today)
		if existing[id] {
			continue
		}

		message := fmt.Sprintf("Tagihan '%s' akan jatuh tempo dalam %d hari.", b.Name, diff)
		if diff == 0 {
			message = fmt.Sprintf("Tagihan '%s' jatuh tempo HARI INI.", b.Name)
		}
		out = append(out, Notification{ID: id, Message: message, Type: NotificationWarning})
	}
	return out
}

// AddNotifications returns a mutation appending notifications that are not
// already present.
func AddNotifications(notifs []Notification) Mutation {
	return func(s AppState) (AppState, error) {
		if len(notifs) == 0 {
			return s, nil
		}
		next := s.Clone()
		existing := make(map[string]bool, len(next.Notifications))
		for _, n := range next.Notifications {
			existing[n.ID] = true
		}
		for _, n := range notifs {
			if !existing[n.ID] {
				next.Notifications = append(next.Notifications, n)
			}
		}
		return next, nil
	}
}

// DismissNotification returns a mutation removing one notification by id.
func DismissNotification(id string) Mutation {
	return func(s AppState) (AppState, error) {
		next := s.Clone()
		kept := next.Notifications[:0]
		for _, n := range next.Notifications {
			if n.ID != id {
				kept = append(kept, n)
			}
		}
		next.Notifications = kept
		return next, nil
	}
}
