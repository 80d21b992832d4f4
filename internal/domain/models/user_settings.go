package models

// UserSettings is process-ambient configuration persisted through a
// key-value store, one document per user. There is no multi-device
// reconciliation; last write wins.
type UserSettings struct {
	Currency             string          `json:"currency"`
	DashboardCards       map[string]bool `json:"dashboardCards"`
	NotificationsEnabled bool            `json:"notificationsEnabled"`
	MonthStartDay        int             `json:"monthStartDay"`
}

func DefaultUserSettings() *UserSettings {
	return &UserSettings{
		Currency: "BRL",
		DashboardCards: map[string]bool{
			"balance":      true,
			"budgets":      true,
			"credit_cards": true,
			"goals":        true,
		},
		NotificationsEnabled: true,
		MonthStartDay:        1,
	}
}
