package dto

// SessionResponse is returned when a session is opened.
type SessionResponse struct {
	UserID      string                  `json:"userID"`
	Preferences PreferencesResponse     `json:"preferences"`
	Conversion  ConversionStateResponse `json:"conversion"`
}
